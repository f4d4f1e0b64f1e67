package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apexflow/apexflow/internal/api/handler/v1/response"
	"github.com/apexflow/apexflow/internal/pkg/jwthelper"
)

// ContextKeyClaims is where VerifyJWT parks the decoded identity for
// downstream handlers.
const ContextKeyClaims = "user_claims"

type Authenticator struct {
	signingKey func() string
}

// NewAuthenticator takes a key getter rather than a key snapshot, so a config
// reload reaches requests already being served by this guard.
func NewAuthenticator(signingKey func() string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT gates every protected route. A missing token and an invalid one
// are distinct failures: the former is a 401, the latter a 403.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrMissingToken())

			return
		}

		// Refusing to verify with an empty key; otherwise every forged
		// token signed with "" would pass.
		key := a.signingKey()
		if key == "" {
			response.RenderErr(ctx, response.ErrInternalServerError(errors.New("JWT signing key is not configured")))

			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			response.RenderErr(ctx, response.ErrInvalidToken())

			return
		}

		claims, err := jwthelper.VerifyToken([]byte(key), tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrInvalidToken())

			return
		}

		ctx.Set(ContextKeyClaims, claims)
		ctx.Next()
	}
}

// RequireRole is the secondary guard for role-restricted routes. It assumes
// VerifyJWT already ran.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrMissingToken())

			return
		}

		if claims.Role != role {
			response.RenderErr(ctx, response.ErrPermissionDenied(errors.New("user "+claims.Role+" lacks role "+role)))

			return
		}

		ctx.Next()
	}
}

// GetClaims returns the identity attached by VerifyJWT.
func GetClaims(ctx *gin.Context) (*jwthelper.UserClaims, bool) {
	value, exists := ctx.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*jwthelper.UserClaims)
	if !ok {
		return nil, false
	}

	return claims, true
}
