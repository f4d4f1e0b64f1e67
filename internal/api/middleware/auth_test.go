package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexflow/apexflow/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func newGuardedRouter(signingKey string, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{NewAuthenticator(func() string { return signingKey }).VerifyJWT()}, extra...)
	handlers = append(handlers, func(ctx *gin.Context) {
		claims, ok := GetClaims(ctx)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})

	router.GET("/protected", handlers...)

	return router
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	return body["error"]
}

func TestVerifyJWT_MissingToken(t *testing.T) {
	router := newGuardedRouter(testSigningKey)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "no token provided", errorBody(t, resp))
}

func TestVerifyJWT_MalformedHeader(t *testing.T) {
	router := newGuardedRouter(testSigningKey)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "invalid or expired token", errorBody(t, resp))
}

func TestVerifyJWT_InvalidToken(t *testing.T) {
	router := newGuardedRouter(testSigningKey)

	forged, err := jwthelper.GenerateToken([]byte("other-key"), 1, "ADMIN")
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Equal(t, "invalid or expired token", errorBody(t, resp))
}

func TestVerifyJWT_MissingSigningKey(t *testing.T) {
	router := newGuardedRouter("")

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, "ADMIN")
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestVerifyJWT_ValidToken(t *testing.T) {
	router := newGuardedRouter(testSigningKey)

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "STAFF")
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"STAFF"}`, resp.Body.String())
}

// A rotated signing key must take effect on the next request without
// rebuilding the router.
func TestVerifyJWT_KeyRotation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	key := "first-key"
	authenticator := NewAuthenticator(func() string { return key })
	router.GET("/protected", authenticator.VerifyJWT(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	firstToken, err := jwthelper.GenerateToken([]byte("first-key"), 1, "ADMIN")
	require.NoError(t, err)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+firstToken)
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	key = "second-key"

	// The old token no longer verifies.
	resp = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+firstToken)
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// A token signed with the rotated key does.
	secondToken, err := jwthelper.GenerateToken([]byte("second-key"), 1, "ADMIN")
	require.NoError(t, err)

	resp = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+secondToken)
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		tokenRole    string
		requiredRole string
		wantCode     int
	}{
		{
			name:         "matching role passes",
			tokenRole:    "ADMIN",
			requiredRole: "ADMIN",
			wantCode:     http.StatusOK,
		},
		{
			name:         "mismatched role is denied",
			tokenRole:    "STAFF",
			requiredRole: "ADMIN",
			wantCode:     http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGuardedRouter(testSigningKey, RequireRole(tt.requiredRole))

			token, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, tt.tokenRole)
			require.NoError(t, err)

			resp := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode == http.StatusForbidden {
				assert.Equal(t, "access denied", errorBody(t, resp))
			}
		})
	}
}

func TestRequireRole_WithoutVerifyJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", RequireRole("ADMIN"), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
