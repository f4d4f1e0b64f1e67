package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the only error shape the API returns. The wrapped internal error is
// logged server-side and never serialized.
type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`

	internal error
}

func (e *Err) Error() string {
	return e.Msg
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.internal),
		)
	} else {
		zap.L().Info("request rejected",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Int("status", err.StatusCode),
			zap.String("reason", err.Msg),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
		internal:   err,
	}
}

// ErrWrongCredentials deliberately hides whether the email or the password
// was wrong.
func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "invalid credentials",
		internal:   err,
	}
}

func ErrMissingToken() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        "no token provided",
	}
}

func ErrInvalidToken() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        "invalid or expired token",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        "access denied",
		internal:   err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v %v not found", resource, key, value),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
		internal:   err,
	}
}
