package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status"`
	Code       string `json:"code,omitempty"`
	ErrorText  string `json:"error,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

// RenderErr aborts the request with e. Server errors are logged with the
// request ID; client errors are not.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err))
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(err error, status int, code string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		Code:           code,
		ErrorText:      err.Error(),
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, "bad_request")
}

func ErrInvalidInput(err error, code string) *Err {
	return newErr(err, http.StatusUnprocessableEntity, code)
}

func ErrUnauthorized(err error) *Err {
	return newErr(err, http.StatusUnauthorized, "unauthorized")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(err, http.StatusForbidden, "permission_denied")
}

func ErrForbidden(err error, code string) *Err {
	return newErr(err, http.StatusForbidden, code)
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(fmt.Errorf("%v with %v=%v not found", resource, key, value), http.StatusNotFound, "not_found")
}

// ErrMissing is ErrNotFound for errors that already name what is missing.
func ErrMissing(err error, code string) *Err {
	return newErr(err, http.StatusNotFound, code)
}

func ErrConflict(err error, code string) *Err {
	return newErr(err, http.StatusConflict, code)
}

// ErrInternalServerError hides err from the client.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      "something went wrong",
	}
}
