package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	KindValidation        = "validation_error"
	KindNotFound          = "not_found"
	KindConflict          = "conflict"
	KindInsufficientFunds = "insufficient_funds"
	KindInsufficientStock = "insufficient_stock"
	KindUnauthorized      = "unauthorized"
	KindPermissionDenied  = "permission_denied"
	KindTooManyRequests   = "too_many_requests"
	KindTimeout           = "timeout"
	KindInternal          = "internal_error"
)

type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Message string `json:"error"`
	Kind    string `json:"kind"`
}

func (e *Err) Error() string {
	return e.Message
}

// RenderErr writes e as JSON and aborts the chain. Server errors are logged with the request id.
func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message,
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Kind:           KindValidation,
	}
}

func ErrNotFound(resource, field string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s with %s %v not found", resource, field, value),
		Kind:           KindNotFound,
	}
}

func ErrResourceNotFound(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		Message:        err.Error(),
		Kind:           KindNotFound,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		Message:        err.Error(),
		Kind:           KindConflict,
	}
}

func ErrInsufficientFunds(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Kind:           KindInsufficientFunds,
	}
}

func ErrInsufficientStock(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
		Kind:           KindInsufficientStock,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        "invalid credentials",
		Kind:           KindUnauthorized,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Message:        err.Error(),
		Kind:           KindUnauthorized,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		Message:        err.Error(),
		Kind:           KindPermissionDenied,
	}
}

func ErrTooManyRequests(retryAfterSeconds int) *Err {
	return &Err{
		HTTPStatusCode: http.StatusTooManyRequests,
		Message:        fmt.Sprintf("too many requests, retry in %d seconds", retryAfterSeconds),
		Kind:           KindTooManyRequests,
	}
}

func ErrTimeout(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusGatewayTimeout,
		Message:        "the request timed out",
		Kind:           KindTimeout,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
		Kind:           KindInternal,
	}
}
