package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error types
var (
	ErrNotFound         = New(http.StatusNotFound, "Not found", nil)
	ErrInvalidArgument  = New(http.StatusBadRequest, "Invalid argument", nil)
	ErrUnauthorized     = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden        = New(http.StatusForbidden, "Forbidden", nil)
	ErrInternalServer   = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrStoreUnavailable = New(http.StatusServiceUnavailable, "Store unavailable", nil)
)

// NotFound wraps err as a not-found error with a caller-facing message.
func NotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

// InvalidArgument wraps err as a bad-request error.
func InvalidArgument(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

// StoreUnavailable wraps err as a persistence-layer failure.
func StoreUnavailable(message string, err error) *Error {
	return New(http.StatusServiceUnavailable, message, err)
}

// IsNotFound reports whether err is a not-found class error.
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound
}

// ErrorMiddleware maps handler errors to a generic JSON failure response.
// Internal error detail stays in the log, never in the response body.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *Error
		if !errors.As(err, &appErr) {
			appErr = ErrInternalServer
		}

		c.AbortWithStatusJSON(appErr.Code, gin.H{"error": appErr.Message})
	}
}
