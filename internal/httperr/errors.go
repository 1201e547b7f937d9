// Package httperr carries application errors across the service/handler
// boundary with an HTTP status and a stable machine-readable code.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
	ErrorCodeTimeout         ErrorCode = "TIMEOUT"
)

type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: message}
}

func Upstream(message string, err error) *AppError {
	return &AppError{Status: http.StatusBadGateway, Code: ErrorCodeUpstreamFailure, Message: message, Err: err}
}

// Send writes an error response, mapping AppError to its status and code and
// everything else to a 500.
func Send(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
