package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Sentinel errors for the storefront. Services attach detail by wrapping,
// e.g. fmt.Errorf("%w: name is required", ErrInvalidInput), which keeps
// errors.Is working against the sentinel.
var (
	ErrInvalidInput       = New(http.StatusBadRequest, "Invalid product data", nil)
	ErrDuplicateID        = New(http.StatusConflict, "Product ID already exists", nil)
	ErrNotFound           = New(http.StatusNotFound, "Product not found", nil)
	ErrUnauthorized       = New(http.StatusUnauthorized, "Unauthorized. Please log in.", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid username or password", nil)
	ErrStorage            = New(http.StatusInternalServerError, "Failed to persist data", nil)
)

// HandleError translates a service error into a status code and a JSON body
// with a human-readable message. Errors outside the known taxonomy are
// logged and reported as a plain 500.
func HandleError(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"message": err.Error()})
		return
	}
	zap.L().Error("Unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
