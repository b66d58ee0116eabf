package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppError is a domain error carrying the HTTP status it maps to.
type AppError struct {
	Code    string
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

// Error constructors for the domain taxonomy. Each call returns a fresh
// value so callers may attach context without sharing state.
func ErrMissingFields() *AppError {
	return &AppError{Code: "MISSING_REQUIRED_FIELDS", Message: "some required fields are missing", Status: http.StatusBadRequest}
}

func ErrValidation(msg string) *AppError {
	if msg == "" {
		msg = "validation failed"
	}
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Status: http.StatusUnprocessableEntity}
}

func ErrNotFound(msg string) *AppError {
	if msg == "" {
		msg = "not found"
	}
	return &AppError{Code: "NOT_FOUND", Message: msg, Status: http.StatusNotFound}
}

func ErrDataAlreadyExists(msg string) *AppError {
	if msg == "" {
		msg = "data already exists"
	}
	return &AppError{Code: "DATA_ALREADY_EXISTS", Message: msg, Status: http.StatusConflict}
}

func ErrUnauthorized() *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: "unauthorized access", Status: http.StatusUnauthorized}
}

func ErrForbidden() *AppError {
	return &AppError{Code: "FORBIDDEN", Message: "forbidden action", Status: http.StatusForbidden}
}

func ErrDatabase(err error) *AppError {
	// The underlying store error is logged, never surfaced to clients.
	if err != nil {
		GetLogger().Error("store error", zap.Error(err))
	}
	return &AppError{Code: "DATABASE_ERROR", Message: "database error occurred", Status: http.StatusInternalServerError}
}

func ErrInternal() *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: "internal server error", Status: http.StatusInternalServerError}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps any error to its AppError status and writes the JSON
// body. Unrecognized errors are masked as a generic internal error.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		JSONError(c, appErr.Status, appErr.Message, appErr.Code)
		return
	}
	JSONError(c, http.StatusInternalServerError, "internal server error", "")
}
