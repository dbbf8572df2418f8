package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_002"
	ErrorCodeForbidden          ErrorCode = "AUTH_003"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeReportFailed   ErrorCode = "SRV_002"
)

// ErrorResponse is the body of every failed API call. Error always holds
// the human-readable message so browser code can show it directly.
type ErrorResponse struct {
	Success   bool        `json:"success" example:"false"`
	Error     string      `json:"error" example:"Invalid credentials"`
	Code      ErrorCode   `json:"code" example:"AUTH_001"`
	Field     string      `json:"field,omitempty" example:"name"`
	Details   interface{} `json:"details,omitempty"`
	DebugInfo string      `json:"debugInfo,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2026-03-01T10:00:00Z"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithField adds a field name to the error
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}

// WithDebugInfo adds debug information (for development/testing only)
func (e *ErrorResponse) WithDebugInfo(format string, args ...interface{}) *ErrorResponse {
	e.DebugInfo = fmt.Sprintf(format, args...)
	return e
}

// RegisterValidators makes gin's validator report JSON field names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
	return nil
}

// HandleValidationError converts a binding error into a 400 body naming the
// first failing field.
func HandleValidationError(err error) *ErrorResponse {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fe.Field())
		}
		return NewErrorResponse(ErrorCodeValidationFailed, formatValidationError(first)).
			WithField(first.Field()).
			WithDetails(fields)
	}
	return NewErrorResponse(ErrorCodeBadRequest, "Invalid request body")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "missing required field: " + e.Field()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
