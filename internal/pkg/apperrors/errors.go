package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username or phone number already exists")
	ErrInvalidRole       = errors.New("role must be admin or superuser")
)

// Student errors
var (
	ErrInvalidStudentID = errors.New("invalid student id")
)

// Report errors
var (
	ErrUnsupportedFormat = errors.New("unsupported download format")
)

// NewValidationError creates a validation error naming the offending field
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Message extracts the client-facing message of err: the CustomError message
// when present, otherwise the error text.
func Message(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Error()
	}
	return err.Error()
}

// Field returns the field name attached to a validation error, if any.
func Field(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Field
	}
	return ""
}
