package dto

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidAdminSecret ErrorCode = "AUTH_002"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeBadRequest       ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer       ErrorCode = "SRV_001"
	ErrorCodeDatabaseError        ErrorCode = "SRV_002"
	ErrorCodeExternalServiceError ErrorCode = "SRV_003"
	ErrorCodeTimeout              ErrorCode = "SRV_004"
)

// ErrorResponse is the body of every failed request. Detail is the
// human-readable message clients display.
type ErrorResponse struct {
	Success   bool         `json:"success"`
	Detail    string       `json:"detail"`
	Code      ErrorCode    `json:"code"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// FieldError names a request field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, detail string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Detail:    detail,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// WithFieldErrors attaches per-field validation messages
func (e *ErrorResponse) WithFieldErrors(fields []FieldError) *ErrorResponse {
	e.Errors = fields
	return e
}

// HandleValidationError converts a binding error into an error response.
// Validator errors are listed per field; anything else (malformed JSON, a
// number that does not parse) is reported as a single message.
func HandleValidationError(err error) *ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewErrorResponse(ErrorCodeValidationFailed, "Invalid request: "+err.Error())
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
	}
	return NewErrorResponse(ErrorCodeValidationFailed, fields[0].Message).WithFieldErrors(fields)
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
