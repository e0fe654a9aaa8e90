package utils

import "fmt"

// ErrorType represents different categories of errors in the application
type ErrorType string

const (
	ErrorTypeMathDomain         ErrorType = "math_domain"
	ErrorTypeEmptyTrack         ErrorType = "empty_track"
	ErrorTypeRouteDeviation     ErrorType = "route_deviation"
	ErrorTypeControlDeviation   ErrorType = "control_deviation"
	ErrorTypeCheckpointMissing  ErrorType = "checkpoint_missing"
	ErrorTypeValidation         ErrorType = "validation"
	ErrorTypeInternal           ErrorType = "internal"
)

// Code is a stable, domain-local classifier. There is no HTTP surface here
// so this is not a status code, just a compact identifier for logs/JSON.
type Code int

const (
	CodeUnknown Code = iota
	CodeMathDomain
	CodeEmptyTrack
	CodeRouteDeviation
	CodeControlDeviation
	CodeCheckpointMissing
	CodeValidation
	CodeInternal
)

// AppError represents a structured application error
type AppError struct {
	Type     ErrorType              `json:"type"`
	Code     Code                   `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Internal error                  `json:"-"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the internal error for error wrapping, so callers can
// errors.Is/errors.As against the sentinel errors in package brevet.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// NewMathDomainError creates a math-domain error. It is always caught
// locally by the route builder and must never escape to a caller.
func NewMathDomainError(message string) *AppError {
	return &AppError{Type: ErrorTypeMathDomain, Code: CodeMathDomain, Message: message}
}

// NewEmptyTrackError creates an empty-track error (NoTrack / EmptyShapedTrack).
func NewEmptyTrackError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeEmptyTrack, Code: CodeEmptyTrack, Message: message, Internal: internal}
}

// NewRouteDeviationError creates a route-deviation error.
func NewRouteDeviationError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeRouteDeviation, Code: CodeRouteDeviation, Message: message, Internal: internal}
}

// NewControlDeviationError creates a control-deviation error.
func NewControlDeviationError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeControlDeviation, Code: CodeControlDeviation, Message: message, Internal: internal}
}

// NewCheckpointMissingError creates a checkpoint-missing error.
func NewCheckpointMissingError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeCheckpointMissing, Code: CodeCheckpointMissing, Message: message, Internal: internal}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, details ...string) *AppError {
	err := &AppError{Type: ErrorTypeValidation, Code: CodeValidation, Message: message}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// NewInternalError creates an internal error.
func NewInternalError(message string, internal error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Code: CodeInternal, Message: message, Internal: internal}
}

// WrapError wraps an existing error with a type and message, preserving an
// already-structured AppError instead of double-wrapping it.
func WrapError(err error, errorType ErrorType, message string) *AppError {
	if appErr, ok := err.(*AppError); ok {
		if appErr.Context == nil {
			appErr.Context = map[string]interface{}{}
		}
		appErr.Context["wrapped_from"] = message
		return appErr
	}
	return &AppError{Type: errorType, Message: message, Internal: err}
}

// LogAndWrapError logs an error with context and wraps it.
func LogAndWrapError(err error, errorType ErrorType, message string) *AppError {
	appErr := WrapError(err, errorType, message)

	logEvent := LogError(err, message).Str("error_type", string(errorType))
	if appErr.Details != "" {
		logEvent = logEvent.Str("details", appErr.Details)
	}
	logEvent.Msg("alignment error occurred")

	return appErr
}
