package actions

import "fmt"

// ErrorCode classifies action failures for logging and wire mapping.
type ErrorCode string

const (
	CodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	CodeMissingContext        ErrorCode = "MISSING_CONTEXT"
	CodeUnsupportedAction     ErrorCode = "UNSUPPORTED_ACTION"
	CodeCapabilityUnavailable ErrorCode = "CAPABILITY_UNAVAILABLE"
	CodeDeliveryFailed        ErrorCode = "DELIVERY_FAILED"
	CodeSchedulingFailed      ErrorCode = "SCHEDULING_FAILED"
	CodeUpstreamTimeout       ErrorCode = "UPSTREAM_TIMEOUT"
)

// ActionError is a structured action failure. Retryable errors surface a
// manual retry affordance; nothing retries automatically.
type ActionError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Field     string    `json:"field,omitempty"`
	Retryable bool      `json:"retryable"`
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a non-retryable input rejection.
func NewValidationError(field, message string) *ActionError {
	return &ActionError{
		Code:    CodeValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewMissingContextError flags a required context key the card never carried.
func NewMissingContextError(field string) *ActionError {
	return &ActionError{
		Code:    CodeMissingContext,
		Message: fmt.Sprintf("action context is missing %q", field),
		Field:   field,
	}
}

// NewUnsupportedActionError flags an action type with no registered executor.
func NewUnsupportedActionError(actionType string) *ActionError {
	return &ActionError{
		Code:    CodeUnsupportedAction,
		Message: fmt.Sprintf("unsupported action type %q", actionType),
	}
}

// NewCapabilityUnavailableError flags a capability this deployment or
// device cannot provide.
func NewCapabilityUnavailableError(capability string) *ActionError {
	return &ActionError{
		Code:    CodeCapabilityUnavailable,
		Message: fmt.Sprintf("%s is not available", capability),
	}
}

// NewDeliveryFailedError wraps a downstream send failure. Retryable.
func NewDeliveryFailedError(err error) *ActionError {
	return &ActionError{
		Code:      CodeDeliveryFailed,
		Message:   err.Error(),
		Retryable: true,
	}
}

// NewSchedulingFailedError wraps a purchases-service failure. Retryable.
func NewSchedulingFailedError(err error) *ActionError {
	return &ActionError{
		Code:      CodeSchedulingFailed,
		Message:   err.Error(),
		Retryable: true,
	}
}
