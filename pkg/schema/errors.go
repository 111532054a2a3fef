package schema

import "fmt"

// Error codes for structured error reporting at the input and command
// boundaries. The core (Decode and the renderers) never fails; these cover
// everything around it.
const (
	ErrCodeInputNotFound = "INPUT_NOT_FOUND"
	ErrCodeInputInvalid  = "INPUT_INVALID"
	ErrCodeUnknownFormat = "UNKNOWN_FORMAT"
	ErrCodeFilter        = "FILTER_ERROR"
	ErrCodeValidation    = "VALIDATION_ERROR"
)

// FlowvizError is the structured error type for all flowviz boundary
// operations.
type FlowvizError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Input   string         `json:"input,omitempty"`
	Cause   error          `json:"-"`
}

func (e *FlowvizError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Input, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *FlowvizError) Unwrap() error {
	return e.Cause
}

// NewError creates a new FlowvizError.
func NewError(code, message string) *FlowvizError {
	return &FlowvizError{Code: code, Message: message}
}

// NewErrorf creates a new FlowvizError with a formatted message.
func NewErrorf(code, format string, args ...any) *FlowvizError {
	return &FlowvizError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithInput attaches the offending input path to the error.
func (e *FlowvizError) WithInput(path string) *FlowvizError {
	e.Input = path
	return e
}

// WithCause attaches an underlying cause.
func (e *FlowvizError) WithCause(err error) *FlowvizError {
	e.Cause = err
	return e
}

// WithDetails attaches key-value details.
func (e *FlowvizError) WithDetails(details map[string]any) *FlowvizError {
	e.Details = details
	return e
}
