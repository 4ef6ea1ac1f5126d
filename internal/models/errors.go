package models

import "fmt"

// ValidationError reports bad or missing request input. Mapped to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidModelOutputError reports that the model's raw text could not be
// parsed as JSON. Raw carries the text verbatim for diagnosis. Mapped to
// HTTP 400.
type InvalidModelOutputError struct {
	Raw string
	Err error
}

func (e *InvalidModelOutputError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v", e.Err)
}

func (e *InvalidModelOutputError) Unwrap() error {
	return e.Err
}
