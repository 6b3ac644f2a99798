package errs

import "fmt"

// ValidationError reports a failed request rule. Field names the offending input
// field and Rule the condition it broke.
type ValidationError struct {
	Field string
	Rule  string
	Cause error
}

func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule}
}

func NewValidationErrorWithCause(field, rule string, cause error) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Cause: cause}
}

func (e *ValidationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Rule), e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Cause}
}
