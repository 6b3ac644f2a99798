package errs

import "fmt"

// StoreError wraps a persistence failure with the operation that produced it.
// Both ErrStore and the driver cause stay reachable through errors.Is / errors.As.
type StoreError struct {
	Op    string
	Cause error
}

func NewStoreError(op string, cause error) *StoreError {
	return &StoreError{Op: op, Cause: cause}
}

func (e *StoreError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrStore, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrStore, e.Op, e.Cause)
}

func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrStore}
	}
	return []error{ErrStore, e.Cause}
}
