package errs

import "fmt"

// ObjectNotFoundError reports that an object of a given kind is absent.
// ParamName carries the kind ("Package", "Robot", "Task") and ID the identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// MissingReferenceError reports an entity reference carrying neither an id nor inline data.
type MissingReferenceError struct {
	Kind string
}

func NewMissingReferenceError(kind string) *MissingReferenceError {
	return &MissingReferenceError{Kind: kind}
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s: %s id or %s data must be provided", ErrMissingReference, e.Kind, e.Kind)
}

func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}
