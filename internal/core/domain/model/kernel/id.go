package kernel

import (
	"strings"

	"fleetdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is an opaque identifier for packages, robots and tasks.
//
// Store-generated identifiers are random UUIDs rendered as text; caller-supplied
// identifiers are kept verbatim, so "P1" and a UUID string are equally valid.
//
// Example:
//
//	generated := kernel.NewID()
//	supplied, err := kernel.ParseID("P1")
//	if err != nil {
//	    return fmt.Errorf("invalid package id: %w", err)
//	}
type ID struct {
	value string
}

// NewID generates a new random identifier.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// ParseID wraps a caller-supplied identifier. Blank strings are rejected.
func ParseID(s string) (ID, error) {
	if strings.TrimSpace(s) == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier text. The zero value renders as "".
func (id ID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id ID) IsZero() bool {
	return id.value == ""
}

// IsEqual compares two identifiers.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}
