package task

import (
	"strings"

	"fleetdispatch/internal/pkg/errs"
)

// Status is a caller-defined task status. Any non-blank value is accepted.
type Status string

// Completed is the terminal status for the Complete transition.
const Completed Status = "COMPLETED"

// NewStatus validates a raw status value.
func NewStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects blank statuses.
func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("task status")
	}
	return nil
}

// IsCompleted reports whether the status denotes completion.
func (s Status) IsCompleted() bool {
	return s == Completed
}

func (s Status) String() string {
	return string(s)
}
