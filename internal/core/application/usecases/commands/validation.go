package commands

import (
	"fmt"
	"strings"

	"fleetdispatch/internal/core/domain/model/kernel"
	"fleetdispatch/internal/pkg/errs"
)

// Rules reported in errs.ValidationError.Rule.
const (
	RuleRequired              = "must be provided"
	RuleNotBlank              = "must not be blank"
	RuleCompletedAtNeedsState = "may only be set when status is COMPLETED"
)

// RuleEitherOr is the rule reported when neither an id nor inline data is given.
func RuleEitherOr(idField, dataField string) string {
	return fmt.Sprintf("either %s or %s must be provided", idField, dataField)
}

func requiredField(field string) error {
	return errs.NewValidationErrorWithCause(field, RuleRequired, errs.NewValueIsRequiredError(field))
}

// optionalID treats nil and blank ids as absent.
func optionalID(raw *string) (kernel.ID, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return kernel.ID{}, false
	}
	id, err := kernel.ParseID(*raw)
	if err != nil {
		return kernel.ID{}, false
	}
	return id, true
}

// requiredID parses an id that addresses an existing object.
func requiredID(field, raw string) (kernel.ID, error) {
	id, err := kernel.ParseID(raw)
	if err != nil {
		return kernel.ID{}, errs.NewValidationErrorWithCause(field, RuleRequired, err)
	}
	return id, nil
}
