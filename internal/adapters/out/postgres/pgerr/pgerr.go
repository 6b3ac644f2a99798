// Package pgerr translates driver errors raised by the GORM repositories into
// the store error taxonomy of the core.
package pgerr

import (
	"errors"
	"fmt"

	"fleetdispatch/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// ErrForeignKeyViolation is wrapped when a row references a missing package or robot.
var ErrForeignKeyViolation = errors.New("foreign key violation")

// Wrap turns err into an *errs.StoreError tagged with op. Unique violations
// additionally match errs.ErrAlreadyExists, both the native pgx error and
// gorm.ErrDuplicatedKey produced when TranslateError is enabled.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewStoreError(op, fmt.Errorf("%w: %w", errs.ErrAlreadyExists, err))
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewStoreError(op, fmt.Errorf("%w: %w", ErrForeignKeyViolation, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errs.NewStoreError(op, fmt.Errorf("%w: %s: %w", errs.ErrAlreadyExists, pgErr.ConstraintName, err))
		case foreignKeyViolation:
			return errs.NewStoreError(op, fmt.Errorf("%w: %s: %w", ErrForeignKeyViolation, pgErr.ConstraintName, err))
		}
	}

	return errs.NewStoreError(op, err)
}
