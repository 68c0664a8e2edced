// Package pgerr translates PostgreSQL constraint violations into errs types.
package pgerr

import (
	"errors"

	"photoflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// Translate maps a unique violation to a StateIsInvalidError and a foreign
// key violation to an ObjectNotFoundError on the referenced entity. Other
// errors are returned unchanged.
func Translate(err error, entity string, id any) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return errs.NewStateIsInvalidErrorWithCause(entity, errors.New(pgErr.Detail))
	case codeForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(pgErr.ConstraintName, id, errors.New(pgErr.Detail))
	default:
		return err
	}
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
