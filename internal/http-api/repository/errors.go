package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert loses a race against an identical
// row. Service-level existence pre-checks are best effort only; the unique
// constraint at the storage layer is the guarantee, and both paths must
// surface as the same business error.
var ErrDuplicate = errors.New("duplicate record")

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// mapDuplicate converts unique violations to ErrDuplicate and passes every
// other error through.
func mapDuplicate(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
