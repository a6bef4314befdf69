package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/savioruz/geoapi/pkg/failure"
)

const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
	NotNullViolation    = "23502"
)

func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// ConstraintName returns the constraint a postgres error was raised for, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

func IsUniqueViolation(err error) bool {
	return code(err) == UniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return code(err) == ForeignKeyViolation
}

// Classification holds the messages used when a store error has a domain meaning.
// An empty message leaves that case unclassified.
type Classification struct {
	NotFound      string
	Conflict      string
	MissingParent string

	// Constraints overrides Conflict for unique violations of a named constraint.
	Constraints map[string]string
}

// Classify turns a store error into a failure. Anything without a domain meaning becomes an
// internal failure.
func Classify(err error, c Classification) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows) && c.NotFound != "":
		return failure.NotFound(c.NotFound)
	case IsUniqueViolation(err) && c.Constraints[ConstraintName(err)] != "":
		return failure.Conflict(c.Constraints[ConstraintName(err)])
	case IsUniqueViolation(err) && c.Conflict != "":
		return failure.Conflict(c.Conflict)
	case IsForeignKeyViolation(err) && c.MissingParent != "":
		return failure.NotFound(c.MissingParent)
	default:
		return failure.InternalError(err)
	}
}
