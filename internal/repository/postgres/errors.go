package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation (error code 23505), optionally against a named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}

// isForeignKeyViolation checks if the error is a PostgreSQL foreign key
// violation (error code 23503).
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
