// Package sqlxrepos implements the core repositories on PostgreSQL via sqlx.
package sqlxrepos

import (
	"github.com/lib/pq"
)

// queryLimit caps every list read; there is no pagination cursor.
const queryLimit = 1000

const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}
