// Package store is the storage-access layer. Failures that handlers branch
// on are exposed as sentinel errors rather than driver error codes.
package store

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a unique constraint rejected the write.
	ErrConflict = errors.New("record conflicts with an existing one")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
