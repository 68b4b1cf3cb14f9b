// Package repositories translates entity operations into queries against the
// store. All parameter binding and soft-delete filtering lives here.
package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the id (or the row is soft-deleted
	// where the operation only touches active rows).
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means the store rejected the write with a uniqueness
	// violation.
	ErrDuplicate = errors.New("duplicate record")
)

// translateError maps store failures onto the repository taxonomy. Anything
// not recognized passes through and ends up as an internal error upstream.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicate
	}
	return err
}
