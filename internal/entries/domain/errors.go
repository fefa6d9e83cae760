package domain

import (
	"fmt"

	"github.com/allisson/journalite/internal/errors"
)

// Entry-specific error definitions.
var (
	// ErrEntryNotFound indicates the entry does not exist or belongs to another user.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "entry not found")
	// ErrInvalidFieldShape indicates a field value that is neither a plain
	// string nor the tagged encrypted object.
	ErrInvalidFieldShape = errors.Wrap(errors.ErrInvalidInput, "invalid field shape")
	// ErrMissingOwner indicates an entry without a user identifier.
	ErrMissingOwner = errors.Wrap(errors.ErrInvalidInput, "entry has no owner")
)

// FieldError reports a per-field decryption failure. The surrounding entry is
// still returned with the sentinel value in place of the failed field.
type FieldError struct {
	// EntryID identifies the affected entry.
	EntryID string
	// Field names the field that failed to decrypt.
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q of entry %s could not be decrypted", e.Field, e.EntryID)
}
