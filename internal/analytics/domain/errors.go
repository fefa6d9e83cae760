package domain

import (
	"fmt"

	"github.com/allisson/journalite/internal/errors"
)

// Analytics-specific error definitions.
var (
	// ErrProviderUnavailable indicates a remote tier failed (network error,
	// timeout, or malformed response) and the next tier should be tried.
	ErrProviderUnavailable = errors.Wrap(errors.ErrUnavailable, "analytics provider unavailable")
	// ErrMissingText indicates mood detection was called without text.
	ErrMissingText = errors.Wrap(errors.ErrInvalidInput, "text is required")
	// ErrMissingUserID indicates an insights request without a user.
	ErrMissingUserID = errors.Wrap(errors.ErrInvalidInput, "user id is required")
)

// MalformedEntryError indicates an entry missing required structural fields.
// It is the only failure class that surfaces as a capability-level failure in
// the returned envelope.
type MalformedEntryError struct {
	// EntryID identifies the offending entry; may be empty when the entry
	// has no identifier at all.
	EntryID string
	// Reason describes the structural problem.
	Reason string
}

func (e *MalformedEntryError) Error() string {
	if e.EntryID == "" {
		return fmt.Sprintf("malformed entry: %s", e.Reason)
	}
	return fmt.Sprintf("malformed entry %s: %s", e.EntryID, e.Reason)
}
