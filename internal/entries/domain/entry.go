// Package domain defines the core domain models and types for journal entries.
// Entries carry free-text fields that are encrypted per user before they reach
// storage; structured metadata (mood, tags, timestamps) stays in the clear so
// it can be queried and aggregated without key material.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// EncryptedFieldNames lists the entry fields subject to field-level encryption.
// The order is stable and mirrors the EncryptedFields marker written alongside
// encrypted entries.
var EncryptedFieldNames = []string{"title", "content"}

// Entry represents a journal entry with versioned encryption markers.
type Entry struct {
	// ID is the unique identifier for this entry.
	ID uuid.UUID
	// UserID identifies the owner; it also selects the derived encryption key.
	UserID string
	// Title is the entry title; encrypted at rest.
	Title FieldValue
	// Content is the entry body; encrypted at rest.
	Content FieldValue
	// Mood is an optional self-reported mood label (e.g., "happy", "anxious").
	Mood string
	// Tags are optional free-form labels. Stored in the clear.
	Tags []string
	// ImageRefs holds opaque references to attached images.
	ImageRefs []string
	// Private marks entries excluded from any sharing surface.
	Private bool
	// Encrypted indicates whether Title and Content hold ciphertext.
	Encrypted bool
	// EncryptedFields names the fields that were encrypted, for forward
	// compatibility if the encrypted set ever changes.
	EncryptedFields []string
	// CreatedAt is the UTC timestamp when the entry was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}

// EntryFilter narrows entry listings.
type EntryFilter struct {
	// UserID scopes the listing to a single owner. Required.
	UserID string
	// Mood filters by mood label when non-empty.
	Mood string
	// Since includes only entries created at or after this time when non-zero.
	Since time.Time
	// Until includes only entries created before this time when non-zero.
	Until time.Time
	// Limit caps the number of returned entries (0 means repository default).
	Limit uint
	// Offset skips this many entries for pagination.
	Offset uint
}
