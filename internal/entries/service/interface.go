// Package service implements the entry codec that moves journal entries
// between their plaintext working representation and their encrypted storage
// representation.
package service

import (
	"github.com/allisson/journalite/internal/entries/domain"
)

// EntryCodec encrypts and decrypts the sensitive fields of journal entries.
// Decryption never aborts a batch: per-field failures are reported alongside
// the entry, with the failed field replaced by a sentinel value.
type EntryCodec interface {
	// EncryptEntry returns a copy of the entry with Title and Content
	// encrypted for the entry's owner and the encryption marker set.
	EncryptEntry(entry *domain.Entry) (*domain.Entry, error)
	// DecryptEntry returns the working representation of an entry. Entries
	// without the encryption marker are returned unchanged. Field-level
	// decryption failures are reported in the returned slice; the entry is
	// still usable with sentinel values in the failed fields.
	DecryptEntry(entry *domain.Entry) (*domain.Entry, []*domain.FieldError)
	// DecryptEntries decrypts a batch, keeping every entry in the result
	// even when some of its fields failed to decrypt.
	DecryptEntries(entries []*domain.Entry) ([]*domain.Entry, []*domain.FieldError)
}
