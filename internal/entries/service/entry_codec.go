package service

import (
	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
	cryptoService "github.com/allisson/journalite/internal/crypto/service"
	"github.com/allisson/journalite/internal/entries/domain"
)

// fieldCodec implements EntryCodec using per-user derived keys.
type fieldCodec struct {
	keyDeriver  cryptoService.KeyDeriver
	fieldCipher cryptoService.FieldCipher
}

// NewEntryCodec creates an EntryCodec backed by the given key deriver and
// field cipher.
func NewEntryCodec(keyDeriver cryptoService.KeyDeriver, fieldCipher cryptoService.FieldCipher) EntryCodec {
	return &fieldCodec{keyDeriver: keyDeriver, fieldCipher: fieldCipher}
}

// EncryptEntry encrypts Title and Content with the owner's derived key and
// sets the encryption marker. Fields already encrypted are left as-is so the
// operation is idempotent.
func (c *fieldCodec) EncryptEntry(entry *domain.Entry) (*domain.Entry, error) {
	if entry.UserID == "" {
		return nil, domain.ErrMissingOwner
	}

	key, err := c.keyDeriver.Derive(entry.UserID)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.ZeroKey(key)

	out := *entry
	if !out.Title.Encrypted {
		payload, err := c.fieldCipher.EncryptField(out.Title.Value, key)
		if err != nil {
			return nil, err
		}
		out.Title = domain.EncryptedField(payload)
	}
	if !out.Content.Encrypted {
		payload, err := c.fieldCipher.EncryptField(out.Content.Value, key)
		if err != nil {
			return nil, err
		}
		out.Content = domain.EncryptedField(payload)
	}

	out.Encrypted = true
	out.EncryptedFields = append([]string(nil), domain.EncryptedFieldNames...)
	return &out, nil
}

// DecryptEntry returns the working representation of an entry. The marker and
// field list are stripped from the result. Entries written before encryption
// was introduced carry no marker and pass through unchanged.
func (c *fieldCodec) DecryptEntry(entry *domain.Entry) (*domain.Entry, []*domain.FieldError) {
	if !entry.Encrypted {
		return entry, nil
	}

	out := *entry
	out.Encrypted = false
	out.EncryptedFields = nil

	key, err := c.keyDeriver.Derive(entry.UserID)
	if err != nil {
		// Without a key every encrypted field is unreadable.
		out.Title = domain.PlainField(cryptoDomain.DecryptionFailedSentinel)
		out.Content = domain.PlainField(cryptoDomain.DecryptionFailedSentinel)
		return &out, []*domain.FieldError{
			{EntryID: entry.ID.String(), Field: "title"},
			{EntryID: entry.ID.String(), Field: "content"},
		}
	}
	defer cryptoDomain.ZeroKey(key)

	var fieldErrs []*domain.FieldError
	decryptField := func(name string, value domain.FieldValue) domain.FieldValue {
		if !value.Encrypted {
			return value
		}
		plaintext := c.fieldCipher.DecryptField(value.Value, key)
		if plaintext == cryptoDomain.DecryptionFailedSentinel {
			fieldErrs = append(fieldErrs, &domain.FieldError{EntryID: entry.ID.String(), Field: name})
		}
		return domain.PlainField(plaintext)
	}

	out.Title = decryptField("title", entry.Title)
	out.Content = decryptField("content", entry.Content)
	return &out, fieldErrs
}

// DecryptEntries decrypts a batch of entries. Every entry stays in the result
// in input order; failures accumulate across the batch.
func (c *fieldCodec) DecryptEntries(entries []*domain.Entry) ([]*domain.Entry, []*domain.FieldError) {
	out := make([]*domain.Entry, 0, len(entries))
	var fieldErrs []*domain.FieldError
	for _, entry := range entries {
		decrypted, errs := c.DecryptEntry(entry)
		out = append(out, decrypted)
		fieldErrs = append(fieldErrs, errs...)
	}
	return out, fieldErrs
}
