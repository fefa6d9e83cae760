package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
	cryptoService "github.com/allisson/journalite/internal/crypto/service"
	"github.com/allisson/journalite/internal/entries/domain"
)

func newTestCodec(t *testing.T, root string) EntryCodec {
	t.Helper()
	keyDeriver, err := cryptoService.NewHKDFKeyDeriver([]byte(root))
	require.NoError(t, err)
	fieldCipher := cryptoService.NewAEADFieldCipher(cryptoService.NewAEADManager(), cryptoDomain.AESGCM)
	return NewEntryCodec(keyDeriver, fieldCipher)
}

func newTestEntry(userID string) *domain.Entry {
	now := time.Now().UTC()
	return &domain.Entry{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    userID,
		Title:     domain.PlainField("morning pages"),
		Content:   domain.PlainField("slept well, went for a run before work"),
		Mood:      "happy",
		Tags:      []string{"exercise", "sleep"},
		Private:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestEntryCodecEncryptEntry(t *testing.T) {
	codec := newTestCodec(t, "test-root")

	t.Run("encrypts title and content and sets marker", func(t *testing.T) {
		entry := newTestEntry("user-1")
		encrypted, err := codec.EncryptEntry(entry)
		require.NoError(t, err)

		assert.True(t, encrypted.Encrypted)
		assert.Equal(t, []string{"title", "content"}, encrypted.EncryptedFields)
		assert.True(t, encrypted.Title.Encrypted)
		assert.True(t, encrypted.Content.Encrypted)
		assert.NotEqual(t, entry.Title.Value, encrypted.Title.Value)
		assert.NotEqual(t, entry.Content.Value, encrypted.Content.Value)

		// Non-sensitive fields are untouched.
		assert.Equal(t, entry.Mood, encrypted.Mood)
		assert.Equal(t, entry.Tags, encrypted.Tags)
		assert.Equal(t, entry.Private, encrypted.Private)
	})

	t.Run("does not mutate the input entry", func(t *testing.T) {
		entry := newTestEntry("user-1")
		_, err := codec.EncryptEntry(entry)
		require.NoError(t, err)
		assert.False(t, entry.Encrypted)
		assert.Equal(t, "morning pages", entry.Title.Value)
	})

	t.Run("already encrypted fields pass through", func(t *testing.T) {
		entry := newTestEntry("user-1")
		first, err := codec.EncryptEntry(entry)
		require.NoError(t, err)
		second, err := codec.EncryptEntry(first)
		require.NoError(t, err)
		assert.Equal(t, first.Title, second.Title)
		assert.Equal(t, first.Content, second.Content)
	})

	t.Run("rejects entries without an owner", func(t *testing.T) {
		entry := newTestEntry("")
		_, err := codec.EncryptEntry(entry)
		assert.ErrorIs(t, err, domain.ErrMissingOwner)
	})
}

func TestEntryCodecDecryptEntry(t *testing.T) {
	codec := newTestCodec(t, "test-root")

	t.Run("round trip restores plaintext and strips marker", func(t *testing.T) {
		entry := newTestEntry("user-1")
		encrypted, err := codec.EncryptEntry(entry)
		require.NoError(t, err)

		decrypted, fieldErrs := codec.DecryptEntry(encrypted)
		assert.Empty(t, fieldErrs)
		assert.False(t, decrypted.Encrypted)
		assert.Nil(t, decrypted.EncryptedFields)
		assert.Equal(t, entry.Title, decrypted.Title)
		assert.Equal(t, entry.Content, decrypted.Content)
	})

	t.Run("entry without marker passes through unchanged", func(t *testing.T) {
		entry := newTestEntry("user-1")
		decrypted, fieldErrs := codec.DecryptEntry(entry)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, entry, decrypted)
	})

	t.Run("wrong key yields sentinel without aborting", func(t *testing.T) {
		entry := newTestEntry("user-1")
		encrypted, err := codec.EncryptEntry(entry)
		require.NoError(t, err)

		otherCodec := newTestCodec(t, "another-root")
		decrypted, fieldErrs := otherCodec.DecryptEntry(encrypted)
		require.Len(t, fieldErrs, 2)
		assert.Equal(t, cryptoDomain.DecryptionFailedSentinel, decrypted.Title.Value)
		assert.Equal(t, cryptoDomain.DecryptionFailedSentinel, decrypted.Content.Value)
		assert.False(t, decrypted.Encrypted)

		// Non-sensitive fields survive the failure.
		assert.Equal(t, entry.Mood, decrypted.Mood)
		assert.Equal(t, entry.Tags, decrypted.Tags)
	})

	t.Run("corrupted field reported without discarding the entry", func(t *testing.T) {
		entry := newTestEntry("user-1")
		encrypted, err := codec.EncryptEntry(entry)
		require.NoError(t, err)
		encrypted.Content = domain.EncryptedField("not-a-valid-payload")

		decrypted, fieldErrs := codec.DecryptEntry(encrypted)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "content", fieldErrs[0].Field)
		assert.Equal(t, encrypted.ID.String(), fieldErrs[0].EntryID)
		assert.Equal(t, "morning pages", decrypted.Title.Value)
		assert.Equal(t, cryptoDomain.DecryptionFailedSentinel, decrypted.Content.Value)
	})
}

func TestEntryCodecDecryptEntries(t *testing.T) {
	codec := newTestCodec(t, "test-root")

	t.Run("one corrupted record never blocks the batch", func(t *testing.T) {
		var batch []*domain.Entry
		for i := 0; i < 3; i++ {
			encrypted, err := codec.EncryptEntry(newTestEntry("user-1"))
			require.NoError(t, err)
			batch = append(batch, encrypted)
		}
		batch[1].Title = domain.EncryptedField("garbage")

		decrypted, fieldErrs := codec.DecryptEntries(batch)
		require.Len(t, decrypted, 3)
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "title", fieldErrs[0].Field)
		assert.Equal(t, "morning pages", decrypted[0].Title.Value)
		assert.Equal(t, cryptoDomain.DecryptionFailedSentinel, decrypted[1].Title.Value)
		assert.Equal(t, "morning pages", decrypted[2].Title.Value)
	})

	t.Run("empty batch", func(t *testing.T) {
		decrypted, fieldErrs := codec.DecryptEntries(nil)
		assert.Empty(t, decrypted)
		assert.Empty(t, fieldErrs)
	})
}
