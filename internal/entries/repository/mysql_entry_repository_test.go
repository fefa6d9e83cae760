package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	apperrors "github.com/allisson/journalite/internal/errors"
	"github.com/allisson/journalite/internal/testutil"
)

func TestNewMySQLEntryRepository(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewMySQLEntryRepository(db)
	assert.NotNil(t, repo)
	assert.IsType(t, &MySQLEntryRepository{}, repo)
}

func TestMySQLEntryRepository_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newStoredEntry("user-1", "happy")
	err := repo.Create(ctx, entry)
	require.NoError(t, err)

	read, err := repo.Get(ctx, entry.ID, entry.UserID)
	require.NoError(t, err)

	assert.Equal(t, entry.ID, read.ID)
	assert.Equal(t, entry.UserID, read.UserID)
	assert.Equal(t, entry.Title, read.Title)
	assert.Equal(t, entry.Content, read.Content)
	assert.Equal(t, entry.Mood, read.Mood)
	assert.Equal(t, entry.Tags, read.Tags)
	assert.Equal(t, entry.ImageRefs, read.ImageRefs)
	assert.WithinDuration(t, entry.CreatedAt, read.CreatedAt, time.Second)
}

func TestMySQLEntryRepository_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	read, err := repo.Get(ctx, uuid.Must(uuid.NewV7()), "user-1")
	assert.Nil(t, read)
	assert.ErrorIs(t, err, entriesDomain.ErrEntryNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMySQLEntryRepository_Update(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newStoredEntry("user-1", "happy")
	require.NoError(t, repo.Create(ctx, entry))

	entry.Mood = "calm"
	entry.Title = entriesDomain.EncryptedField("Y2lwaGVydGV4dA==")
	entry.Content = entriesDomain.EncryptedField("bW9yZS1jaXBoZXJ0ZXh0")
	entry.Encrypted = true
	entry.EncryptedFields = []string{"title", "content"}
	entry.UpdatedAt = time.Now().UTC()

	require.NoError(t, repo.Update(ctx, entry))

	read, err := repo.Get(ctx, entry.ID, entry.UserID)
	require.NoError(t, err)
	assert.Equal(t, "calm", read.Mood)
	assert.True(t, read.Encrypted)
	assert.True(t, read.Title.Encrypted)
	assert.Equal(t, "Y2lwaGVydGV4dA==", read.Title.Value)
	assert.Equal(t, []string{"title", "content"}, read.EncryptedFields)
}

func TestMySQLEntryRepository_Update_NotFound(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newStoredEntry("user-1", "happy")
	err := repo.Update(ctx, entry)
	assert.ErrorIs(t, err, entriesDomain.ErrEntryNotFound)
}

func TestMySQLEntryRepository_ListByUser(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	moods := []string{"happy", "sad", "happy"}
	for i, mood := range moods {
		entry := newStoredEntry("user-1", mood)
		entry.CreatedAt = base.AddDate(0, 0, i)
		entry.UpdatedAt = entry.CreatedAt
		require.NoError(t, repo.Create(ctx, entry))
	}
	require.NoError(t, repo.Create(ctx, newStoredEntry("user-2", "happy")))

	t.Run("returns entries newest first", func(t *testing.T) {
		entries, err := repo.ListByUser(ctx, entriesDomain.EntryFilter{UserID: "user-1"})
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.True(t, entries[0].CreatedAt.After(entries[1].CreatedAt))
	})

	t.Run("filters by mood", func(t *testing.T) {
		entries, err := repo.ListByUser(ctx, entriesDomain.EntryFilter{UserID: "user-1", Mood: "sad"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "sad", entries[0].Mood)
	})

	t.Run("filters by time window", func(t *testing.T) {
		entries, err := repo.ListByUser(ctx, entriesDomain.EntryFilter{
			UserID: "user-1",
			Since:  base.AddDate(0, 0, 1),
			Until:  base.AddDate(0, 0, 2),
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "sad", entries[0].Mood)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		entries, err := repo.ListByUser(ctx, entriesDomain.EntryFilter{UserID: "user-1", Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestMySQLEntryRepository_Delete(t *testing.T) {
	testutil.SkipIfNoMySQL(t)
	db := testutil.SetupMySQLDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupMySQLDB(t, db)

	repo := NewMySQLEntryRepository(db)
	ctx := context.Background()

	entry := newStoredEntry("user-1", "happy")
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, entry.ID, entry.UserID))

	read, err := repo.Get(ctx, entry.ID, entry.UserID)
	assert.Nil(t, read)
	assert.ErrorIs(t, err, entriesDomain.ErrEntryNotFound)

	err = repo.Delete(ctx, entry.ID, entry.UserID)
	assert.ErrorIs(t, err, entriesDomain.ErrEntryNotFound)
}
