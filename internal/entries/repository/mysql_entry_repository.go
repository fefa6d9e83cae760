package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/journalite/internal/database"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	apperrors "github.com/allisson/journalite/internal/errors"
)

// MySQLEntryRepository implements Entry persistence for MySQL databases.
// UUIDs are stored as BINARY(16).
type MySQLEntryRepository struct {
	db *sql.DB
}

// NewMySQLEntryRepository creates a new MySQL Entry repository instance.
func NewMySQLEntryRepository(db *sql.DB) *MySQLEntryRepository {
	return &MySQLEntryRepository{db: db}
}

// Create inserts a new entry into the MySQL database.
func (m *MySQLEntryRepository) Create(ctx context.Context, entry *entriesDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO entries (id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	tags, imageRefs, encryptedFields, err := marshalEntryLists(entry)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		entry.UserID,
		entry.Title.Value,
		entry.Content.Value,
		entry.Mood,
		tags,
		imageRefs,
		entry.Private,
		entry.Encrypted,
		encryptedFields,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create entry")
	}
	return nil
}

// Update rewrites an existing entry owned by the given user.
func (m *MySQLEntryRepository) Update(ctx context.Context, entry *entriesDomain.Entry) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE entries
			  SET title = ?, content = ?, mood = ?, tags = ?, image_refs = ?, private = ?, encrypted = ?, encrypted_fields = ?, updated_at = ?
			  WHERE id = ? AND user_id = ?`

	id, err := entry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	tags, imageRefs, encryptedFields, err := marshalEntryLists(entry)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		entry.Title.Value,
		entry.Content.Value,
		entry.Mood,
		tags,
		imageRefs,
		entry.Private,
		entry.Encrypted,
		encryptedFields,
		entry.UpdatedAt,
		id,
		entry.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry")
	}
	return requireRowAffected(result)
}

// Get retrieves one entry by id, scoped to its owner.
func (m *MySQLEntryRepository) Get(ctx context.Context, entryID uuid.UUID, userID string) (*entriesDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at
			  FROM entries
			  WHERE id = ? AND user_id = ?`

	id, err := entryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal entry id")
	}

	row := querier.QueryRowContext(ctx, query, id, userID)
	entry, err := scanMySQLEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entriesDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry")
	}
	return entry, nil
}

// ListByUser retrieves entries for one user, newest first.
func (m *MySQLEntryRepository) ListByUser(ctx context.Context, filter entriesDomain.EntryFilter) ([]*entriesDomain.Entry, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at
			  FROM entries
			  WHERE user_id = ?
			    AND (? = '' OR mood = ?)
			    AND (? IS NULL OR created_at >= ?)
			    AND (? IS NULL OR created_at < ?)
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	since := nullableTime(filter.Since)
	until := nullableTime(filter.Until)

	rows, err := querier.QueryContext(
		ctx,
		query,
		filter.UserID,
		filter.Mood,
		filter.Mood,
		since,
		since,
		until,
		until,
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries")
	}
	defer rows.Close() //nolint:errcheck

	var entries []*entriesDomain.Entry
	for rows.Next() {
		entry, err := scanMySQLEntry(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan entry")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate entries")
	}
	return entries, nil
}

// Delete removes an entry owned by the given user.
func (m *MySQLEntryRepository) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	querier := database.GetTx(ctx, m.db)

	id, err := entryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal entry id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM entries WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete entry")
	}
	return requireRowAffected(result)
}

// scanMySQLEntry rebuilds an Entry from one row, decoding the BINARY(16) id.
func scanMySQLEntry(scan func(dest ...any) error) (*entriesDomain.Entry, error) {
	var entry entriesDomain.Entry
	var id []byte
	var title, content string
	var tags, imageRefs, encryptedFields []byte

	err := scan(
		&id,
		&entry.UserID,
		&title,
		&content,
		&entry.Mood,
		&tags,
		&imageRefs,
		&entry.Private,
		&entry.Encrypted,
		&encryptedFields,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := entry.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal entry id")
	}
	if err := unmarshalEntryLists(&entry, tags, imageRefs, encryptedFields); err != nil {
		return nil, err
	}

	if entry.Encrypted {
		entry.Title = entriesDomain.EncryptedField(title)
		entry.Content = entriesDomain.EncryptedField(content)
	} else {
		entry.Title = entriesDomain.PlainField(title)
		entry.Content = entriesDomain.PlainField(content)
	}
	return &entry, nil
}
