// Package repository implements journal entry persistence. Repositories
// support both PostgreSQL and MySQL; the sensitive columns store ciphertext
// payloads produced by the entry codec, never plaintext.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/journalite/internal/database"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	apperrors "github.com/allisson/journalite/internal/errors"
)

// defaultListLimit bounds listings when the filter does not set one.
const defaultListLimit = 100

// PostgreSQLEntryRepository implements Entry persistence for PostgreSQL
// databases.
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// NewPostgreSQLEntryRepository creates a new PostgreSQL Entry repository
// instance.
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{db: db}
}

// Create inserts a new entry into the PostgreSQL database.
func (p *PostgreSQLEntryRepository) Create(ctx context.Context, entry *entriesDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO entries (id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	tags, imageRefs, encryptedFields, err := marshalEntryLists(entry)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		entry.ID,
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
func (p *PostgreSQLEntryRepository) Update(ctx context.Context, entry *entriesDomain.Entry) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE entries
			  SET title = $1, content = $2, mood = $3, tags = $4, image_refs = $5, private = $6, encrypted = $7, encrypted_fields = $8, updated_at = $9
			  WHERE id = $10 AND user_id = $11`

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
		entry.ID,
		entry.UserID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry")
	}
	return requireRowAffected(result)
}

// Get retrieves one entry by id, scoped to its owner.
func (p *PostgreSQLEntryRepository) Get(ctx context.Context, entryID uuid.UUID, userID string) (*entriesDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at
			  FROM entries
			  WHERE id = $1 AND user_id = $2`

	row := querier.QueryRowContext(ctx, query, entryID, userID)
	entry, err := scanEntry(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entriesDomain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry")
	}
	return entry, nil
}

// ListByUser retrieves entries for one user, newest first.
func (p *PostgreSQLEntryRepository) ListByUser(ctx context.Context, filter entriesDomain.EntryFilter) ([]*entriesDomain.Entry, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, user_id, title, content, mood, tags, image_refs, private, encrypted, encrypted_fields, created_at, updated_at
			  FROM entries
			  WHERE user_id = $1
			    AND ($2 = '' OR mood = $2)
			    AND ($3::timestamptz IS NULL OR created_at >= $3)
			    AND ($4::timestamptz IS NULL OR created_at < $4)
			  ORDER BY created_at DESC
			  LIMIT $5 OFFSET $6`

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	rows, err := querier.QueryContext(
		ctx,
		query,
		filter.UserID,
		filter.Mood,
		nullableTime(filter.Since),
		nullableTime(filter.Until),
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries")
	}
	defer rows.Close() //nolint:errcheck

	var entries []*entriesDomain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
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
func (p *PostgreSQLEntryRepository) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM entries WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete entry")
	}
	return requireRowAffected(result)
}

// scanEntry rebuilds an Entry from one row. The scan function abstracts over
// sql.Row and sql.Rows.
func scanEntry(scan func(dest ...any) error) (*entriesDomain.Entry, error) {
	var entry entriesDomain.Entry
	var title, content string
	var tags, imageRefs, encryptedFields []byte

	err := scan(
		&entry.ID,
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

func marshalEntryLists(entry *entriesDomain.Entry) (tags, imageRefs, encryptedFields []byte, err error) {
	tags, err = marshalStringList(entry.Tags)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to marshal tags")
	}
	imageRefs, err = marshalStringList(entry.ImageRefs)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to marshal image refs")
	}
	encryptedFields, err = marshalStringList(entry.EncryptedFields)
	if err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to marshal encrypted fields")
	}
	return tags, imageRefs, encryptedFields, nil
}

func unmarshalEntryLists(entry *entriesDomain.Entry, tags, imageRefs, encryptedFields []byte) error {
	if err := unmarshalStringList(tags, &entry.Tags); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal tags")
	}
	if err := unmarshalStringList(imageRefs, &entry.ImageRefs); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal image refs")
	}
	if err := unmarshalStringList(encryptedFields, &entry.EncryptedFields); err != nil {
		return apperrors.Wrap(err, "failed to unmarshal encrypted fields")
	}
	return nil
}

func marshalStringList(values []string) ([]byte, error) {
	if values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(values)
}

func unmarshalStringList(data []byte, out *[]string) error {
	if len(data) == 0 {
		*out = nil
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if len(values) == 0 {
		*out = nil
		return nil
	}
	*out = values
	return nil
}

// nullableTime maps the zero time to SQL NULL so optional filter bounds can
// be expressed in a single query.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return entriesDomain.ErrEntryNotFound
	}
	return nil
}
