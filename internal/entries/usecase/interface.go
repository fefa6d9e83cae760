// Package usecase implements business logic orchestration for journal entries.
// Use cases coordinate the field codec, the entry repository, and the analytics
// result cache so that entries are always encrypted at rest and cached insights
// never outlive the entries they were derived from.
package usecase

import (
	"context"

	"github.com/google/uuid"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	Create(ctx context.Context, entry *entriesDomain.Entry) error
	Update(ctx context.Context, entry *entriesDomain.Entry) error
	Get(ctx context.Context, entryID uuid.UUID, userID string) (*entriesDomain.Entry, error)
	ListByUser(ctx context.Context, filter entriesDomain.EntryFilter) ([]*entriesDomain.Entry, error)
	Delete(ctx context.Context, entryID uuid.UUID, userID string) error
}

// EntryUseCase defines the interface for journal entry business logic.
//
// Writes encrypt title and content before they reach the repository and
// invalidate the owner's cached insights. Reads decrypt in place; decryption
// failures are reported per field while the affected entries stay in the
// result with sentinel content.
type EntryUseCase interface {
	Create(ctx context.Context, entry *entriesDomain.Entry) (*entriesDomain.Entry, error)
	Update(ctx context.Context, entry *entriesDomain.Entry) (*entriesDomain.Entry, error)
	Get(ctx context.Context, entryID uuid.UUID, userID string) (*entriesDomain.Entry, []*entriesDomain.FieldError, error)
	List(ctx context.Context, filter entriesDomain.EntryFilter) ([]*entriesDomain.Entry, []*entriesDomain.FieldError, error)
	Delete(ctx context.Context, entryID uuid.UUID, userID string) error
}
