package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	analyticsUsecase "github.com/allisson/journalite/internal/analytics/usecase"
	"github.com/allisson/journalite/internal/cache"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	entriesService "github.com/allisson/journalite/internal/entries/service"
)

// entryUseCase implements the EntryUseCase interface.
type entryUseCase struct {
	entryRepo   EntryRepository
	codec       entriesService.EntryCodec
	resultCache *cache.Cache
	logger      *slog.Logger
}

// Create encrypts the entry fields and persists the entry.
func (e *entryUseCase) Create(ctx context.Context, entry *entriesDomain.Entry) (*entriesDomain.Entry, error) {
	sealed, err := e.codec.EncryptEntry(entry)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sealed.ID = uuid.Must(uuid.NewV7())
	sealed.CreatedAt = now
	sealed.UpdatedAt = now

	if err := e.entryRepo.Create(ctx, sealed); err != nil {
		return nil, err
	}

	e.invalidateInsights(sealed.UserID)
	return sealed, nil
}

// Update encrypts the entry fields and updates the stored entry.
func (e *entryUseCase) Update(ctx context.Context, entry *entriesDomain.Entry) (*entriesDomain.Entry, error) {
	sealed, err := e.codec.EncryptEntry(entry)
	if err != nil {
		return nil, err
	}

	sealed.UpdatedAt = time.Now().UTC()

	if err := e.entryRepo.Update(ctx, sealed); err != nil {
		return nil, err
	}

	e.invalidateInsights(sealed.UserID)
	return sealed, nil
}

// Get retrieves an entry and decrypts its fields.
func (e *entryUseCase) Get(
	ctx context.Context,
	entryID uuid.UUID,
	userID string,
) (*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	entry, err := e.entryRepo.Get(ctx, entryID, userID)
	if err != nil {
		return nil, nil, err
	}

	opened, fieldErrs := e.codec.DecryptEntry(entry)
	e.warnFieldErrors(fieldErrs)
	return opened, fieldErrs, nil
}

// List retrieves and decrypts the entries matching the filter.
func (e *entryUseCase) List(
	ctx context.Context,
	filter entriesDomain.EntryFilter,
) ([]*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	entries, err := e.entryRepo.ListByUser(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	opened, fieldErrs := e.codec.DecryptEntries(entries)
	e.warnFieldErrors(fieldErrs)
	return opened, fieldErrs, nil
}

// Delete removes an entry owned by the given user.
func (e *entryUseCase) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	if err := e.entryRepo.Delete(ctx, entryID, userID); err != nil {
		return err
	}

	e.invalidateInsights(userID)
	return nil
}

// invalidateInsights drops all cached insights for the user. Every mutation
// calls this so stale analytics never survive an entry change.
func (e *entryUseCase) invalidateInsights(userID string) {
	removed := e.resultCache.ClearByPrefix(analyticsUsecase.InsightsCachePrefix(userID))
	if removed > 0 {
		e.logger.Debug("invalidated cached insights",
			slog.String("user_id", userID),
			slog.Int("removed", removed),
		)
	}
}

func (e *entryUseCase) warnFieldErrors(fieldErrs []*entriesDomain.FieldError) {
	for _, fieldErr := range fieldErrs {
		e.logger.Warn("entry field could not be decrypted",
			slog.String("entry_id", fieldErr.EntryID),
			slog.String("field", fieldErr.Field),
		)
	}
}

// NewEntryUseCase creates a new entry use case instance with the provided dependencies.
func NewEntryUseCase(
	entryRepo EntryRepository,
	codec entriesService.EntryCodec,
	resultCache *cache.Cache,
	logger *slog.Logger,
) EntryUseCase {
	return &entryUseCase{
		entryRepo:   entryRepo,
		codec:       codec,
		resultCache: resultCache,
		logger:      logger,
	}
}
