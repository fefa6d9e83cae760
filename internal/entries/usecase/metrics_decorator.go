package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	"github.com/allisson/journalite/internal/metrics"
)

// entryUseCaseWithMetrics decorates EntryUseCase with metrics instrumentation.
type entryUseCaseWithMetrics struct {
	next    EntryUseCase
	metrics metrics.BusinessMetrics
}

// NewEntryUseCaseWithMetrics wraps an EntryUseCase with metrics recording.
func NewEntryUseCaseWithMetrics(useCase EntryUseCase, m metrics.BusinessMetrics) EntryUseCase {
	return &entryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for entry creation operations.
func (e *entryUseCaseWithMetrics) Create(
	ctx context.Context,
	entry *entriesDomain.Entry,
) (*entriesDomain.Entry, error) {
	start := time.Now()
	created, err := e.next.Create(ctx, entry)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "entries", "entry_create", status)
	e.metrics.RecordDuration(ctx, "entries", "entry_create", time.Since(start), status)

	return created, err
}

// Update records metrics for entry update operations.
func (e *entryUseCaseWithMetrics) Update(
	ctx context.Context,
	entry *entriesDomain.Entry,
) (*entriesDomain.Entry, error) {
	start := time.Now()
	updated, err := e.next.Update(ctx, entry)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "entries", "entry_update", status)
	e.metrics.RecordDuration(ctx, "entries", "entry_update", time.Since(start), status)

	return updated, err
}

// Get records metrics for entry retrieval operations.
func (e *entryUseCaseWithMetrics) Get(
	ctx context.Context,
	entryID uuid.UUID,
	userID string,
) (*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	start := time.Now()
	entry, fieldErrs, err := e.next.Get(ctx, entryID, userID)

	status := "success"
	if err != nil {
		status = "error"
	} else if len(fieldErrs) > 0 {
		status = "partial"
	}

	e.metrics.RecordOperation(ctx, "entries", "entry_get", status)
	e.metrics.RecordDuration(ctx, "entries", "entry_get", time.Since(start), status)

	return entry, fieldErrs, err
}

// List records metrics for entry listing operations.
func (e *entryUseCaseWithMetrics) List(
	ctx context.Context,
	filter entriesDomain.EntryFilter,
) ([]*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	start := time.Now()
	entries, fieldErrs, err := e.next.List(ctx, filter)

	status := "success"
	if err != nil {
		status = "error"
	} else if len(fieldErrs) > 0 {
		status = "partial"
	}

	e.metrics.RecordOperation(ctx, "entries", "entry_list", status)
	e.metrics.RecordDuration(ctx, "entries", "entry_list", time.Since(start), status)

	return entries, fieldErrs, err
}

// Delete records metrics for entry deletion operations.
func (e *entryUseCaseWithMetrics) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	start := time.Now()
	err := e.next.Delete(ctx, entryID, userID)

	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "entries", "entry_delete", status)
	e.metrics.RecordDuration(ctx, "entries", "entry_delete", time.Since(start), status)

	return err
}
