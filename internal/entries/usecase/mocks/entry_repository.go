// Package mocks provides mock implementations for testing entry use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// MockEntryRepository is a mock implementation of EntryRepository for testing.
type MockEntryRepository struct {
	mock.Mock
}

// Create mocks the Create method of EntryRepository.
func (m *MockEntryRepository) Create(ctx context.Context, entry *entriesDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Update mocks the Update method of EntryRepository.
func (m *MockEntryRepository) Update(ctx context.Context, entry *entriesDomain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// Get mocks the Get method of EntryRepository.
func (m *MockEntryRepository) Get(
	ctx context.Context,
	entryID uuid.UUID,
	userID string,
) (*entriesDomain.Entry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entriesDomain.Entry), args.Error(1)
}

// ListByUser mocks the ListByUser method of EntryRepository.
func (m *MockEntryRepository) ListByUser(
	ctx context.Context,
	filter entriesDomain.EntryFilter,
) ([]*entriesDomain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entriesDomain.Entry), args.Error(1)
}

// Delete mocks the Delete method of EntryRepository.
func (m *MockEntryRepository) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
