// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// MockEntryUseCase is a mock implementation of EntryUseCase for testing.
type MockEntryUseCase struct {
	mock.Mock
}

// Create mocks the Create method of EntryUseCase.
func (m *MockEntryUseCase) Create(
	ctx context.Context,
	entry *entriesDomain.Entry,
) (*entriesDomain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entriesDomain.Entry), args.Error(1)
}

// Update mocks the Update method of EntryUseCase.
func (m *MockEntryUseCase) Update(
	ctx context.Context,
	entry *entriesDomain.Entry,
) (*entriesDomain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entriesDomain.Entry), args.Error(1)
}

// Get mocks the Get method of EntryUseCase.
func (m *MockEntryUseCase) Get(
	ctx context.Context,
	entryID uuid.UUID,
	userID string,
) (*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	args := m.Called(ctx, entryID, userID)
	var entry *entriesDomain.Entry
	if args.Get(0) != nil {
		entry = args.Get(0).(*entriesDomain.Entry)
	}
	var fieldErrs []*entriesDomain.FieldError
	if args.Get(1) != nil {
		fieldErrs = args.Get(1).([]*entriesDomain.FieldError)
	}
	return entry, fieldErrs, args.Error(2)
}

// List mocks the List method of EntryUseCase.
func (m *MockEntryUseCase) List(
	ctx context.Context,
	filter entriesDomain.EntryFilter,
) ([]*entriesDomain.Entry, []*entriesDomain.FieldError, error) {
	args := m.Called(ctx, filter)
	var entries []*entriesDomain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]*entriesDomain.Entry)
	}
	var fieldErrs []*entriesDomain.FieldError
	if args.Get(1) != nil {
		fieldErrs = args.Get(1).([]*entriesDomain.FieldError)
	}
	return entries, fieldErrs, args.Error(2)
}

// Delete mocks the Delete method of EntryUseCase.
func (m *MockEntryUseCase) Delete(ctx context.Context, entryID uuid.UUID, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
