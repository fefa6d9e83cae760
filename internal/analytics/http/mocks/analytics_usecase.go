// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	analyticsDomain "github.com/allisson/journalite/internal/analytics/domain"
	analyticsUseCase "github.com/allisson/journalite/internal/analytics/usecase"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// MockAnalyticsUseCase is a mock implementation of AnalyticsUseCase for testing.
type MockAnalyticsUseCase struct {
	mock.Mock
}

// GenerateInsights mocks the GenerateInsights method of AnalyticsUseCase.
func (m *MockAnalyticsUseCase) GenerateInsights(
	ctx context.Context,
	userID string,
	entries []*entriesDomain.Entry,
	opts analyticsUseCase.GenerateOptions,
) (analyticsDomain.Envelope, error) {
	args := m.Called(ctx, userID, entries, opts)
	return args.Get(0).(analyticsDomain.Envelope), args.Error(1)
}

// DetectMood mocks the DetectMood method of AnalyticsUseCase.
func (m *MockAnalyticsUseCase) DetectMood(
	ctx context.Context,
	text string,
) (analyticsDomain.MoodDetection, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(analyticsDomain.MoodDetection), args.Error(1)
}

// HealthCheck mocks the HealthCheck method of AnalyticsUseCase.
func (m *MockAnalyticsUseCase) HealthCheck(ctx context.Context) analyticsDomain.HealthStatus {
	args := m.Called(ctx)
	return args.Get(0).(analyticsDomain.HealthStatus)
}
