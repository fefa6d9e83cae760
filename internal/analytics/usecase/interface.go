// Package usecase implements the analytics orchestration logic. The
// orchestrator fans capability derivations out across the tiered providers,
// assembles a schema-complete insights bundle, and writes it through to the
// result cache.
package usecase

import (
	"context"

	analyticsDomain "github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// GenerateOptions tunes a single insights request.
type GenerateOptions struct {
	// ForceRefresh bypasses the cache read but still updates the cache on
	// success.
	ForceRefresh bool
}

// AnalyticsUseCase defines the analytics business logic.
type AnalyticsUseCase interface {
	// GenerateInsights derives the full insights bundle for a user's
	// decrypted entries. The result is cached per user; remote tier outages
	// degrade the source, never the success flag.
	GenerateInsights(ctx context.Context, userID string, entries []*entriesDomain.Entry, opts GenerateOptions) (analyticsDomain.Envelope, error)
	// DetectMood derives a mood label from free text.
	DetectMood(ctx context.Context, text string) (analyticsDomain.MoodDetection, error)
	// HealthCheck probes remote tier reachability.
	HealthCheck(ctx context.Context) analyticsDomain.HealthStatus
}
