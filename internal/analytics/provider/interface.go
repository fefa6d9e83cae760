// Package provider implements the tiered analytics providers. Tier-1 talks
// to a remote AI model, Tier-2 to an optional secondary backend, Tier-3 is a
// pure local heuristic that never fails. A single fallback runner walks the
// tiers in order per capability.
package provider

import (
	"context"

	"github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// Provider derives analytics from decrypted entries. Every method returns a
// typed result or an error; providers never panic. A provider reporting
// unavailable is skipped without being called.
type Provider interface {
	// Name identifies the tier for the response envelope.
	Name() domain.Source
	// Available reports whether this provider is worth calling right now.
	// Remote tiers probe reachability and cache the result for the session.
	Available(ctx context.Context) bool

	EmotionDistribution(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionSlice, error)
	SentimentAnalysis(ctx context.Context, entries []*entriesDomain.Entry) (domain.SentimentAnalysis, error)
	EmotionsOverTime(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.EmotionPoint, error)
	WordCloud(ctx context.Context, entries []*entriesDomain.Entry) ([]domain.WordCloudItem, error)
	WritingPatterns(ctx context.Context, entries []*entriesDomain.Entry) (domain.WritingPatterns, error)
	MoodCorrelations(ctx context.Context, entries []*entriesDomain.Entry) (domain.MoodCorrelations, error)

	// DetectMood derives a mood from free text.
	DetectMood(ctx context.Context, text string) (domain.MoodDetection, error)
}
