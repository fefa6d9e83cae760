package usecase

import (
	"context"
	"time"

	analyticsDomain "github.com/allisson/journalite/internal/analytics/domain"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
	"github.com/allisson/journalite/internal/metrics"
)

// analyticsUseCaseWithMetrics decorates AnalyticsUseCase with metrics
// instrumentation.
type analyticsUseCaseWithMetrics struct {
	next    AnalyticsUseCase
	metrics metrics.BusinessMetrics
}

// NewAnalyticsUseCaseWithMetrics wraps an AnalyticsUseCase with metrics
// recording.
func NewAnalyticsUseCaseWithMetrics(useCase AnalyticsUseCase, m metrics.BusinessMetrics) AnalyticsUseCase {
	return &analyticsUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateInsights records metrics for insights generation, labeling the
// status with the tier that served the result.
func (a *analyticsUseCaseWithMetrics) GenerateInsights(
	ctx context.Context,
	userID string,
	entries []*entriesDomain.Entry,
	opts GenerateOptions,
) (analyticsDomain.Envelope, error) {
	start := time.Now()
	envelope, err := a.next.GenerateInsights(ctx, userID, entries, opts)

	status := "success"
	if err != nil {
		status = "error"
	} else if envelope.Source != "" {
		status = string(envelope.Source)
	}

	a.metrics.RecordOperation(ctx, "analytics", "generate_insights", status)
	a.metrics.RecordDuration(ctx, "analytics", "generate_insights", time.Since(start), status)

	return envelope, err
}

// DetectMood records metrics for mood detection operations.
func (a *analyticsUseCaseWithMetrics) DetectMood(ctx context.Context, text string) (analyticsDomain.MoodDetection, error) {
	start := time.Now()
	result, err := a.next.DetectMood(ctx, text)

	status := "success"
	if err != nil {
		status = "error"
	} else if result.Source != "" {
		status = string(result.Source)
	}

	a.metrics.RecordOperation(ctx, "analytics", "detect_mood", status)
	a.metrics.RecordDuration(ctx, "analytics", "detect_mood", time.Since(start), status)

	return result, err
}

// HealthCheck records metrics for tier reachability probes.
func (a *analyticsUseCaseWithMetrics) HealthCheck(ctx context.Context) analyticsDomain.HealthStatus {
	start := time.Now()
	status := a.next.HealthCheck(ctx)

	a.metrics.RecordOperation(ctx, "analytics", "health_check", "success")
	a.metrics.RecordDuration(ctx, "analytics", "health_check", time.Since(start), "success")

	return status
}
