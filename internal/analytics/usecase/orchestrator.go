package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	analyticsDomain "github.com/allisson/journalite/internal/analytics/domain"
	"github.com/allisson/journalite/internal/analytics/provider"
	"github.com/allisson/journalite/internal/cache"
	entriesDomain "github.com/allisson/journalite/internal/entries/domain"
)

// analyticsUseCase implements AnalyticsUseCase over a tiered provider chain.
type analyticsUseCase struct {
	runner      *provider.Runner
	resultCache *cache.Cache
	moodTTL     time.Duration
	logger      *slog.Logger
}

// NewAnalyticsUseCase creates the analytics orchestrator. Insight bundles are
// cached in resultCache under a per-user key prefix so entry mutations can
// invalidate everything for one user at once. Mood detections are cached by
// text digest with their own TTL since the same text always yields the same
// result; a zero or negative moodTTL falls back to cache.ShortTTL.
func NewAnalyticsUseCase(
	runner *provider.Runner,
	resultCache *cache.Cache,
	moodTTL time.Duration,
	logger *slog.Logger,
) AnalyticsUseCase {
	if moodTTL <= 0 {
		moodTTL = cache.ShortTTL
	}
	return &analyticsUseCase{runner: runner, resultCache: resultCache, moodTTL: moodTTL, logger: logger}
}

// InsightsCachePrefix returns the cache key prefix covering every cached
// analytics result for one user. Entry write paths clear this prefix.
func InsightsCachePrefix(userID string) string {
	return "insights:" + userID
}

func insightsCacheKey(userID string) string {
	return InsightsCachePrefix(userID) + ":bundle"
}

// GenerateInsights derives all capabilities concurrently, each with its own
// independent fallback chain, and assembles the schema-complete bundle.
func (a *analyticsUseCase) GenerateInsights(
	ctx context.Context,
	userID string,
	entries []*entriesDomain.Entry,
	opts GenerateOptions,
) (analyticsDomain.Envelope, error) {
	if userID == "" {
		return analyticsDomain.Envelope{}, analyticsDomain.ErrMissingUserID
	}
	if err := validateEntries(userID, entries); err != nil {
		return analyticsDomain.Envelope{Insights: analyticsDomain.EmptyBundle()}, err
	}

	return cache.WithCache(ctx, a.resultCache, insightsCacheKey(userID), opts.ForceRefresh,
		func(ctx context.Context) (analyticsDomain.Envelope, error) {
			return a.deriveBundle(ctx, entries)
		})
}

// deriveBundle fans the capability derivations out and joins them. One slow
// or failing remote call never blocks the other capabilities.
func (a *analyticsUseCase) deriveBundle(ctx context.Context, entries []*entriesDomain.Entry) (analyticsDomain.Envelope, error) {
	bundle := analyticsDomain.EmptyBundle()
	envelope := analyticsDomain.Envelope{Success: true, Source: analyticsDomain.SourceHeuristic}

	if len(entries) == 0 {
		envelope.Insights = bundle
		return envelope, nil
	}

	var mu sync.Mutex
	sources := make(map[analyticsDomain.Capability]analyticsDomain.Source)
	record := func(capability analyticsDomain.Capability, source analyticsDomain.Source, apply func()) {
		mu.Lock()
		defer mu.Unlock()
		sources[capability] = source
		apply()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilityEmotionDistribution,
			func(ctx context.Context, p provider.Provider) ([]analyticsDomain.EmotionSlice, error) {
				return p.EmotionDistribution(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilityEmotionDistribution, source, func() {
			if result != nil {
				bundle.EmotionDistribution = result
			}
		})
		return nil
	})
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilitySentimentAnalysis,
			func(ctx context.Context, p provider.Provider) (analyticsDomain.SentimentAnalysis, error) {
				return p.SentimentAnalysis(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilitySentimentAnalysis, source, func() {
			bundle.SentimentAnalysis = result
		})
		return nil
	})
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilityEmotionsOverTime,
			func(ctx context.Context, p provider.Provider) ([]analyticsDomain.EmotionPoint, error) {
				return p.EmotionsOverTime(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilityEmotionsOverTime, source, func() {
			if result != nil {
				bundle.EmotionsOverTime = result
			}
		})
		return nil
	})
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilityWordCloud,
			func(ctx context.Context, p provider.Provider) ([]analyticsDomain.WordCloudItem, error) {
				return p.WordCloud(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilityWordCloud, source, func() {
			if result != nil {
				bundle.WordCloud = result
			}
		})
		return nil
	})
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilityWritingPatterns,
			func(ctx context.Context, p provider.Provider) (analyticsDomain.WritingPatterns, error) {
				return p.WritingPatterns(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilityWritingPatterns, source, func() {
			bundle.WritingPatterns = result
		})
		return nil
	})
	g.Go(func() error {
		result, source, err := provider.Run(gctx, a.runner, analyticsDomain.CapabilityMoodCorrelations,
			func(ctx context.Context, p provider.Provider) (analyticsDomain.MoodCorrelations, error) {
				return p.MoodCorrelations(ctx, entries)
			})
		if err != nil {
			return err
		}
		record(analyticsDomain.CapabilityMoodCorrelations, source, func() {
			bundle.MoodCorrelations = result
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return analyticsDomain.Envelope{Insights: analyticsDomain.EmptyBundle()}, err
	}

	envelope.Insights = bundle
	envelope.Source = worstSource(sources)
	a.logger.Debug("insights bundle derived", "entries", len(entries), "source", string(envelope.Source))
	return envelope, nil
}

// worstSource reports the most degraded tier any capability fell back to, so
// callers can tell a fully remote result from a partially heuristic one.
func worstSource(sources map[analyticsDomain.Capability]analyticsDomain.Source) analyticsDomain.Source {
	rank := map[analyticsDomain.Source]int{
		analyticsDomain.SourceAI:        0,
		analyticsDomain.SourceSecondary: 1,
		analyticsDomain.SourceHeuristic: 2,
	}
	worst := analyticsDomain.SourceAI
	for _, source := range sources {
		if rank[source] > rank[worst] {
			worst = source
		}
	}
	if len(sources) == 0 {
		return analyticsDomain.SourceHeuristic
	}
	return worst
}

// validateEntries rejects structurally broken entries before any derivation.
func validateEntries(userID string, entries []*entriesDomain.Entry) error {
	for _, entry := range entries {
		if entry == nil {
			return &analyticsDomain.MalformedEntryError{Reason: "entry is nil"}
		}
		if entry.UserID == "" {
			return &analyticsDomain.MalformedEntryError{EntryID: entry.ID.String(), Reason: "entry has no owner"}
		}
		if entry.UserID != userID {
			return &analyticsDomain.MalformedEntryError{EntryID: entry.ID.String(), Reason: "entry belongs to another user"}
		}
		if entry.Title.Encrypted || entry.Content.Encrypted {
			return &analyticsDomain.MalformedEntryError{EntryID: entry.ID.String(), Reason: "entry is still encrypted"}
		}
	}
	return nil
}

// moodCacheKey keys mood detections by text digest. Detection is a pure
// function of the text, so the key carries no user id.
func moodCacheKey(text string) string {
	digest := sha256.Sum256([]byte(text))
	return "mood:" + hex.EncodeToString(digest[:])
}

// DetectMood walks the provider chain for text-based mood detection. The
// heuristic keyword lexicon is the terminal tier.
func (a *analyticsUseCase) DetectMood(ctx context.Context, text string) (analyticsDomain.MoodDetection, error) {
	if text == "" {
		return analyticsDomain.MoodDetection{}, analyticsDomain.ErrMissingText
	}

	key := moodCacheKey(text)
	if cached, ok := a.resultCache.Get(key); ok {
		if detection, ok := cached.(analyticsDomain.MoodDetection); ok {
			return detection, nil
		}
	}

	result, _, err := provider.Run(ctx, a.runner, analyticsDomain.CapabilityMood,
		func(ctx context.Context, p provider.Provider) (analyticsDomain.MoodDetection, error) {
			return p.DetectMood(ctx, text)
		})
	if err == nil {
		a.resultCache.SetTTL(key, result, a.moodTTL)
	}
	return result, err
}

// HealthCheck probes each remote tier. The heuristic tier is omitted since
// it is always available.
func (a *analyticsUseCase) HealthCheck(ctx context.Context) analyticsDomain.HealthStatus {
	var status analyticsDomain.HealthStatus
	for _, p := range a.runner.Providers() {
		switch p.Name() {
		case analyticsDomain.SourceAI:
			status.AIAvailable = p.Available(ctx)
		case analyticsDomain.SourceSecondary:
			status.SecondaryAvailable = p.Available(ctx)
		}
	}
	return status
}
