package app

import (
	"fmt"
	"log/slog"

	analyticsHTTP "github.com/allisson/journalite/internal/analytics/http"
	"github.com/allisson/journalite/internal/analytics/provider"
	analyticsUsecase "github.com/allisson/journalite/internal/analytics/usecase"
)

// ProviderRunner returns the ordered analytics provider chain.
// Tiers without configuration are left out; the local heuristic is always last.
func (c *Container) ProviderRunner() *provider.Runner {
	c.providerRunnerInit.Do(func() {
		c.providerRunner = c.initProviderRunner()
	})
	return c.providerRunner
}

// AnalyticsUseCase returns the analytics orchestrator instance.
func (c *Container) AnalyticsUseCase() (analyticsUsecase.AnalyticsUseCase, error) {
	var err error
	c.analyticsUseCaseInit.Do(func() {
		c.analyticsUseCase, err = c.initAnalyticsUseCase()
		if err != nil {
			c.initErrors["analyticsUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["analyticsUseCase"]; exists {
		return nil, storedErr
	}
	return c.analyticsUseCase, nil
}

// InsightsHandler returns the HTTP handler for analytics operations.
func (c *Container) InsightsHandler() (*analyticsHTTP.InsightsHandler, error) {
	var err error
	c.insightsHandlerInit.Do(func() {
		c.insightsHandler, err = c.initInsightsHandler()
		if err != nil {
			c.initErrors["insightsHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["insightsHandler"]; exists {
		return nil, storedErr
	}
	return c.insightsHandler, nil
}

// initProviderRunner assembles the tiered provider chain from configuration.
func (c *Container) initProviderRunner() *provider.Runner {
	logger := c.Logger()

	var providers []provider.Provider

	if c.config.AIProviderURL != "" && c.config.AIProviderAPIKey != "" {
		providers = append(providers, provider.NewAIProvider(
			c.config.AIProviderURL,
			c.config.AIProviderAPIKey,
			c.config.AIProviderTimeout,
			c.config.ProbeTimeout,
			c.config.ProbeCacheTTL,
		))
	} else {
		logger.Info("ai provider not configured, tier skipped")
	}

	if c.config.SecondaryProviderURL != "" {
		providers = append(providers, provider.NewSecondaryProvider(
			c.config.SecondaryProviderURL,
			c.config.SecondaryProviderTimeout,
			c.config.ProbeTimeout,
			c.config.ProbeCacheTTL,
		))
	} else {
		logger.Info("secondary provider not configured, tier skipped")
	}

	// The heuristic tier needs no configuration and never fails
	providers = append(providers, provider.NewHeuristicProvider())

	logger.Info("analytics provider chain assembled", slog.Int("tiers", len(providers)))

	return provider.NewRunner(logger, providers...)
}

// initAnalyticsUseCase creates the analytics orchestrator with all its dependencies.
func (c *Container) initAnalyticsUseCase() (analyticsUsecase.AnalyticsUseCase, error) {
	logger := c.Logger()

	baseUseCase := analyticsUsecase.NewAnalyticsUseCase(
		c.ProviderRunner(),
		c.ResultCache(),
		c.config.MoodCacheTTL,
		logger,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for analytics use case: %w", err)
		}
		return analyticsUsecase.NewAnalyticsUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initInsightsHandler creates the insights HTTP handler with all its dependencies.
func (c *Container) initInsightsHandler() (*analyticsHTTP.InsightsHandler, error) {
	analyticsUseCase, err := c.AnalyticsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics use case for insights handler: %w", err)
	}

	entryUseCase, err := c.EntryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry use case for insights handler: %w", err)
	}

	logger := c.Logger()

	return analyticsHTTP.NewInsightsHandler(analyticsUseCase, entryUseCase, logger), nil
}
