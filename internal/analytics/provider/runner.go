package provider

import (
	"context"
	"log/slog"

	"github.com/allisson/journalite/internal/analytics/domain"
)

// Runner walks an ordered provider chain and returns the first successful
// result together with the tier that produced it. The chain is expected to
// end with the heuristic provider, which is always available and never fails,
// so capability calls only error when every tier is misbehaving.
type Runner struct {
	providers []Provider
	logger    *slog.Logger
}

// NewRunner creates a Runner over providers in priority order.
func NewRunner(logger *slog.Logger, providers ...Provider) *Runner {
	return &Runner{providers: providers, logger: logger}
}

// Providers returns the chain in priority order.
func (r *Runner) Providers() []Provider {
	return r.providers
}

// Run tries call against each available provider in order and returns the
// first success. Tier failures are logged and swallowed; the error of the
// last attempted tier is returned only when every tier failed.
func Run[T any](
	ctx context.Context,
	r *Runner,
	capability domain.Capability,
	call func(context.Context, Provider) (T, error),
) (T, domain.Source, error) {
	var zero T
	var lastErr error

	for _, p := range r.providers {
		if !p.Available(ctx) {
			continue
		}
		result, err := call(ctx, p)
		if err != nil {
			lastErr = err
			r.logger.Warn(
				"analytics tier failed, falling back",
				"capability", string(capability),
				"source", string(p.Name()),
				"error", err,
			)
			continue
		}
		return result, p.Name(), nil
	}

	if lastErr == nil {
		lastErr = domain.ErrProviderUnavailable
	}
	return zero, "", lastErr
}
