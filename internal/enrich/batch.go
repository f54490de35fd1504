package enrich

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hiravi/volt-parser/internal/model"
)

// EnrichAll enriches names concurrently, one task per candidate, bounded by
// the configured concurrency. Output order equals input order regardless of
// completion order. A candidate's failure never cancels its siblings: failed
// candidates are omitted from the profile list and reported in the outcomes.
func (e *Enricher) EnrichAll(ctx context.Context, names []string, useFallback bool) ([]model.CompanyProfile, []model.EnrichmentOutcome) {
	outcomes := make([]model.EnrichmentOutcome, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	var succeeded, failed atomic.Int64

	for i, name := range names {
		g.Go(func() error {
			profile, err := e.Enrich(gctx, name, useFallback)
			if err != nil {
				failed.Add(1)
				zap.L().Warn("skipping candidate", zap.String("name", name), zap.Error(err))
				outcomes[i] = model.EnrichmentOutcome{Name: name, Err: err}
				return nil // individual failures never abort the batch
			}
			succeeded.Add(1)
			outcomes[i] = model.EnrichmentOutcome{Name: name, Profile: profile}
			return nil
		})
	}

	// All tasks return nil; Wait only orders the outcome writes.
	_ = g.Wait()

	zap.L().Info("batch complete",
		zap.Int("candidates", len(names)),
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)

	profiles := make([]model.CompanyProfile, 0, len(names))
	for _, outcome := range outcomes {
		if !outcome.Failed() {
			profiles = append(profiles, *outcome.Profile)
		}
	}
	return profiles, outcomes
}
