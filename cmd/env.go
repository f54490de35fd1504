package main

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hiravi/volt-parser/internal/cache"
	"github.com/hiravi/volt-parser/internal/enrich"
	"github.com/hiravi/volt-parser/internal/extract"
	"github.com/hiravi/volt-parser/internal/fallback"
	"github.com/hiravi/volt-parser/internal/fetcher"
	"github.com/hiravi/volt-parser/internal/ner"
	"github.com/hiravi/volt-parser/internal/resilience"
	"github.com/hiravi/volt-parser/pkg/anthropic"
	"github.com/hiravi/volt-parser/pkg/perplexity"
	"github.com/hiravi/volt-parser/pkg/wikidata"
	"github.com/hiravi/volt-parser/pkg/wikipedia"
)

// pipelineEnv wires the shared collaborators for a process run: one cache
// handle, one HTTP fetch client, one enricher.
type pipelineEnv struct {
	Cache     cache.Store
	Extractor *extract.Extractor
	Enricher  *enrich.Enricher
}

func initEnv() (*pipelineEnv, error) {
	cachePath, err := cfg.CachePath()
	if err != nil {
		return nil, err
	}
	store, err := cache.OpenSQLite(cachePath)
	if err != nil {
		return nil, err
	}

	fetch := fetcher.New(store,
		fetcher.WithUserAgent(cfg.Fetch.UserAgent),
		fetcher.WithTimeout(time.Duration(cfg.Fetch.TimeoutSecs)*time.Second),
		fetcher.WithHostRate(rate.Limit(cfg.Fetch.HostRate)),
		fetcher.WithRetry(resilience.Config{
			MaxAttempts:    cfg.Fetch.MaxAttempts,
			InitialBackoff: 1 * time.Second,
			MaxBackoff:     8 * time.Second,
			Multiplier:     2.0,
		}),
		fetcher.WithBreaker(resilience.BreakerConfig{
			FailureThreshold: cfg.Fetch.BreakerThreshold,
			ResetTimeout:     time.Duration(cfg.Fetch.BreakerResetSecs) * time.Second,
		}),
	)

	kb := wikidata.NewClient(fetch, wikidata.WithBaseURL(cfg.Wikidata.BaseURL))
	summaries := wikipedia.NewClient(fetch, wikipedia.WithBaseURL(cfg.Wikipedia.BaseURL))

	fb := fallback.New(fallbackProvider())

	return &pipelineEnv{
		Cache:     store,
		Extractor: extract.New(ner.NewClient(ner.WithBaseURL(cfg.NER.BaseURL))),
		Enricher: enrich.New(kb, summaries, fb,
			enrich.WithConcurrency(cfg.Pipeline.MaxConcurrent),
		),
	}, nil
}

// fallbackProvider builds the configured fallback provider, or nil when the
// capability check disables the path.
func fallbackProvider() fallback.Provider {
	capability := cfg.ResolveFallback()
	if !capability.Available {
		return nil
	}

	switch capability.Provider {
	case "perplexity":
		client := perplexity.NewClient(cfg.Perplexity.Key,
			perplexity.WithBaseURL(cfg.Perplexity.BaseURL),
			perplexity.WithModel(cfg.Perplexity.Model),
		)
		return fallback.NewPerplexityProvider(client)
	default:
		client := anthropic.NewClient(cfg.Anthropic.Key,
			anthropic.WithModel(cfg.Anthropic.Model),
		)
		return fallback.NewAnthropicProvider(client)
	}
}

func (e *pipelineEnv) Close() {
	if err := e.Cache.Close(); err != nil {
		zap.L().Warn("closing cache", zap.Error(err))
	}
}
