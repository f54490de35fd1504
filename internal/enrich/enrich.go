// Package enrich drives per-candidate profile assembly: knowledge-base
// resolution first, the optional fallback path second, and the field-merging
// rules between them.
package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hiravi/volt-parser/internal/extract"
	"github.com/hiravi/volt-parser/internal/fallback"
	"github.com/hiravi/volt-parser/internal/model"
	"github.com/hiravi/volt-parser/pkg/wikidata"
)

// Resolver resolves a candidate name against the knowledge base.
type Resolver interface {
	Resolve(ctx context.Context, name string, maxPeople int) (*wikidata.ResolvedEntity, error)
}

// Summarizer fetches a natural-language summary for a canonical label.
type Summarizer interface {
	Summary(ctx context.Context, title string) (string, error)
	PageURL(title string) string
}

// FallbackResolver is the gated best-effort secondary path.
type FallbackResolver interface {
	Enabled() bool
	Source() string
	Lookup(ctx context.Context, name string) *fallback.Profile
}

// Enricher assembles company profiles from the configured sources.
type Enricher struct {
	kb          Resolver
	summaries   Summarizer
	fallback    FallbackResolver
	concurrency int
}

// Option configures the Enricher.
type Option func(*Enricher)

// WithConcurrency caps how many candidates are enriched at once. Default: 5.
func WithConcurrency(n int) Option {
	return func(e *Enricher) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// New creates an Enricher. fb may be a disabled resolver but must not be nil.
func New(kb Resolver, summaries Summarizer, fb FallbackResolver, opts ...Option) *Enricher {
	e := &Enricher{
		kb:          kb,
		summaries:   summaries,
		fallback:    fb,
		concurrency: 5,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Enrich produces a profile for one candidate name. Policy: the knowledge
// base is authoritative; the fallback path runs only when enabled by the
// caller and either the name is unknown to the knowledge base (full profile
// synthesis) or the entity lacks an official website (website field only).
// When no source yields data the candidate fails with EnrichmentError.
func (e *Enricher) Enrich(ctx context.Context, name string, useFallback bool) (*model.CompanyProfile, error) {
	log := zap.L().With(zap.String("name", name))
	log.Info("starting enrichment", zap.Bool("fallback", useFallback && e.fallback.Enabled()))

	entity, err := e.kb.Resolve(ctx, name, model.MaxKeyPeople)
	if err != nil {
		if !eris.Is(err, wikidata.ErrNotFound) {
			return nil, &EnrichmentError{Name: name, Err: err}
		}
		log.Info("no knowledge-base entry found")
		if useFallback && e.fallback.Enabled() {
			if guess := e.fallback.Lookup(ctx, name); guess != nil {
				log.Info("fallback produced data", zap.String("provider", e.fallback.Source()))
				return e.profileFromFallback(name, guess), nil
			}
			log.Info("fallback found nothing")
		}
		return nil, &EnrichmentError{Name: name, Err: err}
	}

	log.Info("resolved canonical entity",
		zap.String("canonical", entity.Label),
		zap.String("id", entity.ID),
	)

	profile := e.profileFromEntity(ctx, name, entity, useFallback)
	log.Info("enrichment complete", zap.String("website", profile.Website))
	return profile, nil
}

func (e *Enricher) profileFromEntity(ctx context.Context, name string, entity *wikidata.ResolvedEntity, useFallback bool) *model.CompanyProfile {
	profile := model.NewProfile(entity.Label)

	// The original input survives as an alias only when it differs from the
	// canonical label under normalization.
	if extract.NormalizeKey(name) != extract.NormalizeKey(entity.Label) {
		profile.Aliases = []string{name}
	}

	description, err := e.summaries.Summary(ctx, entity.Label)
	if err != nil || description == "" {
		if err != nil {
			zap.L().Debug("summary fetch failed", zap.String("title", entity.Label), zap.Error(err))
		}
		description = entity.ShortDescription
	}
	profile.Description = description

	website := entity.Website
	if website == "" && useFallback && e.fallback.Enabled() {
		// Fill the website only; every other field stays knowledge-base-sourced.
		if guess := e.fallback.Lookup(ctx, name); guess != nil && guess.Website != "" && guess.Website != model.Unknown {
			website = guess.Website
			profile.Sources[e.fallback.Source()] = website
		}
	}
	if website == "" {
		website = entity.PageURL
	}
	profile.Website = website

	if entity.Sector != "" {
		profile.Sector = entity.Sector
	}
	if entity.Headquarters != "" {
		profile.HQLocation = entity.Headquarters
	}
	for _, person := range entity.People {
		profile.KeyPeople = append(profile.KeyPeople, model.KeyPerson{
			Name: person.Name,
			Role: person.Role,
		})
	}

	profile.Sources["wikidata"] = entity.PageURL
	profile.Sources["wikipedia"] = e.summaries.PageURL(entity.Label)

	return profile
}

func (e *Enricher) profileFromFallback(name string, guess *fallback.Profile) *model.CompanyProfile {
	profile := model.NewProfile(name)
	if guess.Website != "" {
		profile.Website = guess.Website
	}
	if guess.Sector != "" {
		profile.Sector = guess.Sector
	}
	if guess.HQLocation != "" {
		profile.HQLocation = guess.HQLocation
	}
	profile.Description = guess.Description
	if profile.Description == "" {
		profile.Description = "(found via web search)"
	}

	for i, personName := range guess.KeyPeople {
		if i >= model.MaxKeyPeople {
			break
		}
		profile.KeyPeople = append(profile.KeyPeople, model.KeyPerson{
			Name: personName,
			Role: "key_person",
		})
	}

	profile.Sources[e.fallback.Source()] = profile.Website
	return profile
}
