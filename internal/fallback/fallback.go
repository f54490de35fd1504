// Package fallback implements the best-effort secondary enrichment path,
// used only when the knowledge base cannot supply an official website. It
// never fails a candidate: provider errors and malformed replies degrade to
// "no data".
package fallback

import (
	"context"

	"go.uber.org/zap"
)

// Profile is the best-effort record a provider produces. Zero-value string
// fields mean "unknown"; KeyPeople carries names only since providers do not
// report roles reliably.
type Profile struct {
	Website     string
	Description string
	Sector      string
	HQLocation  string
	KeyPeople   []string
}

// Empty reports whether the profile carries no usable data.
func (p *Profile) Empty() bool {
	return p == nil ||
		(p.Website == "" && p.Description == "" && p.Sector == "" &&
			p.HQLocation == "" && len(p.KeyPeople) == 0)
}

// Provider produces a best-effort profile guess for an organization name.
// Implementations may return (nil, nil) when they find nothing.
type Provider interface {
	Lookup(ctx context.Context, name string) (*Profile, error)
	Name() string
}

// Resolver gates and drives a Provider. A nil provider means the fallback
// path is disabled (feature flag off or credential missing).
type Resolver struct {
	provider Provider
}

// New creates a Resolver over provider, which may be nil.
func New(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Enabled reports whether a provider is configured.
func (r *Resolver) Enabled() bool {
	return r != nil && r.provider != nil
}

// Source returns the provenance label for the configured provider.
func (r *Resolver) Source() string {
	if !r.Enabled() {
		return ""
	}
	return r.provider.Name()
}

// Lookup returns a best-effort profile for name, or nil when the provider is
// disabled, errors, or finds nothing. Provider failures are logged and
// swallowed; they never escalate to the caller.
func (r *Resolver) Lookup(ctx context.Context, name string) *Profile {
	if !r.Enabled() {
		return nil
	}

	profile, err := r.provider.Lookup(ctx, name)
	if err != nil {
		zap.L().Warn("fallback lookup failed",
			zap.String("provider", r.provider.Name()),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil
	}
	if profile.Empty() {
		return nil
	}
	return profile
}
