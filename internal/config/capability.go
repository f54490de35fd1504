package config

import "go.uber.org/zap"

// FallbackCapability is the once-at-startup answer to "can the fallback
// path run, and with which provider". A requested provider whose credential
// is missing silently disables the path instead of erroring.
type FallbackCapability struct {
	Available bool
	Provider  string
}

// ResolveFallback computes the fallback capability from configuration.
func (c *Config) ResolveFallback() FallbackCapability {
	if !c.Fallback.Enabled {
		return FallbackCapability{}
	}

	switch c.Fallback.Provider {
	case "anthropic":
		if c.Anthropic.Key == "" {
			zap.L().Warn("fallback enabled but anthropic key missing; disabling fallback")
			return FallbackCapability{}
		}
	case "perplexity":
		if c.Perplexity.Key == "" {
			zap.L().Warn("fallback enabled but perplexity key missing; disabling fallback")
			return FallbackCapability{}
		}
	default:
		zap.L().Warn("unknown fallback provider; disabling fallback",
			zap.String("provider", c.Fallback.Provider),
		)
		return FallbackCapability{}
	}

	return FallbackCapability{Available: true, Provider: c.Fallback.Provider}
}
