package fallback

import (
	"context"
	"fmt"
	"strings"

	"github.com/hiravi/volt-parser/pkg/perplexity"
)

// SourcePerplexity is the provenance label for the website-only provider.
const SourcePerplexity = "perplexity_search"

const websitePrompt = "Search for %q official site. " +
	"Reply with exactly one URL: the company's official website. " +
	"No other words, no markdown, no explanation."

// perplexityProvider performs a website-only guess: a search-grounded model
// is asked to reply with a single URL, and only the first whitespace-
// delimited token is accepted, and only when it looks like a URL.
type perplexityProvider struct {
	client perplexity.Client
}

// NewPerplexityProvider creates the website-only-guess provider.
func NewPerplexityProvider(client perplexity.Client) Provider {
	return &perplexityProvider{client: client}
}

func (p *perplexityProvider) Name() string {
	return SourcePerplexity
}

func (p *perplexityProvider) Lookup(ctx context.Context, name string) (*Profile, error) {
	reply, err := p.client.Ask(ctx, fmt.Sprintf(websitePrompt, name))
	if err != nil {
		return nil, err
	}

	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return nil, nil
	}
	token := strings.Trim(fields[0], `"'<>`)
	if !looksLikeURL(token) {
		return nil, nil
	}
	return &Profile{Website: token}, nil
}

func looksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
