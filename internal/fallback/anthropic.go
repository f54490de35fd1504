package fallback

import (
	"context"
	"fmt"

	"github.com/hiravi/volt-parser/pkg/anthropic"
)

// SourceAnthropic is the provenance label for the web-search provider.
const SourceAnthropic = "anthropic_web_search"

const profilePrompt = "You are a JSON-only extractor. " +
	"Your entire reply will be parsed as JSON and any non-JSON text will cause failure.\n\n" +
	"Find the official website and a short profile for the company %q.\n" +
	"Respond with **one** JSON object that has exactly these keys:\n" +
	"- website\n" +
	"- description\n" +
	"- sector\n" +
	"- hq_location\n" +
	"- key_people (list)\n" +
	"- competitors (list)\n\n" +
	"Do **not** wrap the JSON in markdown, do **not** add commentary, " +
	"explanations, or pre/post text. " +
	"If you cannot find a field value, use null. " +
	"If you break any of these rules the answer will be discarded."

// anthropicProvider asks Claude with the web-search tool for a full-profile
// guess and parses the reply defensively.
type anthropicProvider struct {
	client anthropic.Client
}

// NewAnthropicProvider creates the full-profile-guess provider.
func NewAnthropicProvider(client anthropic.Client) Provider {
	return &anthropicProvider{client: client}
}

func (p *anthropicProvider) Name() string {
	return SourceAnthropic
}

func (p *anthropicProvider) Lookup(ctx context.Context, name string) (*Profile, error) {
	reply, err := p.client.WebSearch(ctx, anthropic.SearchRequest{
		Prompt: fmt.Sprintf(profilePrompt, name),
	})
	if err != nil {
		return nil, err
	}
	return ParseProfile(reply), nil
}
