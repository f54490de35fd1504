// Package extract turns raw text into a deduplicated, ordered list of
// organization name candidates.
package extract

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hiravi/volt-parser/internal/ner"
)

// Extractor finds organization names in free text via an external NER
// provider.
type Extractor struct {
	ner ner.Provider
}

// New creates an Extractor over the given NER provider.
func New(provider ner.Provider) *Extractor {
	return &Extractor{ner: provider}
}

// Organizations returns the distinct organization names found in text, in
// document order. Markdown links are collapsed to their text before
// recognition, and each new span is checked against the already-accepted
// names; the first-seen surface form wins as the canonical candidate.
func (e *Extractor) Organizations(ctx context.Context, text string) ([]string, error) {
	clean := StripMarkdownLinks(text)

	entities, err := e.ner.Recognize(ctx, clean)
	if err != nil {
		return nil, eris.Wrap(err, "extract: recognize entities")
	}

	var names []string
	for _, ent := range entities {
		if ent.Label != ner.LabelOrg {
			continue
		}
		candidate := strings.TrimSpace(ent.Text)
		if candidate == "" {
			continue
		}
		if IsDuplicate(candidate, names) {
			zap.L().Debug("dropping duplicate candidate",
				zap.String("candidate", candidate),
			)
			continue
		}
		names = append(names, candidate)
	}

	return names, nil
}
