// Package ner defines the named-entity recognition collaborator contract.
// The model itself is a black box behind an HTTP endpoint; the pipeline only
// consumes entity spans and labels.
package ner

import "context"

// LabelOrg is the entity label the pipeline consumes.
const LabelOrg = "ORG"

// Entity is a recognized span with its label, in document order.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Provider recognizes entities in raw text.
type Provider interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
}
