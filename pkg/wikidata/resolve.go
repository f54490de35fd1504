package wikidata

import (
	"context"

	"go.uber.org/zap"
)

// peopleProps maps role-property identifiers to the role tag recorded on the
// profile, in discovery-priority order.
var peopleProps = []struct {
	prop string
	role string
}{
	{PropDirector, "executive"},
	{PropFounder, "founder"},
}

// Person is a key person extracted from role claims.
type Person struct {
	Name string
	Role string
}

// ResolvedEntity is the structured result of resolving a candidate name.
// Scalar fields are empty strings when the knowledge base has no claim.
type ResolvedEntity struct {
	ID               string
	Label            string
	ShortDescription string
	PageURL          string
	Website          string
	Sector           string
	Headquarters     string
	People           []Person
}

// Resolve looks up name and extracts the claims the enrichment pipeline
// consumes: official website, industry, headquarters, and up to max key
// people deduplicated by name across roles. Claim values that reference
// another entity are dereferenced one level to that entity's English label.
// Returns ErrNotFound when the search has no hit.
func (c *Client) Resolve(ctx context.Context, name string, maxPeople int) (*ResolvedEntity, error) {
	hit, err := c.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	entity, err := c.Entity(ctx, hit.ID)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedEntity{
		ID:               hit.ID,
		Label:            hit.Label,
		ShortDescription: hit.Description,
		PageURL:          c.EntityURL(hit.ID),
	}

	if site, ok := entity.FirstClaim(PropOfficialWebsite).AsString(); ok {
		resolved.Website = site
	}
	resolved.Sector = c.claimLabel(ctx, entity, PropIndustry)
	resolved.Headquarters = c.claimLabel(ctx, entity, PropHeadquarters)

	for _, rp := range peopleProps {
		if len(resolved.People) >= maxPeople {
			break
		}
		label := c.claimLabel(ctx, entity, rp.prop)
		if label == "" || hasPerson(resolved.People, label) {
			continue
		}
		resolved.People = append(resolved.People, Person{Name: label, Role: rp.role})
	}

	return resolved, nil
}

// claimLabel resolves the first claim under prop to a display string: raw
// string values pass through, item references are dereferenced to their
// English label. Missing claims and dereference failures yield "".
func (c *Client) claimLabel(ctx context.Context, entity *Entity, prop string) string {
	dv := entity.FirstClaim(prop)
	if dv == nil {
		return ""
	}
	if qid, ok := dv.AsItemID(); ok {
		linked, err := c.Entity(ctx, qid)
		if err != nil {
			zap.L().Warn("linked entity fetch failed",
				zap.String("qid", qid),
				zap.String("prop", prop),
				zap.Error(err),
			)
			return ""
		}
		return linked.EnglishLabel()
	}
	if s, ok := dv.AsString(); ok {
		return s
	}
	return ""
}

func hasPerson(people []Person, name string) bool {
	for _, p := range people {
		if p.Name == name {
			return true
		}
	}
	return false
}
