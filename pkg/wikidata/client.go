// Package wikidata provides a client for the Wikidata entity API, resolving
// organization names to canonical entities and structured claims.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://www.wikidata.org"

// Wikidata property identifiers the resolver cares about.
const (
	PropOfficialWebsite = "P856"
	PropIndustry        = "P452"
	PropHeadquarters    = "P159"
	PropDirector        = "P1037"
	PropFounder         = "P112"
)

// ErrNotFound is returned when the search finds no matching entity.
var ErrNotFound = eris.New("wikidata: no matching entity")

// Fetcher issues cached, retried JSON GETs.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
}

// Client looks up entities against the Wikidata API. All requests route
// through the Fetcher and inherit its cache and retry semantics.
type Client struct {
	fetch   Fetcher
	baseURL string
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a Wikidata client over the given fetcher.
func NewClient(fetch Fetcher, opts ...Option) *Client {
	c := &Client{fetch: fetch, baseURL: defaultBaseURL}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchHit is the canonical match for a searched name.
type SearchHit struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type searchResponse struct {
	Search []SearchHit `json:"search"`
}

// Search returns the first search hit for name, or ErrNotFound. No ranking
// is applied beyond first-result-wins.
func (c *Client) Search(ctx context.Context, name string) (*SearchHit, error) {
	u := c.baseURL + "/w/api.php?action=wbsearchentities&language=en&format=json&search=" +
		url.QueryEscape(name)

	resp, err := fetchAs[searchResponse](ctx, c.fetch, u)
	if err != nil {
		return nil, err
	}
	if len(resp.Search) == 0 {
		return nil, ErrNotFound
	}
	return &resp.Search[0], nil
}

// Entity is a full Wikidata entity record.
type Entity struct {
	ID     string             `json:"id"`
	Labels map[string]Label   `json:"labels"`
	Claims map[string][]Claim `json:"claims"`
}

// Label is a language-tagged entity label.
type Label struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Claim is a structured fact attached to an entity under a property.
type Claim struct {
	MainSnak Snak `json:"mainsnak"`
}

// Snak carries the claim's value, when present.
type Snak struct {
	DataValue *DataValue `json:"datavalue"`
}

// DataValue is the raw claim value; Value is decoded lazily because it may
// be a string, an item reference, or another shape.
type DataValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type itemRef struct {
	EntityType string `json:"entity-type"`
	NumericID  int64  `json:"numeric-id"`
	ID         string `json:"id"`
}

// AsString decodes the value as a plain string.
func (dv *DataValue) AsString() (string, bool) {
	if dv == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(dv.Value, &s); err != nil {
		return "", false
	}
	return s, true
}

// AsItemID decodes the value as a reference to another entity, returning its
// Q-identifier.
func (dv *DataValue) AsItemID() (string, bool) {
	if dv == nil {
		return "", false
	}
	var ref itemRef
	if err := json.Unmarshal(dv.Value, &ref); err != nil || ref.EntityType != "item" {
		return "", false
	}
	if ref.ID != "" {
		return ref.ID, true
	}
	if ref.NumericID > 0 {
		return fmt.Sprintf("Q%d", ref.NumericID), true
	}
	return "", false
}

// EnglishLabel returns the entity's "en" label, or "".
func (e *Entity) EnglishLabel() string {
	return e.Labels["en"].Value
}

// FirstClaim returns the first claim value recorded under prop, or nil.
func (e *Entity) FirstClaim(prop string) *DataValue {
	claims := e.Claims[prop]
	if len(claims) == 0 {
		return nil
	}
	return claims[0].MainSnak.DataValue
}

type entityResponse struct {
	Entities map[string]Entity `json:"entities"`
}

// Entity fetches the full record for a Q-identifier.
func (c *Client) Entity(ctx context.Context, qid string) (*Entity, error) {
	u := fmt.Sprintf("%s/wiki/Special:EntityData/%s.json", c.baseURL, url.PathEscape(qid))

	resp, err := fetchAs[entityResponse](ctx, c.fetch, u)
	if err != nil {
		return nil, err
	}
	ent, ok := resp.Entities[qid]
	if !ok {
		return nil, eris.Errorf("wikidata: entity %s missing from response", qid)
	}
	return &ent, nil
}

// EntityURL returns the canonical page URL for a Q-identifier, used both as
// provenance and as the default website when no official-site claim exists.
func (c *Client) EntityURL(qid string) string {
	return c.baseURL + "/wiki/" + url.PathEscape(qid)
}

func fetchAs[T any](ctx context.Context, f Fetcher, u string) (T, error) {
	var out T
	body, err := f.FetchJSON(ctx, u)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, eris.Wrapf(err, "wikidata: decode %s", u)
	}
	return out, nil
}
