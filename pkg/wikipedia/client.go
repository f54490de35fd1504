// Package wikipedia provides a client for the Wikipedia REST page-summary
// service.
package wikipedia

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://en.wikipedia.org"

// Fetcher issues cached, retried JSON GETs.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (json.RawMessage, error)
}

// Client fetches natural-language page summaries.
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

// NewClient creates a Wikipedia summary client over the given fetcher.
func NewClient(fetch Fetcher, opts ...Option) *Client {
	c := &Client{fetch: fetch, baseURL: defaultBaseURL}
	for _, o := range opts {
		o(c)
	}
	return c
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// Summary returns the plain-text summary for title, or an error when the
// page cannot be fetched. Callers treat failures as "no summary" and fall
// back to other description sources.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	u := c.baseURL + "/api/rest_v1/page/summary/" + url.PathEscape(title)

	body, err := c.fetch.FetchJSON(ctx, u)
	if err != nil {
		return "", err
	}

	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", eris.Wrapf(err, "wikipedia: decode summary for %q", title)
	}
	return resp.Extract, nil
}

// PageURL returns the article URL recorded as provenance for a title.
func (c *Client) PageURL(title string) string {
	return c.baseURL + "/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
