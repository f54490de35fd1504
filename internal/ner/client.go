package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "http://127.0.0.1:8020"

// Option configures the HTTP provider.
type Option func(*httpProvider)

// WithBaseURL overrides the default NER service URL.
func WithBaseURL(url string) Option {
	return func(p *httpProvider) {
		p.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(p *httpProvider) {
		p.http = hc
	}
}

type httpProvider struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Provider backed by an entity-recognition HTTP service
// exposing POST /entities.
func NewClient(opts ...Option) Provider {
	p := &httpProvider{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

type recognizeRequest struct {
	Text string `json:"text"`
}

type recognizeResponse struct {
	Entities []Entity `json:"entities"`
}

func (p *httpProvider) Recognize(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(recognizeRequest{Text: text})
	if err != nil {
		return nil, eris.Wrap(err, "ner: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/entities", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "ner: create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "ner: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "ner: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("ner: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	var result recognizeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "ner: unmarshal response")
	}

	return result.Entities, nil
}
