package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	body    string
	err     error
	fetched []string
}

func (f *fakeFetcher) FetchJSON(_ context.Context, url string) (json.RawMessage, error) {
	f.fetched = append(f.fetched, url)
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.body), nil
}

func TestSummary(t *testing.T) {
	f := &fakeFetcher{body: `{"title":"Acme Corporation","extract":"Acme makes widgets."}`}
	client := NewClient(f, WithBaseURL("https://wiki.test"))

	summary, err := client.Summary(context.Background(), "Acme Corporation")
	require.NoError(t, err)
	assert.Equal(t, "Acme makes widgets.", summary)

	require.Len(t, f.fetched, 1)
	assert.Equal(t, "https://wiki.test/api/rest_v1/page/summary/Acme%20Corporation", f.fetched[0])
}

func TestSummary_FetchError(t *testing.T) {
	f := &fakeFetcher{err: fmt.Errorf("page missing")}
	client := NewClient(f, WithBaseURL("https://wiki.test"))

	_, err := client.Summary(context.Background(), "Nonexistent")
	assert.Error(t, err)
}

func TestSummary_EmptyExtract(t *testing.T) {
	f := &fakeFetcher{body: `{"type":"disambiguation"}`}
	client := NewClient(f, WithBaseURL("https://wiki.test"))

	summary, err := client.Summary(context.Background(), "Mercury")
	require.NoError(t, err)
	assert.Empty(t, summary)
}

func TestPageURL(t *testing.T) {
	client := NewClient(&fakeFetcher{}, WithBaseURL("https://wiki.test"))
	assert.Equal(t, "https://wiki.test/wiki/Acme_Corporation", client.PageURL("Acme Corporation"))
}
