package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiravi/volt-parser/internal/ner"
)

type fakeNER struct {
	entities []ner.Entity
	err      error
	gotText  string
}

func (f *fakeNER) Recognize(_ context.Context, text string) ([]ner.Entity, error) {
	f.gotText = text
	return f.entities, f.err
}

func TestOrganizations(t *testing.T) {
	provider := &fakeNER{entities: []ner.Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Alice Smith", Label: "PERSON"},
		{Text: "Globex Inc", Label: "ORG"},
		{Text: "acme corp.", Label: "ORG"}, // duplicate of the first
		{Text: "  ", Label: "ORG"},
	}}

	names, err := New(provider).Organizations(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corp", "Globex Inc"}, names)
}

func TestOrganizations_FirstSeenFormWins(t *testing.T) {
	provider := &fakeNER{entities: []ner.Entity{
		{Text: "Acme Corp.", Label: "ORG"},
		{Text: "Acme Corp", Label: "ORG"},
	}}

	names, err := New(provider).Organizations(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corp."}, names)
}

func TestOrganizations_StripsMarkdownBeforeRecognition(t *testing.T) {
	provider := &fakeNER{}

	_, err := New(provider).Organizations(context.Background(), "see [Acme](https://acme.example) today")
	require.NoError(t, err)
	assert.Equal(t, "see Acme today", provider.gotText)
}

func TestOrganizations_ProviderError(t *testing.T) {
	provider := &fakeNER{err: errors.New("model unavailable")}

	_, err := New(provider).Organizations(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recognize entities")
}

func TestOrganizations_Empty(t *testing.T) {
	names, err := New(&fakeNER{}).Organizations(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, names)
}
