package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiravi/volt-parser/pkg/wikidata"
)

func TestEnrichAll_PreservesInputOrder(t *testing.T) {
	kb := &fakeKB{entities: map[string]*wikidata.ResolvedEntity{
		"Acme":    {ID: "Q1", Label: "Acme", PageURL: "https://kb.test/wiki/Q1"},
		"Globex":  {ID: "Q2", Label: "Globex", PageURL: "https://kb.test/wiki/Q2"},
		"Initech": {ID: "Q3", Label: "Initech", PageURL: "https://kb.test/wiki/Q3"},
	}}
	e := New(kb, &fakeSummaries{}, disabledFallback{}, WithConcurrency(3))

	names := []string{"Acme", "Globex", "Initech"}
	profiles, outcomes := e.EnrichAll(context.Background(), names, false)

	require.Len(t, profiles, 3)
	assert.Equal(t, "Acme", profiles[0].Name)
	assert.Equal(t, "Globex", profiles[1].Name)
	assert.Equal(t, "Initech", profiles[2].Name)

	require.Len(t, outcomes, 3)
	for i, outcome := range outcomes {
		assert.Equal(t, names[i], outcome.Name)
		assert.False(t, outcome.Failed())
	}
}

func TestEnrichAll_FailureIsolation(t *testing.T) {
	// Globex is unknown to the knowledge base; its siblings still succeed and
	// keep their positions.
	kb := &fakeKB{entities: map[string]*wikidata.ResolvedEntity{
		"Acme":    {ID: "Q1", Label: "Acme", PageURL: "https://kb.test/wiki/Q1"},
		"Initech": {ID: "Q3", Label: "Initech", PageURL: "https://kb.test/wiki/Q3"},
	}}
	e := New(kb, &fakeSummaries{}, disabledFallback{}, WithConcurrency(2))

	profiles, outcomes := e.EnrichAll(context.Background(), []string{"Acme", "Globex", "Initech"}, false)

	require.Len(t, profiles, 2)
	assert.Equal(t, "Acme", profiles[0].Name)
	assert.Equal(t, "Initech", profiles[1].Name)

	require.Len(t, outcomes, 3)
	assert.False(t, outcomes[0].Failed())
	assert.True(t, outcomes[1].Failed())
	assert.Equal(t, "Globex", outcomes[1].Name)
	assert.False(t, outcomes[2].Failed())
}

func TestEnrichAll_Empty(t *testing.T) {
	e := New(&fakeKB{}, &fakeSummaries{}, disabledFallback{})

	profiles, outcomes := e.EnrichAll(context.Background(), nil, false)
	assert.Empty(t, profiles)
	assert.Empty(t, outcomes)
}

func TestEnrichAll_AllFail(t *testing.T) {
	e := New(&fakeKB{}, &fakeSummaries{}, disabledFallback{})

	profiles, outcomes := e.EnrichAll(context.Background(), []string{"A", "B"}, false)
	assert.Empty(t, profiles)
	require.Len(t, outcomes, 2)
	for _, outcome := range outcomes {
		assert.True(t, outcome.Failed())
	}
}
