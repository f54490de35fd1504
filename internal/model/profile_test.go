package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_CollectionsMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(NewProfile("Acme"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, []any{}, decoded["aliases"])
	assert.Equal(t, []any{}, decoded["key_people"])
	assert.Equal(t, []any{}, decoded["competitors"])
	assert.Equal(t, map[string]any{}, decoded["sources"])
	assert.Equal(t, Unknown, decoded["sector"])
	assert.Equal(t, Unknown, decoded["hq_location"])
}

func TestEnrichmentOutcome_Failed(t *testing.T) {
	assert.False(t, EnrichmentOutcome{Name: "Acme", Profile: NewProfile("Acme")}.Failed())
	assert.True(t, EnrichmentOutcome{Name: "Acme", Err: errors.New("boom")}.Failed())
}
