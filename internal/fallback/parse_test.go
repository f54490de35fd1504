package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile_Strict(t *testing.T) {
	raw := `{
		"website": "https://acme.example",
		"description": "Widget maker.",
		"sector": "Manufacturing",
		"hq_location": "Springfield, USA",
		"key_people": ["Jane Roe", {"name": "John Doe", "role": "CEO"}],
		"competitors": ["Globex"]
	}`

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Equal(t, "Widget maker.", p.Description)
	assert.Equal(t, "Manufacturing", p.Sector)
	assert.Equal(t, "Springfield, USA", p.HQLocation)
	assert.Equal(t, []string{"Jane Roe", "John Doe"}, p.KeyPeople)
}

func TestParseProfile_NullFields(t *testing.T) {
	raw := `{"website": "https://acme.example", "description": null, "sector": null,
		"hq_location": null, "key_people": null, "competitors": null}`

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Empty(t, p.Description)
	assert.Empty(t, p.KeyPeople)
}

func TestParseProfile_EmbeddedObject(t *testing.T) {
	raw := "Here is the requested data:\n```json\n" +
		`{"website": "https://acme.example", "description": "A {nested} brace in text."}` +
		"\n```\nLet me know if you need anything else!"

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Equal(t, "A {nested} brace in text.", p.Description)
}

func TestParseProfile_Repaired(t *testing.T) {
	// Bare-word value and trailing comma, both fixed by the repair stage.
	raw := `{"website": "https://acme.example", "sector": Manufacturing, "key_people": ["Jane Roe",],}`

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Equal(t, "Manufacturing", p.Sector)
	assert.Equal(t, []string{"Jane Roe"}, p.KeyPeople)
}

func TestParseProfile_MinimalSalvage(t *testing.T) {
	raw := "Acme's website appears to be https://acme.example and they make widgets."

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Equal(t, raw, p.Description)
}

func TestParseProfile_MinimalSalvageTruncates(t *testing.T) {
	raw := strings.Repeat("a", 500)

	p := ParseProfile(raw)
	require.NotNil(t, p)
	assert.Empty(t, p.Website)
	assert.Equal(t, strings.Repeat("a", maxExcerptRunes)+"…", p.Description)
}

func TestParseProfile_Empty(t *testing.T) {
	assert.Nil(t, ParseProfile(""))
	assert.Nil(t, ParseProfile("   \n  "))
}

func TestParseProfile_AllNull(t *testing.T) {
	raw := `{"website": null, "description": null, "sector": null,
		"hq_location": null, "key_people": [], "competitors": []}`
	assert.Nil(t, ParseProfile(raw))
}

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`, true},
		{"prefix and suffix", `noise {"a": 1} more noise`, `{"a": 1}`, true},
		{"nested braces", `x {"a": {"b": 2}} y`, `{"a": {"b": 2}}`, true},
		{"brace inside string", `{"a": "}"}`, `{"a": "}"}`, true},
		{"escaped quote", `{"a": "\"}"}`, `{"a": "\"}"}`, true},
		{"unbalanced", `{"a": 1`, "", false},
		{"no object", "plain text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractObject(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Jane Roe", personName([]byte(`"Jane Roe"`)))
	assert.Equal(t, "Jane Roe", personName([]byte(`{"name": " Jane Roe ", "role": "CEO"}`)))
	assert.Empty(t, personName([]byte(`42`)))
	assert.Empty(t, personName([]byte(`{"role": "CEO"}`)))
}
