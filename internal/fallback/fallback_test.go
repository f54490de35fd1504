package fallback

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	profile *Profile
	err     error
	calls   int
}

func (s *stubProvider) Lookup(context.Context, string) (*Profile, error) {
	s.calls++
	return s.profile, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func TestResolver_Disabled(t *testing.T) {
	r := New(nil)

	assert.False(t, r.Enabled())
	assert.Empty(t, r.Source())
	assert.Nil(t, r.Lookup(context.Background(), "Acme"))
}

func TestResolver_Lookup(t *testing.T) {
	stub := &stubProvider{profile: &Profile{Website: "https://acme.example"}}
	r := New(stub)

	assert.True(t, r.Enabled())
	assert.Equal(t, "stub", r.Source())

	p := r.Lookup(context.Background(), "Acme")
	require.NotNil(t, p)
	assert.Equal(t, "https://acme.example", p.Website)
	assert.Equal(t, 1, stub.calls)
}

func TestResolver_SwallowsProviderError(t *testing.T) {
	stub := &stubProvider{err: fmt.Errorf("api down")}
	r := New(stub)

	assert.Nil(t, r.Lookup(context.Background(), "Acme"))
}

func TestResolver_EmptyProfileIsNil(t *testing.T) {
	stub := &stubProvider{profile: &Profile{}}
	r := New(stub)

	assert.Nil(t, r.Lookup(context.Background(), "Acme"))
}

func TestProfile_Empty(t *testing.T) {
	assert.True(t, (*Profile)(nil).Empty())
	assert.True(t, (&Profile{}).Empty())
	assert.False(t, (&Profile{Website: "https://acme.example"}).Empty())
	assert.False(t, (&Profile{KeyPeople: []string{"Jane Roe"}}).Empty())
}
