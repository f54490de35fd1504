package ner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognize(t *testing.T) {
	var gotReq recognizeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/entities", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, _ = w.Write([]byte(`{"entities":[
			{"text":"Acme Corp","label":"ORG"},
			{"text":"Jane Roe","label":"PERSON"}
		]}`))
	}))
	defer srv.Close()

	provider := NewClient(WithBaseURL(srv.URL))

	entities, err := provider.Recognize(context.Background(), "Acme Corp hired Jane Roe.")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp hired Jane Roe.", gotReq.Text)
	assert.Equal(t, []Entity{
		{Text: "Acme Corp", Label: "ORG"},
		{Text: "Jane Roe", Label: "PERSON"},
	}, entities)
}

func TestRecognize_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	provider := NewClient(WithBaseURL(srv.URL))

	_, err := provider.Recognize(context.Background(), "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestRecognize_NoEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entities":[]}`))
	}))
	defer srv.Close()

	provider := NewClient(WithBaseURL(srv.URL))

	entities, err := provider.Recognize(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Empty(t, entities)
}
