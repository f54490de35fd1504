package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiravi/volt-parser/internal/model"
)

type fakeService struct {
	names      []string
	extractErr error
	profiles   []model.CompanyProfile
	gotText    string
	gotNames   []string
	gotFB      bool
}

func (f *fakeService) Organizations(_ context.Context, text string) ([]string, error) {
	f.gotText = text
	return f.names, f.extractErr
}

func (f *fakeService) EnrichAll(_ context.Context, names []string, useFallback bool) ([]model.CompanyProfile, []model.EnrichmentOutcome) {
	f.gotNames = names
	f.gotFB = useFallback
	return f.profiles, nil
}

func TestServeHealth(t *testing.T) {
	mux := newMux(&fakeService{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeExtract(t *testing.T) {
	profile := model.NewProfile("Acme Corporation")
	svc := &fakeService{
		names:    []string{"Acme Corp"},
		profiles: []model.CompanyProfile{*profile},
	}
	mux := newMux(svc)

	body := `{"text": "Acme Corp shipped widgets.", "use_fallback": true}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme Corp shipped widgets.", svc.gotText)
	assert.Equal(t, []string{"Acme Corp"}, svc.gotNames)
	assert.True(t, svc.gotFB)

	var profiles []model.CompanyProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	require.Len(t, profiles, 1)
	assert.Equal(t, "Acme Corporation", profiles[0].Name)
}

func TestServeExtract_EmptyResult(t *testing.T) {
	mux := newMux(&fakeService{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract",
		strings.NewReader(`{"text": "nothing notable here"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServeExtract_BadRequest(t *testing.T) {
	mux := newMux(&fakeService{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"text": `},
		{"missing text", `{"use_fallback": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestServeExtract_ExtractionFailure(t *testing.T) {
	mux := newMux(&fakeService{extractErr: fmt.Errorf("ner service down")})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract",
		strings.NewReader(`{"text": "Acme Corp"}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
