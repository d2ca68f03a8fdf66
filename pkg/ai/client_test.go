package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/summarize", r.URL.Path)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "long input text", req["text"])

		_ = json.NewEncoder(w).Encode(map[string]string{"summary_text": "short"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.Summarize(context.Background(), "long input text")
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"source_lang": "en",
			"translated":  "hallo welt",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	tr, err := c.Translate(context.Background(), "hello world", "de")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.SourceLang)
	assert.Equal(t, "de", tr.TargetLang)
	assert.Equal(t, "hello world", tr.Original)
	assert.Equal(t, "hallo welt", tr.Translated)
}

func TestSentiment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sentiment", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"label": "POSITIVE", "score": 0.98})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	s, err := c.Sentiment(context.Background(), "great stuff")
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", s.Label)
	assert.InDelta(t, 0.98, s.Score, 1e-9)
}

func TestNon200SurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Summarize(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
