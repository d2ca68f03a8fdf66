package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJokeClientRandom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"setup":     "Why do programmers prefer dark mode?",
			"punchline": "Because light attracts bugs.",
		})
	}))
	defer srv.Close()

	c := NewJokeClient(srv.URL)
	joke, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Why do programmers prefer dark mode?", joke.Setup)
	assert.Equal(t, "Because light attracts bugs.", joke.Punchline)
}

func TestJokeClientNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewJokeClient(srv.URL)
	_, err := c.Random(context.Background())
	require.Error(t, err)
}
