package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"automation-api/internal/domain"
)

// JokeClient fetches one random joke from the public joke API.
type JokeClient struct {
	url    string
	client *http.Client
}

func NewJokeClient(url string) *JokeClient {
	return &JokeClient{url: url, client: &http.Client{Timeout: 10 * time.Second}}
}

func (c *JokeClient) Random(ctx context.Context) (domain.Joke, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Joke{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Joke{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Joke{}, fmt.Errorf("joke api returned status %d", resp.StatusCode)
	}

	var joke domain.Joke
	if err := json.NewDecoder(resp.Body).Decode(&joke); err != nil {
		return domain.Joke{}, err
	}
	return joke, nil
}
