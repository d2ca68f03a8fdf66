package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"automation-api/internal/domain"
)

// Client calls the model-serving service that hosts the pre-trained
// summarization, translation and sentiment models. Each call is a single
// POST; failures surface to the caller without retries.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

type summarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

type summarizeResponse struct {
	SummaryText string `json:"summary_text"`
}

func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	var out summarizeResponse
	err := c.post(ctx, "/summarize", summarizeRequest{Text: text, MaxLength: 150, MinLength: 40}, &out)
	if err != nil {
		return "", err
	}
	return out.SummaryText, nil
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	SourceLang string `json:"source_lang"`
	Translated string `json:"translated"`
}

func (c *Client) Translate(ctx context.Context, text, targetLang string) (domain.Translation, error) {
	var out translateResponse
	err := c.post(ctx, "/translate", translateRequest{Text: text, TargetLang: targetLang}, &out)
	if err != nil {
		return domain.Translation{}, err
	}
	return domain.Translation{
		SourceLang: out.SourceLang,
		TargetLang: targetLang,
		Original:   text,
		Translated: out.Translated,
	}, nil
}

type sentimentRequest struct {
	Text string `json:"text"`
}

type sentimentResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *Client) Sentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	var out sentimentResponse
	err := c.post(ctx, "/sentiment", sentimentRequest{Text: text}, &out)
	if err != nil {
		return domain.Sentiment{}, err
	}
	return domain.Sentiment{
		Label: out.Label,
		Score: out.Score,
		Note:  "English sentiment analyzed by AI model.",
	}, nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ai-service returned status %d for %s", resp.StatusCode, path)
	}
	return json.Unmarshal(body, out)
}
