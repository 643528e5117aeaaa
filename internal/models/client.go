package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"clinical-insights-go/internal/logger"
)

// Client talks to the model server over HTTP. The server wraps the actual
// pretrained models (NER, keyphrase embedding, noun chunking, summarization,
// polarity); this side only knows the JSON contract.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetry   time.Duration
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetry:   timeout,
	}
}

func (c *Client) Entities(ctx context.Context, text string) ([]Entity, error) {
	var resp struct {
		Entities []Entity `json:"entities"`
	}
	req := map[string]any{"text": text}
	if err := c.doJSON(ctx, "/ner", req, &resp); err != nil {
		return nil, err
	}
	return resp.Entities, nil
}

func (c *Client) Keyphrases(ctx context.Context, text string, maxWords, topN int) ([]string, error) {
	var resp struct {
		Keyphrases []string `json:"keyphrases"`
	}
	req := map[string]any{"text": text, "max_words": maxWords, "top_n": topN}
	if err := c.doJSON(ctx, "/keyphrases", req, &resp); err != nil {
		return nil, err
	}
	return resp.Keyphrases, nil
}

func (c *Client) NounChunks(ctx context.Context, text string) ([]string, error) {
	var resp struct {
		Chunks []string `json:"chunks"`
	}
	req := map[string]any{"text": text}
	if err := c.doJSON(ctx, "/chunks", req, &resp); err != nil {
		return nil, err
	}
	return resp.Chunks, nil
}

func (c *Client) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	var resp struct {
		Summary string `json:"summary"`
	}
	req := map[string]any{"text": text, "max_length": maxLength, "min_length": minLength}
	if err := c.doJSON(ctx, "/summarize", req, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) Polarity(ctx context.Context, text string) (Polarity, error) {
	var resp Polarity
	req := map[string]any{"text": text}
	if err := c.doJSON(ctx, "/sentiment", req, &resp); err != nil {
		return Polarity{}, err
	}
	return resp, nil
}

// doJSON posts a payload and decodes the response, retrying transient
// failures with exponential backoff. Client errors (4xx) are permanent.
func (c *Client) doJSON(ctx context.Context, path string, payload, target any) error {
	log := logger.New().WithField("component", "model-client").WithField("path", path)

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warn("model request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("model server error: %s", string(body))
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("model request rejected: %s", string(body))
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("decode model response: %w", err)
			return lastErr
		}
		lastErr = nil
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.maxRetry
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}
