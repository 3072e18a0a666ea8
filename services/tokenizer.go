package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenizerClient calls the external tokenization service that splits a
// free-text prompt into keyword tokens.
type TokenizerClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTokenizerClient(baseURL string) *TokenizerClient {
	return &TokenizerClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type tokenizeRequest struct {
	Data string `json:"data"`
}

type tokenizeResponse struct {
	Tokens []string `json:"tokens"`
}

func (c *TokenizerClient) Tokenize(ctx context.Context, prompt string) ([]string, error) {
	body, err := json.Marshal(tokenizeRequest{Data: prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tokenizer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/api/search/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenizer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokenizer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokenizer returned status %d", resp.StatusCode)
	}

	var parsed tokenizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode tokenizer response: %w", err)
	}
	return parsed.Tokens, nil
}
