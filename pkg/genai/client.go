// Package genai is a minimal client for the Google Generative Language
// REST API (models.generateContent). Only the prompt-in/text-out surface
// the advisor needs is covered.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aryadee/smart-bank/pkg/httpclient"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com"

type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type client struct {
	client httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, hc httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &client{config: cfg, client: hc}
}

func (c *client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.config.Enable || c.config.APIKey == "" {
		return "", ErrNotConfigured
	}

	request := GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: prompt}}}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return "", fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type":   "application/json",
		"x-goog-api-key": c.config.APIKey,
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.config.BaseURL, c.config.Model)

	resp, err := c.client.Post(ctx, url, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}

		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return "", MapStatusToError(resp.StatusCode)
	}

	var response GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decoding error: %w", err)
	}

	text := response.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
