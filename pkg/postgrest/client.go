// Package postgrest is a thin client for the Supabase PostgREST table API.
// It covers the filtered select/insert/update/delete surface the hosted
// storage backend needs; filters use PostgREST operator syntax ("eq.value").
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/aryadee/smart-bank/pkg/httpclient"
)

type Filters map[string]string

func Eq(value any) string {
	return fmt.Sprintf("eq.%v", value)
}

type Client interface {
	Select(ctx context.Context, table string, filters Filters, order string, into any) error
	Insert(ctx context.Context, table string, body any, into any) error
	// Update applies body to all rows matching filters and returns how many
	// rows were touched (via Prefer: return=representation).
	Update(ctx context.Context, table string, filters Filters, body any) (int, error)
	// Delete removes all rows matching filters and returns how many were
	// removed.
	Delete(ctx context.Context, table string, filters Filters) (int, error)
}

type client struct {
	client httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, hc httpclient.HTTPClient) (Client, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	return &client{config: cfg, client: hc}, nil
}

func (c *client) Select(ctx context.Context, table string, filters Filters, order string, into any) error {
	q := url.Values{"select": {"*"}}
	if order != "" {
		q.Set("order", order)
	}

	resp, err := c.client.Get(ctx, c.endpoint(table, filters, q), c.headers(false))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return readError(resp.StatusCode, resp.Body)
	}

	return json.NewDecoder(resp.Body).Decode(into)
}

func (c *client) Insert(ctx context.Context, table string, body any, into any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	resp, err := c.client.Post(ctx, c.endpoint(table, nil, nil), &buf, c.headers(true))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusCreated && resp.StatusCode != StatusOK {
		return readError(resp.StatusCode, resp.Body)
	}

	if into == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return fmt.Errorf("decoding error: %w", err)
	}
	if len(rows) == 0 {
		return errors.New("postgrest: insert returned no representation")
	}
	return json.Unmarshal(rows[0], into)
}

func (c *client) Update(ctx context.Context, table string, filters Filters, body any) (int, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, fmt.Errorf("encoding error: %w", err)
	}

	resp, err := c.client.Patch(ctx, c.endpoint(table, filters, nil), &buf, c.headers(true))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return 0, readError(resp.StatusCode, resp.Body)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decoding error: %w", err)
	}
	return len(rows), nil
}

func (c *client) Delete(ctx context.Context, table string, filters Filters) (int, error) {
	h := c.headers(false)
	h["Prefer"] = "return=representation"

	resp, err := c.client.Delete(ctx, c.endpoint(table, filters, nil), h)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return 0, nil
	}
	if resp.StatusCode != StatusOK {
		return 0, readError(resp.StatusCode, resp.Body)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("decoding error: %w", err)
	}
	return len(rows), nil
}

func (c *client) endpoint(table string, filters Filters, extra url.Values) string {
	q := url.Values{}
	for column, op := range filters {
		q.Set(column, op)
	}
	for key, values := range extra {
		q[key] = values
	}

	endpoint := c.config.URL + "/rest/v1/" + table
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	return endpoint
}

func (c *client) headers(write bool) map[string]string {
	h := map[string]string{
		"apikey":        c.config.APIKey,
		"Authorization": "Bearer " + c.config.APIKey,
	}
	if write {
		h["Content-Type"] = "application/json"
		h["Prefer"] = "return=representation"
	}
	return h
}

func readError(statusCode int, body io.Reader) error {
	var payload struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(body)
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Message == "" {
		payload.Message = string(raw)
	}
	return mapStatusToError(statusCode, payload.Message)
}
