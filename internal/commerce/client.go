package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned when the commerce API answers 404 for the
// requested resource.
var ErrNotFound = errors.New("resource not found")

// APIError is any non-2xx answer from the commerce API other than 404.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api responded with status %d: %s", e.Status, e.Body)
}

type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
}

const defaultTimeout = 10 * time.Second

// Client talks to the external commerce API that owns orders, payments and
// loyalty state. It is constructed once in main and injected into the
// services that need it.
type Client struct {
	config     Config
	httpClient *http.Client
}

func New(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// do performs one API call: marshals body (when present), sets the auth
// headers, maps the status code onto the error taxonomy and decodes the
// response into out (when present).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s %s: %w", method, path, err)
	}

	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if res.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(res.Body)
		return &APIError{Status: res.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return nil
}
