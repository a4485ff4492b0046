// Package api is the HTTP client for the storefront REST API. The API is
// a black box: every call carries the admin's bearer token and any
// non-2xx response is a uniform failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Credentials is the session token passed explicitly into every call.
// There is no ambient token; middleware resolves it per request.
type Credentials struct {
	Token string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// NewWithHTTPClient is for tests that need a custom transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{httpClient: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) Get(ctx context.Context, creds Credentials, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, creds, nil, out)
}

func (c *Client) Post(ctx context.Context, creds Credentials, path string, body any) error {
	return c.do(ctx, http.MethodPost, path, creds, body, nil)
}

func (c *Client) Put(ctx context.Context, creds Credentials, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, creds, body, nil)
}

func (c *Client) Delete(ctx context.Context, creds Credentials, path string) error {
	return c.do(ctx, http.MethodDelete, path, creds, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, creds Credentials, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: serverMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// StatusError is any non-2xx answer from the API. Callers do not branch
// on the code; it exists for logs.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("api %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// serverMessage pulls a {"message": ...} payload out of an error body
// when the API sends one; otherwise the trimmed raw body.
func serverMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
