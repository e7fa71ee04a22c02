package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"shareit/internal/middleware"
)

// Result carries the server's reply verbatim: the gateway never rewrites
// what the server said.
type Result struct {
	Status      int
	Body        []byte
	ContentType string
}

// Client forwards validated requests to the ShareIt server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a forwarding Client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward replays a request against the server: same method, path, query and
// body, with the sharer header attached when present.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, sharerID int64, body []byte) (Result, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sharerID > 0 {
		req.Header.Set(middleware.HeaderSharerUserID, fmt.Sprintf("%d", sharerID))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("forward %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	return Result{
		Status:      resp.StatusCode,
		Body:        respBody,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
