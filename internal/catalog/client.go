package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	codeOK = 200

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 8 << 20
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the catalog API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// WithLogger sets the logger requests are traced to.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the API rooted at baseURL (e.g. http://localhost:8080/api).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// HasToken reports whether a bearer token is configured.
func (c *Client) HasToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Login exchanges credentials for a bearer token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return unexpected(fmt.Errorf("login response carried no token"))
	}
	c.SetToken(out.Token)
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return unexpected(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, query, body, "application/json", out)
}

// do sends one request and decodes the envelope. Every failure comes back as *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return unexpected(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("catalog request failed", "method", method, "path", path, "error", err)
		return unexpected(err)
	}
	defer resp.Body.Close()

	c.log.Debug("catalog request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return unexpected(fmt.Errorf("read response: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &Error{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return unexpected(fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest || env.Code != codeOK {
		code := env.Code
		if code == 0 || code == codeOK {
			code = resp.StatusCode
		}
		message := env.Message
		if message == "" {
			message = http.StatusText(code)
		}
		return &Error{Code: code, Message: message}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return unexpected(fmt.Errorf("response for %s %s carried no data", method, path))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return unexpected(fmt.Errorf("decode response data: %w", err))
	}
	return nil
}
