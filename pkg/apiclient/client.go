package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/deskkit/pkg/logger"
)

// TokenProvider supplies the bearer token attached to authenticated requests.
// Returning an empty token (with a nil error) means the Authorization header
// is omitted entirely.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client is the shared HTTP core for all service wrappers. It builds request
// URLs from a single base URL, attaches bearer authentication, decodes JSON
// responses, and converts non-2xx responses into *APIError values.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenProvider sets the bearer token source for authenticated calls.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

// New creates a REST client for the given configuration.
// An empty base URL is a fatal configuration error.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNew creates a client that panics on invalid config.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out, fallback)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out, fallback)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out, fallback)
}

// Delete issues a DELETE request. The response body is decoded into out when
// out is non-nil.
func (c *Client) Delete(ctx context.Context, path string, out any, fallback string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out, fallback)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, reader, contentType, out, fallback)
}

// do performs the request. The Authorization header is attached only when the
// token provider yields a non-empty token; contentType is left empty for
// multipart bodies so the transport sets the boundary itself.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any, fallback string) error {
	if c.baseURL == "" {
		return ErrMissingBaseURL
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp, fallback)
		c.logger.LogAttrs(ctx, slog.LevelDebug, "request failed",
			logger.Endpoint(path),
			logger.StatusCode(resp.StatusCode),
			logger.Error(apiErr),
		)
		return apiErr
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}

	return nil
}

// newAPIError extracts the server-provided message from an error response.
// Bodies that are not valid JSON are treated as an empty object, falling back
// to the caller-supplied message.
func newAPIError(resp *http.Response, fallback string) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		payload.Message = ""
	}

	msg := payload.Message
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
