package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-go/core/logger"
	"github.com/resumeforge/resumeforge-go/core/tokenstore"
)

// Client issues authenticated requests against the ResumeForge REST API.
//
// Every outgoing request attaches "Authorization: Bearer <access>" when a
// token pair is stored; requests proceed unauthenticated otherwise. A 401
// response triggers exactly one silent token refresh followed by one replay
// of the original request. The retried state is threaded through the call
// chain, never stored on a shared request object, so a permanently invalid
// session can never loop.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokens           tokenstore.Store
	log              *slog.Logger
	onSessionExpired func()
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Timeouts are the
// transport's concern; the client adds no per-request timeout policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithSessionExpiredHook registers the callback fired when a token refresh
// fails and the stored credentials are cleared. The application typically
// navigates to its login surface here.
func WithSessionExpiredHook(fn func()) Option {
	return func(c *Client) {
		c.onSessionExpired = fn
	}
}

// New creates a client for the API at cfg.BaseURL, persisting credentials
// through tokens.
func New(cfg Config, tokens tokenstore.Store, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do issues a JSON request and decodes the response into out when out is
// non-nil. Non-2xx responses are returned as *HTTPError; transport failures
// wrap ErrRequestFailed.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return errors.Join(ErrInvalidResponse, err)
		}
	}
	return c.execute(ctx, method, path, payload, "application/json", out)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// ExchangeToken exchanges credentials for a fresh token pair and persists
// it. A 401 here means bad credentials, not an expired session, so the
// refresh protocol does not apply.
func (c *Client) ExchangeToken(ctx context.Context, username, password string) (tokenstore.TokenPair, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return tokenstore.TokenPair{}, err
	}

	status, data, err := c.send(ctx, http.MethodPost, "/token/", payload, "application/json", "")
	if err != nil {
		return tokenstore.TokenPair{}, err
	}
	if status >= http.StatusBadRequest {
		return tokenstore.TokenPair{}, newHTTPError(status, data)
	}

	var pair tokenstore.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return tokenstore.TokenPair{}, errors.Join(ErrInvalidResponse, err)
	}

	if err := c.tokens.Save(pair); err != nil {
		// Accepted degradation: the session works until the process exits.
		c.log.Warn("failed to persist token pair", logger.Error(err))
	}
	return pair, nil
}

// execute runs the request once and applies the single refresh-and-replay
// protocol on 401. The replay reuses the already-marshaled payload.
func (c *Client) execute(ctx context.Context, method, path string, payload []byte, contentType string, out any) error {
	var access string
	if pair, ok := c.tokens.Load(); ok {
		access = pair.Access
	}

	status, data, err := c.send(ctx, method, path, payload, contentType, access)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		pair, refreshErr := c.refreshTokens(ctx)
		if refreshErr != nil {
			c.forceLogout()
			return newHTTPError(status, data)
		}

		// One replay with the fresh access token. A second 401 falls
		// through to ordinary error handling below.
		status, data, err = c.send(ctx, method, path, payload, contentType, pair.Access)
		if err != nil {
			return err
		}
	}

	if status >= http.StatusBadRequest {
		return newHTTPError(status, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Join(ErrInvalidResponse, err)
		}
	}
	return nil
}

// send performs a single HTTP round trip and returns the status and body.
// A nil error with a 4xx/5xx status means the server answered; transport
// failures return a wrapped ErrRequestFailed.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, contentType, access string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, errors.Join(ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("transport failure",
			logger.Method(method), logger.Path(path), logger.RequestID(requestID), logger.Error(err))
		return 0, nil, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Join(ErrRequestFailed, err)
	}

	c.log.Debug("request completed",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Elapsed(start))

	return resp.StatusCode, data, nil
}

// refreshTokens exchanges the stored refresh token for a new pair and
// persists it. Runs outside the refresh-and-replay protocol: a 401 from
// the refresh endpoint is final.
func (c *Client) refreshTokens(ctx context.Context) (tokenstore.TokenPair, error) {
	pair, ok := c.tokens.Load()
	if !ok || pair.Refresh == "" {
		return tokenstore.TokenPair{}, ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh": pair.Refresh})
	if err != nil {
		return tokenstore.TokenPair{}, err
	}

	status, data, err := c.send(ctx, http.MethodPost, "/token/refresh/", payload, "application/json", "")
	if err != nil {
		return tokenstore.TokenPair{}, err
	}
	if status >= http.StatusBadRequest {
		return tokenstore.TokenPair{}, newHTTPError(status, data)
	}

	var next tokenstore.TokenPair
	if err := json.Unmarshal(data, &next); err != nil {
		return tokenstore.TokenPair{}, errors.Join(ErrInvalidResponse, err)
	}

	if err := c.tokens.Save(next); err != nil {
		c.log.Warn("failed to persist refreshed tokens", logger.Error(err))
	}
	return next, nil
}

// forceLogout clears stored credentials and fires the session-expired hook.
func (c *Client) forceLogout() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Warn("failed to clear tokens on forced logout", logger.Error(err))
	}
	c.log.Info("session expired, credentials cleared")
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}
