package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agentdesk/agentdesk-go/auth"
	"github.com/agentdesk/agentdesk-go/headers"
)

const defaultUserAgent = "agentdesk-sdk/" + Version

// Config wires authentication, environment selection, and telemetry for the
// API client.
type Config struct {
	// Environment selects the backend origin when BaseURL is empty.
	Environment Environment
	// BaseURL overrides the environment-derived origin.
	BaseURL string
	// AccessToken seeds the session credential explicitly. When empty, the
	// TokenStore mirror is read once instead.
	AccessToken string
	// TokenStore persists the session credential across client instances.
	// Optional; without it the credential lives only in memory.
	TokenStore TokenStore
	// Identity mints identity-provider tokens for the refresh path.
	// Optional; without it an authorization failure ends the session.
	Identity   IdentityProvider
	HTTPClient *http.Client
	Telemetry  TelemetryHooks
	UserAgent  string
}

// Client provides high-level helpers for interacting with the AgentDesk API.
// It owns the in-memory session credential: every request other than the
// token exchange itself carries the current access token when one exists,
// and an authorization failure triggers at most one refresh and one retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	telemetry  TelemetryHooks
	userAgent  string
	session    *session

	// Grouped service clients.
	Auth         *AuthClient
	Agents       *AgentsClient
	Integrations *IntegrationsClient
	Projects     *ProjectsClient
	Tasks        *TasksClient
	TimeEntries  *TimeEntriesClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		resolved, err := cfg.Environment.BaseURL()
		if err != nil {
			return nil, err
		}
		baseURL = resolved
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	exchanger, err := auth.NewClient(auth.Config{
		BaseURL:    normalized,
		HTTPClient: httpClient,
		UserAgent:  ua,
	})
	if err != nil {
		return nil, err
	}
	sess := &session{
		store:     cfg.TokenStore,
		identity:  cfg.Identity,
		telemetry: cfg.Telemetry,
		exchange: func(ctx context.Context, identityToken string) (string, error) {
			tokens, err := exchanger.Exchange(ctx, auth.ExchangeRequest{IdentityToken: identityToken})
			if err != nil {
				return "", err
			}
			return tokens.AccessToken, nil
		},
	}
	switch {
	case cfg.AccessToken != "":
		sess.token = normalizeToken(cfg.AccessToken)
	case cfg.TokenStore != nil:
		stored, err := cfg.TokenStore.Load()
		if err != nil {
			return nil, err
		}
		sess.token = normalizeToken(stored)
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
		session:    sess,
	}
	client.Auth = &AuthClient{client: client}
	client.Agents = &AgentsClient{client: client}
	client.Integrations = &IntegrationsClient{client: client}
	client.Projects = &ProjectsClient{client: client}
	client.Tasks = &TasksClient{client: client}
	client.TimeEntries = &TimeEntriesClient{client: client}
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("sdk: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("sdk: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("sdk: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("sdk: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

// Do performs a JSON request against a relative endpoint and decodes the
// response body into out (pass nil to discard it). It carries the session
// credential and participates in the refresh-and-retry flow like every
// typed service method.
func (c *Client) Do(ctx context.Context, method, path string, payload any, out any, options ...RequestOption) error {
	return c.do(ctx, method, path, payload, out, options...)
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any, options ...RequestOption) error {
	opts := buildCallOptions(options)
	if opts.timeout != nil && *opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *opts.timeout)
		defer cancel()
	}
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = encoded
	}

	token := c.session.current()
	resp, err := c.roundTrip(ctx, method, path, body, token, opts)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		drainAndClose(resp.Body)
		fresh, refreshErr := c.session.refresh(ctx, token)
		if refreshErr != nil {
			return refreshErr
		}
		// One retry with the refreshed token. Whatever comes back now is
		// final; a second authorization failure surfaces as an APIError.
		resp, err = c.roundTrip(ctx, method, path, body, fresh, opts)
		if err != nil {
			return err
		}
	}
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, token string, opts callOptions) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set(headers.Client, defaultUserAgent)
	applyCallHeaders(req, opts)
	authChain{bearerAuth{token: token}}.Apply(req)
	injectTraceparent(ctx, req)

	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(ctx, req)
	}
	c.telemetry.log(ctx, LogLevelInfo, "http_request", map[string]any{
		"method": method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(ctx, req, resp, err, time.Since(start))
	}
	c.telemetry.metric(ctx, "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		return nil, TransportError{
			Kind:    classifyTransportErrorKind(err),
			Message: "request failed",
			Cause:   err,
		}
	}
	return resp, nil
}

func (c *Client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
