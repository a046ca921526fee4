package twitter

import (
	"log/slog"
	"net/url"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Client is a thin client for the twitterapi.io REST API.
// It is meant for sequential use from one goroutine.
type Client struct {
	transport transport
	baseURL   *url.URL
	headers   map[string]string
	cfg       ClientConfig
}

// NewClient resolves the API key, builds the auth headers and opens a
// reusable connection pool. No network call is made.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()

	if cfg.APIKey == "" {
		return nil, &Error{
			Kind:    KindAuthentication,
			Message: "API key not provided, set " + APIKeyEnv + " or pass ClientConfig.APIKey",
		}
	}

	headers, err := authHeaders(cfg.AuthType, cfg.APIKey, cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, validationError("%v", err)
	}

	var t transport
	if cfg.Stealth {
		st, err := newStealthTransport(cfg)
		if err != nil {
			return nil, &Error{Kind: KindAPI, Message: "init transport: " + err.Error(), Err: err}
		}
		t = st
	} else {
		t = newHTTPTransport(cfg)
	}

	attrs := []any{
		slog.String("base_url", base.String()),
		slog.String("auth", string(cfg.AuthType)),
		slog.String("key", maskKey(cfg.APIKey)),
		slog.Bool("stealth", cfg.Stealth),
	}
	if cfg.Proxy != "" {
		attrs = append(attrs, slog.String("proxy", stealth.MaskProxy(cfg.Proxy)))
	}
	slog.Debug("twitterapi: client ready", attrs...)

	return &Client{
		transport: t,
		baseURL:   base,
		headers:   headers,
		cfg:       cfg,
	}, nil
}

// BaseURL returns the normalized provider root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// AuthType returns the auth mode the client was built with.
func (c *Client) AuthType() AuthType {
	return c.cfg.AuthType
}

// Close releases pooled idle connections. It is safe to call more than
// once and on a nil client.
func (c *Client) Close() error {
	if c == nil || c.transport == nil {
		return nil
	}
	c.transport.closeIdle()
	return nil
}

// recordAPICall calls the metrics hook if configured.
func (c *Client) recordAPICall(endpoint string, success, rateLimited bool) {
	if c.cfg.MetricsHook != nil {
		c.cfg.MetricsHook(endpoint, success, rateLimited)
	}
}
