package twitter

import (
	"net/http"
	"os"
	"strings"
	"time"
)

// APIKeyEnv is the environment variable consulted when no API key is configured.
const APIKeyEnv = "TWITTER_API_KEY"

// AuthType selects how the API key is presented to the upstream.
type AuthType string

const (
	AuthAPIKey AuthType = "x-api-key" // x-api-key header (default)
	AuthBearer AuthType = "bearer"    // Authorization: Bearer
)

// ClientConfig holds all configuration for the API client.
type ClientConfig struct {
	// APIKey is the provider key. When empty it is read from Getenv(APIKeyEnv).
	APIKey string

	// BaseURL is the provider root. Default: https://api.twitterapi.io/
	BaseURL string

	// AuthType selects the auth header. Default: AuthAPIKey.
	AuthType AuthType

	// Timeout bounds every request. Default: 30s.
	Timeout time.Duration

	// UserAgent is sent with every request. Default: follow-elon/0.1.0
	UserAgent string

	// Stealth routes requests through a go-stealth browser client instead of net/http.
	Stealth bool

	// Proxy is an optional proxy URL. Setting it implies Stealth.
	Proxy string

	// HTTPClient overrides the net/http client used when Stealth is off.
	HTTPClient *http.Client

	// MetricsHook is called on each API request for external metrics collection.
	// endpoint is the request path, success and rateLimited indicate the outcome.
	MetricsHook func(endpoint string, success, rateLimited bool)

	// Getenv resolves the API key fallback. Default: os.Getenv.
	Getenv func(string) string
}

// defaults fills in zero-value config fields with sensible defaults.
func (cfg *ClientConfig) defaults() {
	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(cfg.Getenv(APIKeyEnv))
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.AuthType == "" {
		cfg.AuthType = AuthAPIKey
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Proxy != "" {
		cfg.Stealth = true
	}
}
