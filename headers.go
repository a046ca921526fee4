package twitter

import "fmt"

// defaultUserAgent identifies this client to the upstream.
const defaultUserAgent = "follow-elon/0.1.0"

// authHeaders returns the fixed per-client headers for the selected auth mode.
func authHeaders(authType AuthType, apiKey, userAgent string) (map[string]string, error) {
	h := map[string]string{
		"content-type": "application/json",
		"accept":       "application/json",
		"user-agent":   userAgent,
	}
	switch authType {
	case AuthAPIKey:
		h["x-api-key"] = apiKey
	case AuthBearer:
		h["authorization"] = "Bearer " + apiKey
	default:
		return nil, validationError("auth type must be %q or %q, got %q", AuthAPIKey, AuthBearer, string(authType))
	}
	return h, nil
}

// cloneHeaders copies h so per-request mutation never touches the client's set.
func cloneHeaders(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// maskKey hides all but the last four characters of a credential.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return fmt.Sprintf("****%s", key[len(key)-4:])
}

// apiHeaderOrder is the header order used by the stealth transport.
var apiHeaderOrder = []string{
	"authorization",
	"x-api-key",
	"content-type",
	"user-agent",
	"accept",
	"accept-encoding",
}
