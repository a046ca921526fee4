package twitter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	stealth "github.com/anatolykoptev/go-stealth"
)

// transport performs a single HTTP exchange. Response header keys are lowercased.
type transport interface {
	do(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, map[string]string, int, error)
	closeIdle()
}

// httpTransport is the default net/http-backed transport with its own connection pool.
type httpTransport struct {
	client *http.Client
}

func newHTTPTransport(cfg ClientConfig) *httpTransport {
	if cfg.HTTPClient != nil {
		return &httpTransport{client: cfg.HTTPClient}
	}
	var rt http.RoundTripper = http.DefaultTransport
	if dt, ok := http.DefaultTransport.(*http.Transport); ok {
		rt = dt.Clone()
	}
	return &httpTransport{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: rt,
		},
	}
}

func (t *httpTransport) do(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, map[string]string, int, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	hdrs := make(map[string]string, len(resp.Header))
	for k, vs := range resp.Header {
		if len(vs) > 0 {
			hdrs[strings.ToLower(k)] = vs[0]
		}
	}
	return respBody, hdrs, resp.StatusCode, nil
}

func (t *httpTransport) closeIdle() {
	t.client.CloseIdleConnections()
}

// stealthTransport sends requests through a go-stealth browser client,
// optionally via a proxy.
type stealthTransport struct {
	client *stealth.BrowserClient
}

func newStealthTransport(cfg ClientConfig) (*stealthTransport, error) {
	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(apiHeaderOrder),
		stealth.WithTimeout(timeoutSeconds(cfg.Timeout)),
	}
	if cfg.Proxy != "" {
		opts = append(opts, stealth.WithProxy(cfg.Proxy))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return &stealthTransport{client: bc}, nil
}

// do relies on DoWithHeaderOrderCtx so ctx deadlines apply to the blocking call.
func (t *stealthTransport) do(ctx context.Context, method, url string, headers map[string]string, body []byte) ([]byte, map[string]string, int, error) {
	var r io.Reader
	if body != nil {
		r = strings.NewReader(string(body))
	}
	respBody, respHdrs, status, err := t.client.DoWithHeaderOrderCtx(ctx, method, url, headers, r, apiHeaderOrder)
	if err != nil {
		return nil, nil, 0, err
	}
	hdrs := make(map[string]string, len(respHdrs))
	for k, v := range respHdrs {
		hdrs[strings.ToLower(k)] = v
	}
	return respBody, hdrs, status, nil
}

// closeIdle is a no-op: BrowserClient exposes no way to drop its pool.
func (t *stealthTransport) closeIdle() {}

// timeoutSeconds rounds d up to whole seconds, at least one.
func timeoutSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
