package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/url"
	"syscall"
	"time"
)

// do sends one request and maps the outcome onto the error taxonomy.
// There is no retry: every failure is returned to the caller as an *Error.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, payload any) (any, error) {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Kind: KindValidation, Message: "encode request body", Err: err}
		}
		body = b
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	respBody, respHdrs, status, err := c.transport.do(ctx, method, endpointURL(c.baseURL, endpoint, query), cloneHeaders(c.headers), body)
	if err != nil {
		c.recordAPICall(endpoint, false, false)
		return nil, transportError(err)
	}

	slog.Debug("twitterapi: request",
		slog.String("method", method),
		slog.String("endpoint", endpoint),
		slog.Int("status", status),
		slog.Duration("elapsed", time.Since(start)),
	)

	if status != 200 {
		c.recordAPICall(endpoint, false, status == 429)
		return nil, statusError(status, errorBody(respBody), respHdrs)
	}

	v, err := decodeJSON(respBody)
	if err != nil {
		c.recordAPICall(endpoint, false, false)
		return nil, &Error{
			Kind:       KindAPI,
			Message:    "decode response: " + err.Error(),
			StatusCode: status,
			Body:       truncateBytes(respBody, 200),
			Err:        err,
		}
	}
	c.recordAPICall(endpoint, true, false)
	return v, nil
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number so
// ids and counts survive untouched.
func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

// errorBody decodes an error response body, falling back to its raw text.
func errorBody(b []byte) any {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if v, err := decodeJSON(b); err == nil {
		return v
	}
	return string(b)
}

// transportError classifies a failure that produced no HTTP response.
func transportError(err error) *Error {
	switch {
	case isTimeout(err):
		return &Error{Kind: KindAPI, Message: "request timed out", Err: err}
	case isConnectionError(err):
		return &Error{Kind: KindAPI, Message: "connection error", Err: err}
	default:
		return &Error{Kind: KindAPI, Message: "request failed: " + err.Error(), Err: err}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	var dnsErr *net.DNSError
	return errors.As(err, &opErr) ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

func truncateBytes(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
