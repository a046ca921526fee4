package twitter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrorKind categorizes client failures.
type ErrorKind int

const (
	KindAPI            ErrorKind = iota // generic API or transport failure
	KindAuthentication                  // missing API key, HTTP 401
	KindNotFound                        // HTTP 404
	KindValidation                      // bad arguments, HTTP 400
	KindRateLimit                       // HTTP 429
)

func (k ErrorKind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate limit"
	default:
		return "api"
	}
}

// Sentinels for errors.Is. ErrAPI matches every *Error.
var (
	ErrAPI            = errors.New("twitter api error")
	ErrAuthentication = errors.New("twitter authentication error")
	ErrNotFound       = errors.New("twitter resource not found")
	ErrValidation     = errors.New("twitter validation error")
	ErrRateLimit      = errors.New("twitter rate limit exceeded")
)

// Error is returned by every Client operation.
type Error struct {
	Kind    ErrorKind
	Message string

	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int

	// Body is the decoded response body: a JSON value, the raw text when the
	// body was not JSON, or nil when empty.
	Body any

	// ResetTime is set for KindRateLimit when the upstream sent a reset header.
	ResetTime time.Time

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("twitter: ")
	b.WriteString(e.Message)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrAuthentication:
		return e.Kind == KindAuthentication
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrRateLimit:
		return e.Kind == KindRateLimit
	}
	return false
}

// IsRateLimited reports whether err is a 429 from the upstream.
func IsRateLimited(err error) bool { return errors.Is(err, ErrRateLimit) }

// IsNotFound reports whether err is a 404 from the upstream.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool { return errors.Is(err, ErrAuthentication) }

// IsValidation reports whether err is an argument or HTTP 400 failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// statusError maps a non-200 response onto the error taxonomy.
func statusError(status int, body any, headers map[string]string) *Error {
	e := &Error{StatusCode: status, Body: body}
	switch status {
	case 401:
		e.Kind, e.Message = KindAuthentication, "authentication failed, check the API key"
	case 404:
		e.Kind, e.Message = KindNotFound, "resource not found"
	case 429:
		e.Kind, e.Message = KindRateLimit, "rate limit reached"
		e.ResetTime = parseRateLimitReset(headers)
	case 400:
		e.Kind, e.Message = KindValidation, "invalid request parameters"
	default:
		e.Kind, e.Message = KindAPI, fmt.Sprintf("request failed with status %d", status)
	}
	return e
}

// rateLimitResetHeaders lists the accepted reset header spellings, lowercased.
var rateLimitResetHeaders = []string{"x-ratelimit-reset", "x-rate-limit-reset"}

// parseRateLimitReset parses the unix timestamp reset header.
// Returns the zero time if missing or invalid.
func parseRateLimitReset(headers map[string]string) time.Time {
	for _, h := range rateLimitResetHeaders {
		v := strings.TrimSpace(headers[h])
		if v == "" {
			continue
		}
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Unix(ts, 0)
		}
	}
	return time.Time{}
}
