package twitter

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the twitterapi.io REST root.
const DefaultBaseURL = "https://api.twitterapi.io/"

// Upstream endpoint paths, relative to the base URL.
const (
	pathUserShow     = "/users/show"
	pathUserTimeline = "/statuses/user_timeline"
	pathSearchTweets = "/search/tweets"
	pathFollowings   = "/twitter/user/followings"
	pathFollowers    = "/twitter/user/followers"
)

// parseBaseURL validates the base URL and makes it a directory so endpoint
// paths are appended rather than replacing its last segment.
func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// endpointURL joins an endpoint path and query onto the base URL.
func endpointURL(base *url.URL, endpoint string, query url.Values) string {
	ref := &url.URL{Path: strings.TrimLeft(endpoint, "/")}
	u := base.ResolveReference(ref)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}
