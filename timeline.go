package twitter

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// timelineQuery builds the user_timeline parameters shared by tweets,
// replies and retweets.
func timelineQuery(username string, count int, includeRTs, excludeReplies bool) (url.Values, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if err := checkCountRange(count, maxTimelineCount); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("screen_name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("include_rts", strconv.FormatBool(includeRTs))
	q.Set("exclude_replies", strconv.FormatBool(excludeReplies))
	q.Set("tweet_mode", "extended")
	return q, nil
}

// GetUserTweets fetches a user's timeline including retweets.
// count must be in [1, 200].
func (c *Client) GetUserTweets(ctx context.Context, username string, count int, includeReplies bool) (any, error) {
	q, err := timelineQuery(username, count, true, !includeReplies)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, pathUserTimeline, q, nil)
}

// GetUserReplies fetches a user's timeline with replies and without retweets.
func (c *Client) GetUserReplies(ctx context.Context, username string, count int) (any, error) {
	q, err := timelineQuery(username, count, false, false)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, pathUserTimeline, q, nil)
}

// GetUserRetweets fetches a user's timeline and keeps only retweets.
// The upstream has no retweet-only filter, so it is applied here.
func (c *Client) GetUserRetweets(ctx context.Context, username string, count int) (any, error) {
	q, err := timelineQuery(username, count, true, true)
	if err != nil {
		return nil, err
	}
	v, err := c.do(ctx, http.MethodGet, pathUserTimeline, q, nil)
	if err != nil {
		return nil, err
	}
	return FilterRetweets(v), nil
}

// FilterRetweets keeps entries carrying a non-null retweeted_status.
// An array is filtered directly; an object's "data" array is filtered in
// place and the object returned. Any other shape is returned unmodified.
func FilterRetweets(v any) any {
	switch t := v.(type) {
	case []any:
		return filterRetweetList(t)
	case map[string]any:
		if data, ok := t["data"].([]any); ok {
			t["data"] = filterRetweetList(data)
		}
		return t
	default:
		return v
	}
}

func filterRetweetList(items []any) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		if isRetweet(it) {
			out = append(out, it)
		}
	}
	return out
}

func isRetweet(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	rs, ok := m["retweeted_status"]
	return ok && rs != nil
}
