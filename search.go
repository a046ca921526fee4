package twitter

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SearchTweets runs a keyword search. count must be in [1, 100]; an empty
// resultType means ResultRecent.
func (c *Client) SearchTweets(ctx context.Context, query string, count int, resultType ResultType) (any, error) {
	if query == "" {
		return nil, validationError("search query must not be empty")
	}
	if err := checkCountRange(count, maxSearchCount); err != nil {
		return nil, err
	}
	rt, err := resolveResultType(resultType)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("count", strconv.Itoa(count))
	q.Set("result_type", string(rt))
	q.Set("tweet_mode", "extended")
	return c.do(ctx, http.MethodGet, pathSearchTweets, q, nil)
}
