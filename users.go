package twitter

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetUserInfo fetches a user profile by handle. A leading '@' is ignored.
func (c *Client) GetUserInfo(ctx context.Context, username string) (any, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("screen_name", name)
	return c.do(ctx, http.MethodGet, pathUserShow, q, nil)
}

// GetUserFollowings fetches the accounts a user follows (single page).
func (c *Client) GetUserFollowings(ctx context.Context, username string, count int) (any, error) {
	return c.fetchUserList(ctx, pathFollowings, username, count)
}

// GetUserFollowers fetches a user's followers (single page).
func (c *Client) GetUserFollowers(ctx context.Context, username string, count int) (any, error) {
	return c.fetchUserList(ctx, pathFollowers, username, count)
}

func (c *Client) fetchUserList(ctx context.Context, endpoint, username string, count int) (any, error) {
	name, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if err := checkCountPositive(count); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("userName", name)
	q.Set("count", strconv.Itoa(count))
	return c.do(ctx, http.MethodGet, endpoint, q, nil)
}
