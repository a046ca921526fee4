package twitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// twitterTimeLayout is the created_at format of the v1.1 payloads.
const twitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// flexString accepts a JSON string or number, for ids sent either way.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// flexInt accepts a JSON number, numeric string or null.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flexInt: %w", err)
	}
	*f = flexInt(n)
	return nil
}

type restUser struct {
	ID              flexString `json:"id"`
	IDStr           string     `json:"id_str"`
	Name            string     `json:"name"`
	ScreenName      string     `json:"screen_name"`
	UserName        string     `json:"userName"`
	Description     string     `json:"description"`
	FollowersCount  flexInt    `json:"followers_count"`
	FriendsCount    flexInt    `json:"friends_count"`
	StatusesCount   flexInt    `json:"statuses_count"`
	ListedCount     flexInt    `json:"listed_count"`
	CreatedAt       string     `json:"created_at"`
	Verified        bool       `json:"verified"`
	IsBlueVerified  bool       `json:"is_blue_verified"`
	ProfileImageURL string     `json:"profile_image_url_https"`
}

type restTweet struct {
	ID                flexString `json:"id"`
	IDStr             string     `json:"id_str"`
	FullText          string     `json:"full_text"`
	Text              string     `json:"text"`
	CreatedAt         string     `json:"created_at"`
	FavoriteCount     flexInt    `json:"favorite_count"`
	RetweetCount      flexInt    `json:"retweet_count"`
	QuoteCount        flexInt    `json:"quote_count"`
	InReplyToStatusID flexString `json:"in_reply_to_status_id_str"`
	User              *restUser  `json:"user"`
	RetweetedStatus   *restTweet `json:"retweeted_status"`
}

// remarshal converts a decoded payload into dst through JSON.
func remarshal(v any, dst any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// ParseUser builds a TwitterUser from a GetUserInfo payload. A {"data": {...}}
// envelope is unwrapped.
func ParseUser(v any) (*TwitterUser, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse user: expected object, got %T", v)
	}
	if inner, ok := m["data"].(map[string]any); ok {
		m = inner
	}
	var r restUser
	if err := remarshal(m, &r); err != nil {
		return nil, fmt.Errorf("parse user: %w", err)
	}
	return parseRestUser(r)
}

// ParseUsers builds users from a followers/followings payload. Accepted
// shapes: a bare array, or an object with "followers", "followings", "users"
// or "data" arrays.
func ParseUsers(v any) ([]*TwitterUser, error) {
	items, err := payloadList(v, "followers", "followings", "users", "data")
	if err != nil {
		return nil, fmt.Errorf("parse users: %w", err)
	}
	users := make([]*TwitterUser, 0, len(items))
	for _, it := range items {
		var r restUser
		if err := remarshal(it, &r); err != nil {
			slog.Debug("skip user parse error", slog.Any("error", err))
			continue
		}
		u, err := parseRestUser(r)
		if err != nil {
			slog.Debug("skip user parse error", slog.Any("error", err))
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// ParseTweets builds tweets from a timeline or search payload. Accepted
// shapes: a bare array, or an object with "statuses", "tweets" or "data" arrays.
func ParseTweets(v any) ([]*Tweet, error) {
	items, err := payloadList(v, "statuses", "tweets", "data")
	if err != nil {
		return nil, fmt.Errorf("parse tweets: %w", err)
	}
	tweets := make([]*Tweet, 0, len(items))
	for _, it := range items {
		var r restTweet
		if err := remarshal(it, &r); err != nil {
			slog.Debug("skip tweet parse error", slog.Any("error", err))
			continue
		}
		t, err := parseRestTweet(r)
		if err != nil {
			slog.Debug("skip tweet parse error", slog.Any("error", err))
			continue
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

// payloadList finds the entry array in v, trying keys in order for objects.
func payloadList(v any, keys ...string) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case map[string]any:
		for _, k := range keys {
			if items, ok := t[k].([]any); ok {
				return items, nil
			}
		}
		return nil, fmt.Errorf("no list under %s", strings.Join(keys, "/"))
	default:
		return nil, fmt.Errorf("unexpected payload %T", v)
	}
}

func parseRestUser(r restUser) (*TwitterUser, error) {
	id := r.IDStr
	if id == "" {
		id = string(r.ID)
	}
	handle := r.ScreenName
	if handle == "" {
		handle = r.UserName
	}
	if id == "" && handle == "" {
		return nil, fmt.Errorf("user has neither id nor screen_name")
	}
	bio := strings.TrimSpace(r.Description)
	return &TwitterUser{
		ID:          id,
		Handle:      handle,
		DisplayName: r.Name,
		Bio:         bio,
		Followers:   int(r.FollowersCount),
		Following:   int(r.FriendsCount),
		TweetCount:  int(r.StatusesCount),
		ListedCount: int(r.ListedCount),
		CreatedAt:   parseTwitterTime(r.CreatedAt),
		IsVerified:  r.Verified || r.IsBlueVerified,
		HasAvatar:   r.ProfileImageURL != "" && !strings.Contains(r.ProfileImageURL, "default_profile"),
		HasBio:      bio != "",
	}, nil
}

func parseRestTweet(r restTweet) (*Tweet, error) {
	id := r.IDStr
	if id == "" {
		id = string(r.ID)
	}
	if id == "" {
		return nil, fmt.Errorf("empty tweet id")
	}

	text := r.FullText
	if text == "" {
		text = r.Text
	}

	t := &Tweet{
		ID:                id,
		Text:              text,
		CreatedAt:         parseTwitterTime(r.CreatedAt),
		Likes:             int(r.FavoriteCount),
		Retweets:          int(r.RetweetCount),
		Quotes:            int(r.QuoteCount),
		InReplyToStatusID: string(r.InReplyToStatusID),
	}
	if r.User != nil {
		t.AuthorID = r.User.IDStr
		if t.AuthorID == "" {
			t.AuthorID = string(r.User.ID)
		}
		t.AuthorHandle = r.User.ScreenName
	}
	if r.RetweetedStatus != nil {
		if rt, err := parseRestTweet(*r.RetweetedStatus); err == nil {
			t.RetweetedStatus = rt
		}
	}
	return t, nil
}

func parseTwitterTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(twitterTimeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
