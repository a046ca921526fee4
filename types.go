package twitter

import "time"

// The client returns raw decoded JSON. These types are optional typed views
// built by the Parse* helpers for callers that want them.

// TwitterUser represents a Twitter/X account profile.
type TwitterUser struct {
	ID          string
	Handle      string
	DisplayName string
	Bio         string
	Followers   int
	Following   int
	TweetCount  int
	ListedCount int
	CreatedAt   time.Time
	IsVerified  bool
	HasAvatar   bool
	HasBio      bool
}

// Tweet represents a single tweet.
type Tweet struct {
	ID                string
	AuthorID          string
	AuthorHandle      string
	Text              string
	CreatedAt         time.Time
	Likes             int
	Retweets          int
	Quotes            int
	InReplyToStatusID string
	RetweetedStatus   *Tweet
}

// IsReply reports whether the tweet answers another status.
func (t *Tweet) IsReply() bool { return t.InReplyToStatusID != "" }

// IsRetweet reports whether the tweet is a retweet.
func (t *Tweet) IsRetweet() bool { return t.RetweetedStatus != nil }
