package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	twitter "github.com/anatolykoptev/go-twitterapi"
)

var (
	summaryCount int
	summaryQuery string
)

// summaryCmd walks through every endpoint for one account and prints a
// human-readable digest.
var summaryCmd = &cobra.Command{
	Use:   "summary [username]",
	Short: "Print profile, tweets, replies, retweets and a popular search",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := "elonmusk"
		if len(args) == 1 {
			username = args[0]
		}
		return runSummary(cmd.Context(), os.Stdout, client, username, summaryQuery, summaryCount)
	},
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryCount, "count", "n", 5, "number of tweets per section")
	summaryCmd.Flags().StringVarP(&summaryQuery, "query", "q", "Tesla", "keyword for the popular search section")
	rootCmd.AddCommand(summaryCmd)
}

// summaryAPI is the subset of the client used by the summary.
type summaryAPI interface {
	GetUserInfo(ctx context.Context, username string) (any, error)
	GetUserTweets(ctx context.Context, username string, count int, includeReplies bool) (any, error)
	GetUserReplies(ctx context.Context, username string, count int) (any, error)
	GetUserRetweets(ctx context.Context, username string, count int) (any, error)
	SearchTweets(ctx context.Context, query string, count int, resultType twitter.ResultType) (any, error)
}

func runSummary(ctx context.Context, w io.Writer, api summaryAPI, username, query string, n int) error {
	fmt.Fprintf(w, "=== Profile of @%s ===\n", strings.TrimLeft(username, "@"))
	info, err := api.GetUserInfo(ctx, username)
	if err != nil {
		return fmt.Errorf("user info: %w", err)
	}
	if u, err := twitter.ParseUser(info); err == nil {
		fmt.Fprintf(w, "Handle:    @%s\n", u.Handle)
		fmt.Fprintf(w, "Name:      %s\n", u.DisplayName)
		fmt.Fprintf(w, "Followers: %d\n", u.Followers)
		fmt.Fprintf(w, "Following: %d\n", u.Following)
	} else {
		logger.Debug().Err(err).Msg("profile not in expected shape")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Latest tweets ===")
	tweets, err := api.GetUserTweets(ctx, username, n, false)
	if err != nil {
		return fmt.Errorf("tweets: %w", err)
	}
	for i, t := range parsedTweets(tweets) {
		fmt.Fprintf(w, "%d. %s\n", i+1, snippet(t.Text))
		if !t.CreatedAt.IsZero() {
			fmt.Fprintf(w, "   posted:   %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(w, "   retweets: %d  likes: %d\n", t.Retweets, t.Likes)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Replies ===")
	replies, err := api.GetUserReplies(ctx, username, n)
	if err != nil {
		return fmt.Errorf("replies: %w", err)
	}
	var found []*twitter.Tweet
	for _, t := range parsedTweets(replies) {
		if t.IsReply() {
			found = append(found, t)
		}
	}
	fmt.Fprintf(w, "found %d replies\n", len(found))
	for i, t := range found {
		fmt.Fprintf(w, "%d. %s\n", i+1, snippet(t.Text))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== Retweets ===")
	retweets, err := api.GetUserRetweets(ctx, username, n)
	if err != nil {
		return fmt.Errorf("retweets: %w", err)
	}
	rts := parsedTweets(retweets)
	fmt.Fprintf(w, "found %d retweets\n", len(rts))
	printed := 0
	for _, t := range rts {
		orig := t.RetweetedStatus
		if orig == nil {
			continue
		}
		author := orig.AuthorHandle
		if author == "" {
			author = "unknown"
		}
		printed++
		fmt.Fprintf(w, "%d. retweeted @%s: %s\n", printed, author, snippet(orig.Text))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "=== Popular tweets about %s ===\n", query)
	results, err := api.SearchTweets(ctx, query, n, twitter.ResultPopular)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	statuses := parsedTweets(results)
	fmt.Fprintf(w, "found %d tweets\n", len(statuses))
	for i, t := range statuses {
		author := t.AuthorHandle
		if author == "" {
			author = "unknown"
		}
		fmt.Fprintf(w, "%d. @%s: %s\n", i+1, author, snippet(t.Text))
	}
	return nil
}

func parsedTweets(v any) []*twitter.Tweet {
	tweets, err := twitter.ParseTweets(v)
	if err != nil {
		logger.Debug().Err(err).Msg("payload has no tweet list")
		return nil
	}
	return tweets
}

// snippet shortens text to 100 runes on one line.
func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= 100 {
		return s
	}
	return string(r[:100]) + "..."
}
