package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	twitter "github.com/anatolykoptev/go-twitterapi"
)

var (
	count          int
	includeReplies bool
	resultType     string
)

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var tweetsCmd = &cobra.Command{
	Use:   "tweets <username>",
	Short: "List a user's latest tweets (retweets included)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserTweets(cmd.Context(), args[0], count, includeReplies)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var repliesCmd = &cobra.Command{
	Use:   "replies <username>",
	Short: "List a user's timeline with replies and without retweets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserReplies(cmd.Context(), args[0], count)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var retweetsCmd = &cobra.Command{
	Use:   "retweets <username>",
	Short: "List only the retweets from a user's timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserRetweets(cmd.Context(), args[0], count)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers <username>",
	Short: "List a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserFollowers(cmd.Context(), args[0], count)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var followingsCmd = &cobra.Command{
	Use:   "followings <username>",
	Short: "List the accounts a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := client.GetUserFollowings(cmd.Context(), args[0], count)
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search tweets by keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		v, err := client.SearchTweets(cmd.Context(), query, count, twitter.ResultType(resultType))
		if err != nil {
			return err
		}
		return printJSON(os.Stdout, v)
	},
}

func init() {
	for _, c := range []*cobra.Command{tweetsCmd, repliesCmd, retweetsCmd, followersCmd, followingsCmd, searchCmd} {
		c.Flags().IntVarP(&count, "count", "n", twitter.DefaultCount, "number of results")
	}
	tweetsCmd.Flags().BoolVar(&includeReplies, "include-replies", false, "include replies in the timeline")
	searchCmd.Flags().StringVarP(&resultType, "result-type", "t", string(twitter.ResultRecent), "recent, popular or mixed")

	rootCmd.AddCommand(userCmd, tweetsCmd, repliesCmd, retweetsCmd, followersCmd, followingsCmd, searchCmd)
}

// printJSON writes v as JSON, indented unless --compact is set.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
