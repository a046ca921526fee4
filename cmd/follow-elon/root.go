package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	twitter "github.com/anatolykoptev/go-twitterapi"
)

var (
	cfg    settings
	logger zerolog.Logger
	client *twitter.Client

	// Persistent flags
	envFile    string
	apiKey     string
	baseURL    string
	authType   string
	proxyURL   string
	useStealth bool
	timeout    time.Duration
	logLevel   string
	compact    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "follow-elon",
	Short: "Track an X account's activity through twitterapi.io",
	Long: `follow-elon fetches profiles, timelines, replies, retweets, followers,
followings and search results from the twitterapi.io REST API and prints the
raw JSON responses.

The API key is read from --api-key or TWITTER_API_KEY (a .env file is loaded
first when present).`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	logger = setupLogger("info", "console")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading TWITTER_* variables")
	pf.StringVar(&apiKey, "api-key", "", "twitterapi.io API key (default $TWITTER_API_KEY)")
	pf.StringVar(&baseURL, "base-url", "", "API base URL (default $TWITTER_BASE_URL or https://api.twitterapi.io/)")
	pf.StringVar(&authType, "auth-type", "", `auth mode: "x-api-key" or "bearer"`)
	pf.StringVar(&proxyURL, "proxy", "", "proxy URL, implies --stealth")
	pf.BoolVar(&useStealth, "stealth", false, "send requests through the browser-fingerprinted transport")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout (default 30s)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&compact, "compact", false, "print compact JSON instead of indented")
}

// initializeApp loads configuration and builds the API client.
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "help" || (cmd.Parent() != nil && cmd.Parent().Name() == "completion") {
		return nil
	}

	var err error
	cfg, err = loadSettings(envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if flags.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if flags.Changed("auth-type") {
		cfg.AuthType = authType
	}
	if flags.Changed("proxy") {
		cfg.Proxy = proxyURL
	}
	if flags.Changed("stealth") {
		cfg.Stealth = useStealth
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)

	client, err = twitter.NewClient(cfg.clientConfig())
	if err != nil {
		return err
	}
	logger.Debug().
		Str("base_url", client.BaseURL()).
		Str("auth", string(client.AuthType())).
		Msg("client initialized")
	return nil
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	return client.Close()
}

// setupLogger configures zerolog for CLI output and routes the library's
// slog records to stderr at the same level.
func setupLogger(level, format string) zerolog.Logger {
	zl := zerolog.InfoLevel
	sl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		zl, sl = zerolog.DebugLevel, slog.LevelDebug
	case "warn":
		zl, sl = zerolog.WarnLevel, slog.LevelWarn
	case "error":
		zl, sl = zerolog.ErrorLevel, slog.LevelError
	}
	zerolog.SetGlobalLevel(zl)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: sl})))

	if format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// reportError logs err with the API status and body when available.
func reportError(err error) {
	var apiErr *twitter.Error
	if !errors.As(err, &apiErr) {
		logger.Error().Err(err).Msg("command failed")
		return
	}

	ev := logger.Error().Str("kind", apiErr.Kind.String())
	if apiErr.StatusCode != 0 {
		ev = ev.Int("status", apiErr.StatusCode)
	}
	if apiErr.Body != nil {
		ev = ev.Str("body", fmt.Sprint(apiErr.Body))
	}
	if !apiErr.ResetTime.IsZero() {
		ev = ev.Time("reset_at", apiErr.ResetTime)
	}
	ev.Msg(apiErr.Message)
}
