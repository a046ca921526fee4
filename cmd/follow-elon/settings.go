package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	twitter "github.com/anatolykoptev/go-twitterapi"
)

// settings is the CLI configuration, read from TWITTER_* environment
// variables and overridden by flags.
type settings struct {
	APIKey    string        `envconfig:"API_KEY"`
	BaseURL   string        `envconfig:"BASE_URL" default:"https://api.twitterapi.io/"`
	AuthType  string        `envconfig:"AUTH_TYPE" default:"x-api-key"`
	Proxy     string        `envconfig:"PROXY"`
	Stealth   bool          `envconfig:"STEALTH" default:"false"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	LogLevel  string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string        `envconfig:"LOG_FORMAT" default:"console"`
}

// loadSettings seeds the environment from envFile (if present) and decodes
// the TWITTER_* variables. Variables already set in the process win.
func loadSettings(envFile string) (settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return settings{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var s settings
	if err := envconfig.Process("twitter", &s); err != nil {
		return settings{}, fmt.Errorf("read environment: %w", err)
	}
	return s, nil
}

// clientConfig converts settings into the library configuration.
func (s settings) clientConfig() twitter.ClientConfig {
	return twitter.ClientConfig{
		APIKey:   s.APIKey,
		BaseURL:  s.BaseURL,
		AuthType: twitter.AuthType(s.AuthType),
		Timeout:  s.Timeout,
		Proxy:    s.Proxy,
		Stealth:  s.Stealth,
	}
}
