// Package config provides command configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. MOVEDIFF_MAX_LINES.
const Prefix = "MOVEDIFF"

// LogFormat is the log output format.
type LogFormat string

// Log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Output is the format of command results on stdout.
type Output string

// Output formats.
const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// Config holds all environment-based configuration.
type Config struct {
	// IgnoreWhitespace selects the whitespace-insensitive comparator.
	// Env: MOVEDIFF_IGNORE_WHITESPACE (default: true)
	IgnoreWhitespace bool `envconfig:"IGNORE_WHITESPACE" default:"true"`

	// MaxLines rejects inputs longer than this many lines. 0 disables the limit.
	// Env: MOVEDIFF_MAX_LINES (default: 0)
	MaxLines int `envconfig:"MAX_LINES" default:"0"`

	// LogLevel is the log verbosity level: trace, debug, info, warn, error
	// or off.
	// Env: MOVEDIFF_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat is the log output format (pretty or json).
	// Env: MOVEDIFF_LOG_FORMAT (default: pretty)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"pretty"`

	// Output is the result format (text, json or yaml).
	// Env: MOVEDIFF_OUTPUT (default: text)
	Output Output `envconfig:"OUTPUT" default:"text"`
}

// Load reads configuration from an optional .env file and the environment.
// Variables already set in the environment take precedence over the file.
// An empty envPath loads ".env" when present.
func Load(envPath string) (Config, error) {
	if err := loadDotEnv(envPath); err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadDotEnv loads path, silently skipping a missing file.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Normalize lowercases enumerated values.
func (c Config) Normalize() Config {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = LogFormat(strings.ToLower(strings.TrimSpace(string(c.LogFormat))))
	c.Output = Output(strings.ToLower(strings.TrimSpace(string(c.Output))))
	return c
}

// Validate checks enumerated values and limits.
func (c Config) Validate() error {
	if c.MaxLines < 0 {
		return fmt.Errorf("max lines must not be negative: %d", c.MaxLines)
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error", "off", "disabled":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return c.Output.Validate()
}

// Validate reports whether o is a known output format.
func (o Output) Validate() error {
	switch o {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", string(o))
	}
}
