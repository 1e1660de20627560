// Package config handles application configuration and command-line argument parsing.
package config

//go:generate impgen config.PostProcessConfig

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/joe/summarize-client/pkg/api"
)

// Exported constants.
const (
	DefaultServer = "http://localhost:5000"
	DefaultRatio  = 40
	MinRatio      = 1
	MaxRatio      = 100
)

// Method is the summarization method chosen on the command line.
type Method api.Method

// String returns the wire identifier of the method
func (m Method) String() string {
	return string(m)
}

// API returns the method as sent to the server
func (m Method) API() api.Method {
	return api.Method(m)
}

// ParseMethod parses a method name. Only the selectable methods are accepted here; unknown
// identifiers reported by the server are still tolerated elsewhere.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "standard":
		return Method(api.MethodNormal), nil
	case "business_insights", "business-insights", "business":
		return Method(api.MethodBusinessInsights), nil
	default:
		return Method(api.MethodNormal), fmt.Errorf(
			"invalid method: %s (valid: normal, business_insights; alias: business)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Config holds the application configuration
type Config struct {
	Server      string        `arg:"-s,--server" default:"http://localhost:5000" help:"Summarization server base URL"`
	Ratio       int           `arg:"-r,--ratio" default:"40" help:"Summary length as a percentage of the original (1-100)"`
	Method      Method        `arg:"-m,--method" default:"normal" help:"Summarization method: normal|business_insights (alias: business)"`
	Timeout     time.Duration `arg:"--timeout" default:"30s" help:"HTTP request timeout"`
	ThemeFile   string        `arg:"--theme-file" help:"Theme preference file (default: <config dir>/summarize/prefs.yaml)"`
	LogFile     string        `arg:"--log-file" help:"Write debug logs to this file"`
	LogLevel    string        `arg:"--log-level" default:"info" help:"Log level: debug|info|warn|error"`
	DownloadDir string        `arg:"--download-dir" default:"." help:"Directory for downloaded summaries"`
	Headless    bool          `arg:"--headless" help:"Summarize the given files and print results instead of starting the UI"`
	Inputs      []string      `arg:"positional" help:"Files or glob patterns to summarize (implies --headless)"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "A terminal client for the text summarization service"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "summarize 1.0.0"
}

// Default returns the configuration used when no flags are given.
func Default() *Config {
	return &Config{
		Server:      DefaultServer,
		Ratio:       DefaultRatio,
		Method:      Method(api.MethodNormal),
		Timeout:     api.DefaultTimeout,
		LogLevel:    "info",
		DownloadDir: ".",
	}
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	cfg.Server = strings.TrimRight(strings.TrimSpace(cfg.Server), "/")
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}

	if cfg.Method == "" {
		cfg.Method = Method(api.MethodNormal)
	}

	// Input files only make sense without the UI
	if len(cfg.Inputs) > 0 {
		cfg.Headless = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the server URL, ratio and timeout
func (cfg *Config) Validate() error {
	if err := validateServerURL(cfg.Server); err != nil {
		return err
	}

	if cfg.Ratio < MinRatio || cfg.Ratio > MaxRatio {
		return fmt.Errorf("ratio must be between %d and %d, got %d", MinRatio, MaxRatio, cfg.Ratio)
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", cfg.Timeout)
	}

	if cfg.Headless && len(cfg.Inputs) == 0 {
		return fmt.Errorf("headless mode needs at least one input file or pattern")
	}

	return nil
}

func validateServerURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server URL %q: %w", raw, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server URL must use http or https: %s", raw)
	}

	if parsed.Host == "" {
		return fmt.Errorf("server URL is missing a host: %s", raw)
	}

	return nil
}
