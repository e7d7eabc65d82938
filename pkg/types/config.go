// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for requests to the search API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-gaps/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429/503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// CoreConfig holds settings for the CORE search API client.
type CoreConfig struct {
	// BaseURL is the works search endpoint. It may already carry query
	// parameters; the client appends its own with the right separator.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is the CORE API key sent as a bearer token. Never written
	// back out by the tool.
	APIKey string `json:"-" yaml:"-" mapstructure:"api_key"`

	// Limit is the page size requested from the API (default 10).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`
}

// DisplayConfig controls how paper reports are rendered.
type DisplayConfig struct {
	// MaxPapers is the number of papers with full text to report on (default 5).
	MaxPapers int `json:"max_papers" yaml:"max_papers" mapstructure:"max_papers"`

	// Truncate is the maximum characters shown per text field in the text
	// view (default 500). A negative value disables truncation.
	Truncate int `json:"truncate" yaml:"truncate" mapstructure:"truncate"`
}

// Config groups all settings read from flags, environment, and the config file.
type Config struct {
	HTTP    HTTPConfig    `json:"http" yaml:"http" mapstructure:"http"`
	Core    CoreConfig    `json:"core" yaml:"core" mapstructure:"core"`
	Display DisplayConfig `json:"display" yaml:"display" mapstructure:"display"`
}

// Defaults for unset configuration values.
const (
	DefaultCoreBaseURL = "https://api.core.ac.uk/v3/search/works"
	DefaultCoreLimit   = 10
	DefaultTimeout     = 60 * time.Second
	DefaultUserAgent   = "research-gaps/0.1"
	DefaultMaxPapers   = 5
	DefaultTruncate    = 500
)

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.Core.BaseURL == "" {
		c.Core.BaseURL = DefaultCoreBaseURL
	}
	if c.Core.Limit <= 0 {
		c.Core.Limit = DefaultCoreLimit
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = DefaultUserAgent
	}
	if c.Display.MaxPapers <= 0 {
		c.Display.MaxPapers = DefaultMaxPapers
	}
	if c.Display.Truncate == 0 {
		c.Display.Truncate = DefaultTruncate
	}
	return c
}
