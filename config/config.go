// Package config defines the harness's configuration surface. A single Config
// value is constructed once at startup (defaults, then an optional YAML file,
// then command line overrides) and passed by reference into the executor and
// the suites; there is no global mutable settings object.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Web      WebConfig
	PostsAPI APIConfig
	UsersAPI APIConfig
	HTTP     HTTPConfig
	Run      RunConfig
}

// WebConfig targets a site laid out like the-internet.herokuapp.com, which
// serves the web scenarios.
type WebConfig struct {
	BaseURL  string
	Username string
	Password string
}

// APIConfig targets one REST API under test.
type APIConfig struct {
	BaseURL string
	Headers map[string]string
}

type HTTPConfig struct {
	ConnectTimeout       time.Duration
	ReadTimeout          time.Duration
	MaxRetries           int
	BaseDelay            time.Duration
	MaxDelay             time.Duration
	RequestGap           time.Duration
	MaxRequestsPerWindow int
	Window               time.Duration
}

type RunConfig struct {
	Timeout time.Duration
}

// ConfigError reports an invalid option value. It is fatal at startup; the
// harness never starts a run with a partially valid configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func Default() Config {
	return Config{
		Web: WebConfig{
			BaseURL:  "https://the-internet.herokuapp.com",
			Username: "tomsmith",
			Password: "SuperSecretPassword!",
		},
		PostsAPI: APIConfig{
			BaseURL: "https://jsonplaceholder.typicode.com",
			Headers: map[string]string{
				"Content-Type": "application/json",
				"User-Agent":   "QA-Automation-Harness/1.0",
			},
		},
		UsersAPI: APIConfig{
			BaseURL: "https://reqres.in/api",
			Headers: map[string]string{
				"Content-Type": "application/json",
				"Accept":       "application/json",
				"User-Agent":   "QA-Automation-Harness/1.0",
				"x-api-key":    "reqres-free-v1",
			},
		},
		HTTP: HTTPConfig{
			ConnectTimeout:       5 * time.Second,
			ReadTimeout:          30 * time.Second,
			MaxRetries:           3,
			BaseDelay:            500 * time.Millisecond,
			MaxDelay:             10 * time.Second,
			RequestGap:           100 * time.Millisecond,
			MaxRequestsPerWindow: 30,
			Window:               time.Minute,
		},
		Run: RunConfig{
			Timeout: 15 * time.Minute,
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, &ConfigError{Field: path, Reason: err.Error()}
	}
	if err := raw.apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.MaxRetries < 0 {
		return &ConfigError{Field: "http.max_retries", Reason: "must be >= 0"}
	}
	if c.HTTP.BaseDelay < 0 {
		return &ConfigError{Field: "http.base_delay", Reason: "must not be negative"}
	}
	if c.HTTP.MaxDelay != 0 && c.HTTP.MaxDelay < c.HTTP.BaseDelay {
		return &ConfigError{Field: "http.max_delay", Reason: "must be zero or >= base_delay"}
	}
	if c.HTTP.ConnectTimeout <= 0 {
		return &ConfigError{Field: "http.connect_timeout", Reason: "must be positive"}
	}
	if c.HTTP.ReadTimeout <= 0 {
		return &ConfigError{Field: "http.read_timeout", Reason: "must be positive"}
	}
	if c.HTTP.MaxRequestsPerWindow < 0 {
		return &ConfigError{Field: "http.max_requests_per_window", Reason: "must be >= 0"}
	}
	if c.HTTP.MaxRequestsPerWindow > 0 && c.HTTP.Window <= 0 {
		return &ConfigError{Field: "http.window", Reason: "must be positive when max_requests_per_window is set"}
	}
	if c.Run.Timeout <= 0 {
		return &ConfigError{Field: "run.timeout", Reason: "must be positive"}
	}
	for field, url := range map[string]string{
		"web.base_url":       c.Web.BaseURL,
		"posts_api.base_url": c.PostsAPI.BaseURL,
		"users_api.base_url": c.UsersAPI.BaseURL,
	} {
		if url == "" {
			return &ConfigError{Field: field, Reason: "must not be empty"}
		}
	}
	return nil
}
