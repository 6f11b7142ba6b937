package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.PostsAPI.BaseURL)
	assert.Equal(t, "https://reqres.in/api", cfg.UsersAPI.BaseURL)
	assert.Equal(t, "https://the-internet.herokuapp.com", cfg.Web.BaseURL)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.HTTP.BaseDelay)
	assert.Equal(t, "application/json", cfg.UsersAPI.Headers["Content-Type"])
}

func TestLoadWithEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfigFile(t, `
web:
  base_url: http://localhost:8080
posts_api:
  base_url: http://localhost:9090
  headers:
    X-Trace: abc
http:
  max_retries: 1
  base_delay: 50ms
  read_timeout: 10s
run:
  timeout: 2m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Web.BaseURL)
	assert.Equal(t, "tomsmith", cfg.Web.Username, "unset options keep their defaults")
	assert.Equal(t, "http://localhost:9090", cfg.PostsAPI.BaseURL)
	assert.Equal(t, "abc", cfg.PostsAPI.Headers["X-Trace"])
	assert.Equal(t, "application/json", cfg.PostsAPI.Headers["Content-Type"],
		"file headers merge with the defaults rather than replacing them")
	assert.Equal(t, 1, cfg.HTTP.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, cfg.HTTP.BaseDelay)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Run.Timeout)
	assert.Equal(t, Default().UsersAPI, cfg.UsersAPI)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, "http:\n  base_delay: not-a-duration\n")

	_, err := Load(path)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "http.base_delay", ce.Field)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfigFile(t, "{{{not yaml")

	_, err := Load(path)
	var ce *ConfigError
	assert.ErrorAs(t, err, &ce)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative retries", func(c *Config) { c.HTTP.MaxRetries = -1 }, "http.max_retries"},
		{"negative base delay", func(c *Config) { c.HTTP.BaseDelay = -time.Second }, "http.base_delay"},
		{"max delay below base", func(c *Config) { c.HTTP.MaxDelay = 100 * time.Millisecond }, "http.max_delay"},
		{"zero connect timeout", func(c *Config) { c.HTTP.ConnectTimeout = 0 }, "http.connect_timeout"},
		{"zero read timeout", func(c *Config) { c.HTTP.ReadTimeout = 0 }, "http.read_timeout"},
		{"negative window budget", func(c *Config) { c.HTTP.MaxRequestsPerWindow = -1 }, "http.max_requests_per_window"},
		{"budget without window", func(c *Config) { c.HTTP.Window = 0 }, "http.window"},
		{"zero run timeout", func(c *Config) { c.Run.Timeout = 0 }, "run.timeout"},
		{"empty web url", func(c *Config) { c.Web.BaseURL = "" }, "web.base_url"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.field, ce.Field)
		})
	}
}

func TestValidateAllowsDisabledLimits(t *testing.T) {
	cfg := Default()
	cfg.HTTP.MaxRetries = 0
	cfg.HTTP.MaxDelay = 0
	cfg.HTTP.RequestGap = 0
	cfg.HTTP.MaxRequestsPerWindow = 0
	cfg.HTTP.Window = 0
	assert.NoError(t, cfg.Validate())
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "http.max_retries", Reason: "must be >= 0"}
	assert.Equal(t, "invalid configuration: http.max_retries: must be >= 0", err.Error())
}
