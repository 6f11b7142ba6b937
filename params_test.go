package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/qaworks/qa-automation-harness/config"
	"github.com/qaworks/qa-automation-harness/flags"
	"github.com/qaworks/qa-automation-harness/suite"
)

func parseParams(t *testing.T, args ...string) (commandParams, error) {
	t.Helper()
	var p commandParams
	var perr error
	app := &cli.App{
		Flags: flags.Flags,
		Action: func(c *cli.Context) error {
			p, perr = readParams(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"qa-harness"}, args...)))
	return p, perr
}

func TestReadParamsDefaults(t *testing.T) {
	p, err := parseParams(t)
	require.NoError(t, err)

	assert.Equal(t, "all", p.subset)
	assert.False(t, p.debug)
	assert.Equal(t, config.Default(), p.cfg)
}

func TestReadParamsRejectsUnknownSuite(t *testing.T) {
	_, err := parseParams(t, "--suite", "smoke")
	var ce *config.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "suite", ce.Field)
}

func TestReadParamsRejectsBadFilterRegex(t *testing.T) {
	_, err := parseParams(t, "--run", "(")
	var ce *config.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "run", ce.Field)
}

func TestReadParamsCompilesFilters(t *testing.T) {
	p, err := parseParams(t, "--run", "^api/", "--skip", "robustness")
	require.NoError(t, err)

	assert.Equal(t, []string{"^api/"}, p.filters.MustMatch.Patterns())
	assert.Equal(t, []string{"robustness"}, p.filters.MustNotMatch.Patterns())
}

func TestReadParamsAppliesOverrides(t *testing.T) {
	p, err := parseParams(t,
		"--web-base-url", "http://localhost:8080",
		"--max-retries", "1",
		"--base-delay", "50ms",
		"--run-timeout", "2m")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", p.cfg.Web.BaseURL)
	assert.Equal(t, 1, p.cfg.HTTP.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, p.cfg.HTTP.BaseDelay)
	assert.Equal(t, 2*time.Minute, p.cfg.Run.Timeout)
	assert.Equal(t, config.Default().HTTP.ReadTimeout, p.cfg.HTTP.ReadTimeout,
		"options without an override keep their configured values")
}

func TestReadParamsValidatesOverriddenConfig(t *testing.T) {
	_, err := parseParams(t, "--max-retries", "-1")
	var ce *config.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "http.max_retries", ce.Field)
}

func TestSelectCases(t *testing.T) {
	all := []suite.Case{
		{Name: "login", Category: suite.CategoryWeb},
		{Name: "posts", Category: suite.CategoryAPI},
	}

	webOnly, err := parseParams(t, "--suite", "web")
	require.NoError(t, err)
	require.Len(t, webOnly.selectCases(all), 1)
	assert.Equal(t, "login", webOnly.selectCases(all)[0].Name)

	apiOnly, err := parseParams(t, "--suite", "api")
	require.NoError(t, err)
	require.Len(t, apiOnly.selectCases(all), 1)
	assert.Equal(t, "posts", apiOnly.selectCases(all)[0].Name)

	everything, err := parseParams(t)
	require.NoError(t, err)
	assert.Len(t, everything.selectCases(all), 2)
}

func TestDescribeCommand(t *testing.T) {
	p, err := parseParams(t, "--suite", "api", "--run", "^api/", "--debug", "--junit", "out dir/junit.xml")
	require.NoError(t, err)

	cmd := p.describeCommand()
	assert.Contains(t, cmd, "qa-harness --suite api")
	assert.Contains(t, cmd, "--run '^api/'")
	assert.Contains(t, cmd, "--debug")
	assert.Contains(t, cmd, "--junit 'out dir/junit.xml'")
	assert.Contains(t, cmd, "--max-retries 3")
}
