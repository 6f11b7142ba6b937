package main

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/urfave/cli/v2"

	"github.com/qaworks/qa-automation-harness/config"
	"github.com/qaworks/qa-automation-harness/flags"
	"github.com/qaworks/qa-automation-harness/framework"
	"github.com/qaworks/qa-automation-harness/suite"
)

type commandParams struct {
	subset    string
	filters   framework.RegexFilters
	debug     bool
	debugAll  bool
	junitPath string
	cfg       config.Config
}

func readParams(c *cli.Context) (commandParams, error) {
	p := commandParams{
		subset:    c.String(flags.Suite.Name),
		debug:     c.Bool(flags.Debug.Name),
		debugAll:  c.Bool(flags.DebugAll.Name),
		junitPath: c.String(flags.JUnitFile.Name),
	}
	switch p.subset {
	case "all", "web", "api":
	default:
		return p, &config.ConfigError{Field: "suite", Reason: "must be all, web, or api"}
	}

	for _, pattern := range c.StringSlice(flags.RunFilter.Name) {
		if err := p.filters.MustMatch.Set(pattern); err != nil {
			return p, &config.ConfigError{Field: "run", Reason: err.Error()}
		}
	}
	for _, pattern := range c.StringSlice(flags.SkipFilter.Name) {
		if err := p.filters.MustNotMatch.Set(pattern); err != nil {
			return p, &config.ConfigError{Field: "skip", Reason: err.Error()}
		}
	}

	cfg, err := config.Load(c.String(flags.ConfigFile.Name))
	if err != nil {
		return p, err
	}
	applyOverrides(&cfg, c)
	if err := cfg.Validate(); err != nil {
		return p, err
	}
	p.cfg = cfg
	return p, nil
}

func applyOverrides(cfg *config.Config, c *cli.Context) {
	if c.IsSet(flags.WebBaseURL.Name) {
		cfg.Web.BaseURL = c.String(flags.WebBaseURL.Name)
	}
	if c.IsSet(flags.PostsAPIBaseURL.Name) {
		cfg.PostsAPI.BaseURL = c.String(flags.PostsAPIBaseURL.Name)
	}
	if c.IsSet(flags.UsersAPIBaseURL.Name) {
		cfg.UsersAPI.BaseURL = c.String(flags.UsersAPIBaseURL.Name)
	}
	if c.IsSet(flags.ConnectTimeout.Name) {
		cfg.HTTP.ConnectTimeout = c.Duration(flags.ConnectTimeout.Name)
	}
	if c.IsSet(flags.ReadTimeout.Name) {
		cfg.HTTP.ReadTimeout = c.Duration(flags.ReadTimeout.Name)
	}
	if c.IsSet(flags.MaxRetries.Name) {
		cfg.HTTP.MaxRetries = c.Int(flags.MaxRetries.Name)
	}
	if c.IsSet(flags.BaseDelay.Name) {
		cfg.HTTP.BaseDelay = c.Duration(flags.BaseDelay.Name)
	}
	if c.IsSet(flags.RequestGap.Name) {
		cfg.HTTP.RequestGap = c.Duration(flags.RequestGap.Name)
	}
	if c.IsSet(flags.MaxRequestsPerWindow.Name) {
		cfg.HTTP.MaxRequestsPerWindow = c.Int(flags.MaxRequestsPerWindow.Name)
	}
	if c.IsSet(flags.RunTimeout.Name) {
		cfg.Run.Timeout = c.Duration(flags.RunTimeout.Name)
	}
}

func (p commandParams) selectCases(all []suite.Case) []suite.Case {
	switch p.subset {
	case "web":
		return suite.Subset(all, suite.CategoryWeb)
	case "api":
		return suite.Subset(all, suite.CategoryAPI)
	}
	return all
}

// describeCommand reconstructs a shell-escaped command line equivalent to the
// resolved parameters, so a run can be reproduced from its log output alone.
func (p commandParams) describeCommand() string {
	var b commandBuilder
	b.add("qa-harness", "--suite", p.subset)
	for _, pattern := range p.filters.MustMatch.Patterns() {
		b.add("--run", pattern)
	}
	for _, pattern := range p.filters.MustNotMatch.Patterns() {
		b.add("--skip", pattern)
	}
	if p.debugAll {
		b.add("--debug-all")
	} else if p.debug {
		b.add("--debug")
	}
	if p.junitPath != "" {
		b.add("--junit", p.junitPath)
	}
	b.add("--run-timeout", p.cfg.Run.Timeout.String())
	b.add("--max-retries", fmt.Sprintf("%d", p.cfg.HTTP.MaxRetries))
	b.add("--base-delay", p.cfg.HTTP.BaseDelay.String())
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
