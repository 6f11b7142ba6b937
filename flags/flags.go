// Package flags declares the command line surface. Every option can also be
// set through a QA_HARNESS_* environment variable, and every option has a
// default, so overriding any of them never requires a code change.
package flags

import (
	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "QA_HARNESS"

func envVar(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Suite = &cli.StringFlag{
		Name:    "suite",
		Value:   "all",
		Usage:   "subset of the suite to run: all, web, or api",
		EnvVars: envVar("SUITE"),
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Usage:   "path to an optional YAML config file",
		EnvVars: envVar("CONFIG"),
	}
	RunFilter = &cli.StringSliceFlag{
		Name:  "run",
		Usage: "regex pattern(s) to select tests to run",
	}
	SkipFilter = &cli.StringSliceFlag{
		Name:  "skip",
		Usage: "regex pattern(s) to select tests not to run",
	}
	Debug = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "enable debug logging for failed tests",
		EnvVars: envVar("DEBUG"),
	}
	DebugAll = &cli.BoolFlag{
		Name:    "debug-all",
		Usage:   "enable debug logging for all tests",
		EnvVars: envVar("DEBUG_ALL"),
	}
	JUnitFile = &cli.StringFlag{
		Name:    "junit",
		Usage:   "also write results to a JUnit XML file at this path",
		EnvVars: envVar("JUNIT"),
	}

	WebBaseURL = &cli.StringFlag{
		Name:    "web-base-url",
		Usage:   "base URL of the web site under test",
		EnvVars: envVar("WEB_BASE_URL"),
	}
	PostsAPIBaseURL = &cli.StringFlag{
		Name:    "posts-api-base-url",
		Usage:   "base URL of the posts API under test",
		EnvVars: envVar("POSTS_API_BASE_URL"),
	}
	UsersAPIBaseURL = &cli.StringFlag{
		Name:    "users-api-base-url",
		Usage:   "base URL of the users API under test",
		EnvVars: envVar("USERS_API_BASE_URL"),
	}

	ConnectTimeout = &cli.DurationFlag{
		Name:    "connect-timeout",
		Usage:   "TCP connect timeout for each request",
		EnvVars: envVar("CONNECT_TIMEOUT"),
	}
	ReadTimeout = &cli.DurationFlag{
		Name:    "read-timeout",
		Usage:   "overall per-request timeout",
		EnvVars: envVar("READ_TIMEOUT"),
	}
	MaxRetries = &cli.IntFlag{
		Name:    "max-retries",
		Usage:   "retries per request on transient failure",
		EnvVars: envVar("MAX_RETRIES"),
	}
	BaseDelay = &cli.DurationFlag{
		Name:    "base-delay",
		Usage:   "backoff delay before the first retry; doubles each retry",
		EnvVars: envVar("BASE_DELAY"),
	}
	RequestGap = &cli.DurationFlag{
		Name:    "request-gap",
		Usage:   "minimum delay between successive requests",
		EnvVars: envVar("REQUEST_GAP"),
	}
	MaxRequestsPerWindow = &cli.IntFlag{
		Name:    "max-requests-per-window",
		Usage:   "request budget per rolling window",
		EnvVars: envVar("MAX_REQUESTS_PER_WINDOW"),
	}
	RunTimeout = &cli.DurationFlag{
		Name:    "run-timeout",
		Usage:   "global timeout for the whole run",
		EnvVars: envVar("RUN_TIMEOUT"),
	}
)

var Flags = []cli.Flag{
	Suite,
	ConfigFile,
	RunFilter,
	SkipFilter,
	Debug,
	DebugAll,
	JUnitFile,
	WebBaseURL,
	PostsAPIBaseURL,
	UsersAPIBaseURL,
	ConnectTimeout,
	ReadTimeout,
	MaxRetries,
	BaseDelay,
	RequestGap,
	MaxRequestsPerWindow,
	RunTimeout,
}
