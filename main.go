package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/qaworks/qa-automation-harness/apitests"
	"github.com/qaworks/qa-automation-harness/exitcodes"
	"github.com/qaworks/qa-automation-harness/flags"
	"github.com/qaworks/qa-automation-harness/framework"
	"github.com/qaworks/qa-automation-harness/httpclient"
	"github.com/qaworks/qa-automation-harness/suite"
	"github.com/qaworks/qa-automation-harness/webtests"
)

func main() {
	app := &cli.App{
		Name:   "qa-harness",
		Usage:  "runs the web and API QA test suites and reports pass/fail results",
		Flags:  flags.Flags,
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcodes.RuntimeErr)
	}
}

func run(c *cli.Context) error {
	params, err := readParams(c)
	if err != nil {
		return cli.Exit(err.Error(), exitcodes.RuntimeErr)
	}

	runID := uuid.NewString()
	fmt.Printf("Starting run %s\n", runID)
	fmt.Printf("Equivalent command line: %s\n\n", params.describeCommand())
	framework.PrintFilterDescription(os.Stdout, params.filters)

	cfg := params.cfg
	pool := httpclient.NewPool(cfg.HTTP.ConnectTimeout, cfg.HTTP.ReadTimeout)
	defer pool.Close()

	clock := httpclient.SystemClock()
	pacer := httpclient.NewPacer(clock, cfg.HTTP.RequestGap, cfg.HTTP.MaxRequestsPerWindow, cfg.HTTP.Window)
	exec := httpclient.NewExecutor(pool.Client(), httpclient.RetryPolicy{
		MaxRetries: cfg.HTTP.MaxRetries,
		BaseDelay:  cfg.HTTP.BaseDelay,
		MaxDelay:   cfg.HTTP.MaxDelay,
	}, clock, pacer)

	cases := params.selectCases(append(webtests.Cases(), apitests.Cases()...))

	fmt.Println("Running test suite")
	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		Dest:                 os.Stdout,
	}

	ctx := context.Background()
	results := suite.Run(ctx, cases, suite.Options{
		RunID:      runID,
		Filter:     params.filters.AsFilter,
		TestLogger: testLogger,
		Timeout:    cfg.Run.Timeout,
		Exec:       exec,
		Config:     &cfg,
	})

	fmt.Println()
	framework.NewSuiteReport(results).Print(os.Stdout, results)

	if params.junitPath != "" {
		if err := framework.WriteJUnitFile(params.junitPath, results); err != nil {
			return cli.Exit(fmt.Sprintf("writing JUnit file: %s", err), exitcodes.RuntimeErr)
		}
	}

	if timedOut(results) {
		return cli.Exit("run timeout exceeded before all cases could execute", exitcodes.RuntimeErr)
	}
	if !results.OK() {
		return cli.Exit("", exitcodes.TestFailure)
	}
	return nil
}

// timedOut reports whether any case was skipped by the run-level deadline
// rather than by a filter.
func timedOut(results framework.Results) bool {
	for _, r := range results.Tests {
		if r.Outcome == framework.OutcomeSkipped && r.SkipReason == framework.SkipReasonRunTimeout {
			return true
		}
	}
	return false
}
