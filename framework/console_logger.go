package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	erroredColor = color.New(color.FgMagenta, color.Bold)
	skippedColor = color.New(color.FgYellow)
)

// ConsoleTestLogger streams test progress to a writer as the suite runs.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	Dest                 io.Writer
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.Dest, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Dest, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	failed := outcome == OutcomeFailed || outcome == OutcomeErrored
	switch outcome {
	case OutcomeFailed:
		fmt.Fprintf(c.Dest, "  %s: %s\n", failedColor.Sprint("FAILED"), id)
	case OutcomeErrored:
		fmt.Fprintf(c.Dest, "  %s: %s\n", erroredColor.Sprint("ERRORED"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Dest, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Dest, "  %s: %s\n", skippedColor.Sprint("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.Dest, "  %s: %s (%s)\n", skippedColor.Sprint("SKIPPED"), id, reason)
	}
}
