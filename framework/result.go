package framework

import (
	"strings"
	"time"
)

// Outcome is the final classification of one test case in a run.
//
// A "failed" outcome means an assertion against the target system did not
// hold; an "errored" outcome means the harness could not complete the case at
// all (exhausted retries, unexpected panic). Reports keep the two apart so
// that a bug in the target system is distinguishable from an environment
// problem.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeErrored Outcome = "errored"
	OutcomeSkipped Outcome = "skipped"
)

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Suite returns the top-level group this test belongs to (such as "api" or
// "web"), or "" for the root.
func (t TestID) Suite() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[0]
}

// TestResult is created exactly once per test case per run and is never
// mutated afterwards.
type TestResult struct {
	TestID     TestID
	Outcome    Outcome
	Errors     []error
	SkipReason string
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r TestResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Results accumulates TestResults in the order they were produced. It is
// purely additive: a recorded result can never be removed.
type Results struct {
	RunID string
	Tests []TestResult
}

func (r *Results) record(result TestResult) {
	r.Tests = append(r.Tests, result)
}

// OK reports whether every recorded case either passed or was skipped.
func (r Results) OK() bool {
	for _, t := range r.Tests {
		if t.Outcome == OutcomeFailed || t.Outcome == OutcomeErrored {
			return false
		}
	}
	return true
}

// Failures returns the results that failed or errored, in recording order.
func (r Results) Failures() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if t.Outcome == OutcomeFailed || t.Outcome == OutcomeErrored {
			ret = append(ret, t)
		}
	}
	return ret
}
