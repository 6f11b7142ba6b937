// Package exitcodes defines the process exit codes used by the harness:
// Success (0) when every case passed, TestFailure (1) when at least one case
// failed or errored, and RuntimeErr (2) for configuration errors, panics, or
// a run-level timeout.
package exitcodes

const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
