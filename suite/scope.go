package suite

import (
	"errors"
	"time"

	"github.com/qaworks/qa-automation-harness/config"
	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/framework"
	"github.com/qaworks/qa-automation-harness/httpclient"
)

// T represents a test or subtest while it is running.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as per-test debug log capture. To make test assertions you can use the
// assert and require packages, passing the *T as if it were a *testing.T.
//
// T also carries the pieces every case needs: the shared request executor and
// the run configuration.
type T struct {
	context *framework.Context
	exec    *httpclient.Executor
	cfg     *config.Config
}

func (t *T) Config() *config.Config { return t.cfg }

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Skip() {
	t.context.Skip()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Run runs a subtest, equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, exec: t.exec, cfg: t.cfg})
	})
}

// Debug logs some debug output for the test. The output is passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// DoRequest executes one HTTP request through the shared executor. A
// transient failure (retries exhausted, run deadline hit) classifies the case
// as errored and exits it immediately; any definitive response, including 4xx,
// is returned for the case to judge.
func (t *T) DoRequest(req httpclient.Request) *httpclient.Response {
	resp, err := t.exec.Do(t.context.Context(), req, t.DebugLogger())
	if err != nil {
		t.context.ExecutionError(err)
		t.context.FailNow()
	}
	return resp
}

// DoRequestAllowingTransient is like DoRequest, but hands an exhausted-retries
// failure back to the case instead of terminating it. It exists for cases
// whose expected outcome is a persistent 5xx, where the executor's retry
// policy runs out by design. A run-deadline error still terminates the case.
func (t *T) DoRequestAllowingTransient(req httpclient.Request) (*httpclient.Response, error) {
	resp, err := t.exec.Do(t.context.Context(), req, t.DebugLogger())
	if err != nil {
		var te *httpclient.TransientError
		if !errors.As(err, &te) {
			t.context.ExecutionError(err)
			t.context.FailNow()
		}
	}
	return resp, err
}

// RequireTransientStatus asserts that an exhausted-retries failure ended on
// the given HTTP status, failing the case otherwise.
func (t *T) RequireTransientStatus(err error, status int) {
	var te *httpclient.TransientError
	if !errors.As(err, &te) {
		t.context.ExecutionError(err)
		t.context.FailNow()
	}
	if te.LastStatus != status {
		t.Errorf("expected retries to end on HTTP %d, got: %s", status, te)
		t.FailNow()
	}
}

// RequireResponse validates the response against the expectation and fails
// the case immediately on a status or schema mismatch.
func (t *T) RequireResponse(resp *httpclient.Response, exp expect.Response) {
	if err := exp.Validate(resp.Status, resp.Body); err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
}

// Sleep pauses the case, honoring the run-level deadline.
func (t *T) Sleep(d time.Duration) {
	if err := t.exec.Clock().Sleep(t.context.Context(), d); err != nil {
		t.context.ExecutionError(err)
		t.context.FailNow()
	}
}
