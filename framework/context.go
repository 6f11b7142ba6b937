package framework

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

// SkipReasonRunTimeout marks cases that were never issued because the global
// run timeout fired first.
const SkipReasonRunTimeout = "run timeout exceeded"

type environment struct {
	ctx        context.Context
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents one test or subtest while it is executing. It fills the
// same role as Go's *testing.T, but outside of the Go test runner.
type Context struct {
	env         *environment
	id          TestID
	isRoot      bool
	debugLogger CapturingLogger
	startedAt   time.Time
	failed      bool
	errored     bool
	skipped     bool
	skipReason  string
	errors      []error
	children    int
}

// Run executes a tree of tests and returns the accumulated results. The
// provided context carries the run-level deadline: once it expires, no further
// cases are issued and every remaining case is recorded as skipped.
func Run(
	ctx context.Context,
	runID string,
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if ctx == nil {
		ctx = context.Background()
	}
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		ctx:        ctx,
		results:    Results{RunID: runID},
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env, isRoot: true, startedAt: time.Now()}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); ok {
				// normal unwinding from FailNow or Skip
				if !c.skipped && len(c.errors) == 0 {
					c.failed = true
					err := errors.New("test failed with no failure message")
					c.errors = append(c.errors, err)
					c.env.testLogger.TestError(c.id, err)
				}
			} else {
				c.errored = true
				err := fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				c.errors = append(c.errors, err)
				c.env.testLogger.TestError(c.id, err)
			}
		}
		c.finish()
	}()

	action(c)
}

func (c *Context) finish() {
	finishedAt := time.Now()

	if c.skipped {
		c.env.results.record(TestResult{
			TestID:     c.id,
			Outcome:    OutcomeSkipped,
			SkipReason: c.skipReason,
			StartedAt:  c.startedAt,
			FinishedAt: finishedAt,
		})
		c.env.testLogger.TestSkipped(c.id, c.skipReason)
		return
	}

	outcome := OutcomePassed
	switch {
	case c.errored:
		outcome = OutcomeErrored
	case c.failed:
		outcome = OutcomeFailed
	}

	// Container nodes that only group subtests do not produce their own
	// result; each case must map to exactly one result.
	if !c.isRoot && (c.children == 0 || outcome != OutcomePassed) {
		c.env.results.record(TestResult{
			TestID:     c.id,
			Outcome:    outcome,
			Errors:     c.errors,
			StartedAt:  c.startedAt,
			FinishedAt: finishedAt,
		})
	}
	if !c.isRoot {
		c.env.testLogger.TestFinished(c.id, outcome, c.debugLogger.Output())
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Context returns the run-level context, which expires when the global run
// timeout fires.
func (c *Context) Context() context.Context {
	return c.env.ctx
}

// Run executes a named subtest. If the run deadline has already expired, or a
// filter excludes the subtest, it is recorded as skipped without running.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}
	c.children++

	c.env.testLogger.TestStarted(id)

	now := time.Now()
	if err := c.env.ctx.Err(); err != nil {
		c.recordUnissued(id, now, SkipReasonRunTimeout)
		return
	}
	if c.env.filter != nil && !c.env.filter(id) {
		c.recordUnissued(id, now, "excluded by filter parameters")
		return
	}

	c1 := &Context{
		id:        id,
		env:       c.env,
		startedAt: now,
	}
	c1.run(action)
}

// RunGroup executes a named grouping node. Filters and the run deadline are
// not consulted for the group itself; they apply to the individual cases
// inside it, so every case still gets its own recorded result.
func (c *Context) RunGroup(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}
	c.children++
	c1 := &Context{
		id:        id,
		env:       c.env,
		startedAt: time.Now(),
	}
	c1.run(action)
}

func (c *Context) recordUnissued(id TestID, now time.Time, reason string) {
	c.env.results.record(TestResult{
		TestID:     id,
		Outcome:    OutcomeSkipped,
		SkipReason: reason,
		StartedAt:  now,
		FinishedAt: now,
	})
	c.env.testLogger.TestSkipped(id, reason)
}

// Errorf records an assertion failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// ExecutionError records an error that prevented the case from being judged
// at all, such as exhausted retries. The case is classified as errored rather
// than failed.
func (c *Context) ExecutionError(err error) {
	c.errored = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
