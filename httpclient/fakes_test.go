package httpclient

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// fakeClock advances instantly instead of sleeping, and records every
// requested sleep so backoff schedules can be asserted exactly.
type fakeClock struct {
	lock   sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func (c *fakeClock) recordedSleeps() []time.Duration {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// advance moves the clock without recording a sleep, simulating time passing
// between requests.
func (c *fakeClock) advance(d time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.now = c.now.Add(d)
}

// fakeTransport plays back a scripted sequence of responses and errors; after
// the script runs out it repeats the last step.
type fakeTransport struct {
	steps    []fakeStep
	requests []*http.Request
}

type fakeStep struct {
	status int
	body   string
	err    error
}

func (t *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.requests = append(t.requests, req)
	i := len(t.requests) - 1
	if i >= len(t.steps) {
		i = len(t.steps) - 1
	}
	step := t.steps[i]
	if step.err != nil {
		return nil, step.err
	}
	return &http.Response{
		StatusCode: step.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(step.body)),
		Request:    req,
	}, nil
}

func clientWith(t *fakeTransport) *http.Client {
	return &http.Client{Transport: t}
}
