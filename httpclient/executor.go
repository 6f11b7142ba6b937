package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qaworks/qa-automation-harness/framework"
)

// RetryPolicy bounds how the executor retries transient failures. The delay
// before retry n is BaseDelay * 2^(n-1), capped at MaxDelay when MaxDelay is
// nonzero.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// Backoff returns the delay scheduled after the given 1-based attempt number.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := p.BaseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	Status  int
	Headers http.Header
	Body    []byte
}

// TransientError is returned when every attempt at a request failed with a
// retryable condition (connection error, timeout, or HTTP 5xx).
type TransientError struct {
	Attempts   int
	LastStatus int // last 5xx status, or 0 if the last failure was a transport error
	Cause      error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("request failed after %d attempts: %s", e.Attempts, e.Cause)
	}
	return fmt.Sprintf("request failed after %d attempts: last response was HTTP %d", e.Attempts, e.LastStatus)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// execState models the executor's retry loop explicitly so the transitions
// are testable with a fake clock and transport.
type execState int

const (
	statePending execState = iota
	stateAttempting
	stateRetryScheduled
	stateSucceeded
	stateExhausted
)

// Executor performs one HTTP request at a time against a target endpoint,
// applying the configured retry policy and pacing. It holds no mutable state
// between calls other than the shared connection pool and pacer.
type Executor struct {
	client *http.Client
	policy RetryPolicy
	clock  Clock
	pacer  *Pacer
}

// NewExecutor wires an executor to a client (normally Pool.Client), a retry
// policy, a clock, and an optional pacer. The clock and the client's
// transport are injection points for tests.
func NewExecutor(client *http.Client, policy RetryPolicy, clock Clock, pacer *Pacer) *Executor {
	if clock == nil {
		clock = SystemClock()
	}
	return &Executor{
		client: client,
		policy: policy,
		clock:  clock,
		pacer:  pacer,
	}
}

func (e *Executor) Clock() Clock { return e.clock }

// Do issues the request, retrying transient failures per the policy. A
// well-formed 4xx or a 5xx on the final attempt is not an error here: any
// received response is a result for the validator to judge. Do returns a
// *TransientError only when all attempts were exhausted without a definitive
// response, or the context's error if the run deadline cut the request short.
func (e *Executor) Do(ctx context.Context, req Request, logger framework.Logger) (*Response, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}

	var (
		state    = statePending
		attempt  int
		lastResp *Response
		lastErr  error
	)
	for {
		switch state {
		case statePending:
			state = stateAttempting

		case stateAttempting:
			attempt++
			resp, err := e.attempt(ctx, req, logger)
			lastResp, lastErr = resp, err
			switch {
			case ctx.Err() != nil:
				return nil, ctx.Err()
			case err == nil && resp.Status < 500:
				state = stateSucceeded
			case attempt > e.policy.MaxRetries:
				state = stateExhausted
			default:
				state = stateRetryScheduled
			}

		case stateRetryScheduled:
			delay := e.policy.Backoff(attempt)
			if lastErr != nil {
				logger.Printf("Attempt %d failed (%s); retrying in %s", attempt, lastErr, delay)
			} else {
				logger.Printf("Attempt %d returned HTTP %d; retrying in %s", attempt, lastResp.Status, delay)
			}
			if err := e.clock.Sleep(ctx, delay); err != nil {
				return nil, err
			}
			state = stateAttempting

		case stateSucceeded:
			return lastResp, nil

		case stateExhausted:
			te := &TransientError{Attempts: attempt, Cause: lastErr}
			if lastErr == nil && lastResp != nil {
				te.LastStatus = lastResp.Status
			}
			return nil, te
		}
	}
}

func (e *Executor) attempt(ctx context.Context, req Request, logger framework.Logger) (*Response, error) {
	if e.pacer != nil {
		if err := e.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for name, values := range req.Headers {
		httpReq.Header[name] = values
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	logger.Printf("%s %s -> %d (%d bytes)", req.Method, req.URL, resp.StatusCode, len(data))
	return &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Body:    data,
	}, nil
}
