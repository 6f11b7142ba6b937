package httpclient

import (
	"context"
	"time"
)

// Clock abstracts time so that backoff and pacing behavior can be verified in
// tests without real delays.
type Clock interface {
	Now() time.Time
	// Sleep blocks for the given duration or until ctx is done, in which case
	// it returns the context's error.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
