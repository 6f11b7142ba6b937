package httpclient

import (
	"context"
	"sync"
	"time"
)

// Pacer throttles outgoing requests: it enforces a minimum gap between
// successive requests and a maximum number of requests per rolling window.
// Both limits are optional (zero disables them).
type Pacer struct {
	clock        Clock
	gap          time.Duration
	maxPerWindow int
	window       time.Duration

	lock     sync.Mutex
	lastSent time.Time
	sent     []time.Time
}

func NewPacer(clock Clock, gap time.Duration, maxPerWindow int, window time.Duration) *Pacer {
	if clock == nil {
		clock = SystemClock()
	}
	return &Pacer{
		clock:        clock,
		gap:          gap,
		maxPerWindow: maxPerWindow,
		window:       window,
	}
}

// Wait blocks until the next request is allowed to go out, then records it.
func (p *Pacer) Wait(ctx context.Context) error {
	p.lock.Lock()
	now := p.clock.Now()
	delay := p.delayLocked(now)
	p.lock.Unlock()

	if delay > 0 {
		if err := p.clock.Sleep(ctx, delay); err != nil {
			return err
		}
	}

	p.lock.Lock()
	now = p.clock.Now()
	p.lastSent = now
	if p.maxPerWindow > 0 {
		p.sent = append(p.prunedLocked(now), now)
	}
	p.lock.Unlock()
	return nil
}

func (p *Pacer) delayLocked(now time.Time) time.Duration {
	var delay time.Duration
	if p.gap > 0 && !p.lastSent.IsZero() {
		if gapWait := p.gap - now.Sub(p.lastSent); gapWait > delay {
			delay = gapWait
		}
	}
	if p.maxPerWindow > 0 && p.window > 0 {
		recent := p.prunedLocked(now)
		if len(recent) >= p.maxPerWindow {
			// wait until the oldest request in the window ages out
			if windowWait := p.window - now.Sub(recent[len(recent)-p.maxPerWindow]); windowWait > delay {
				delay = windowWait
			}
		}
	}
	return delay
}

func (p *Pacer) prunedLocked(now time.Time) []time.Time {
	cutoff := now.Add(-p.window)
	i := 0
	for i < len(p.sent) && !p.sent[i].After(cutoff) {
		i++
	}
	p.sent = p.sent[i:]
	return p.sent
}
