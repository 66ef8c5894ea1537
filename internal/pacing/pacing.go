// Package pacing spaces calls to rate-limited external services.
//
// A Gate admits one call per interval. Time comes from a Clock so tests can
// drive the gate with a virtual clock instead of sleeping.
package pacing

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Clock supplies the current time and blocks for a duration.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d or until ctx is done.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
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

// Gate enforces a minimum spacing between calls. The first call is not delayed.
type Gate struct {
	name     string
	interval time.Duration
	clock    Clock
	limiter  *rate.Limiter
	mu       sync.Mutex
}

// NewGate returns a gate admitting one call per interval. A nil clock uses
// the wall clock; a non-positive interval never waits.
func NewGate(name string, interval time.Duration, clock Clock) *Gate {
	if clock == nil {
		clock = SystemClock{}
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Gate{
		name:     name,
		interval: interval,
		clock:    clock,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Name identifies the gated service in logs.
func (g *Gate) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

// Interval returns the configured spacing.
func (g *Gate) Interval() time.Duration {
	if g == nil {
		return 0
	}
	return g.interval
}

// Wait blocks until the next call may proceed and returns how long it waited.
// Callers are serialized so concurrent users still observe the spacing.
func (g *Gate) Wait(ctx context.Context) (time.Duration, error) {
	if g == nil {
		return 0, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	reservation := g.limiter.ReserveN(now, 1)
	delay := reservation.DelayFrom(now)
	if delay <= 0 {
		return 0, nil
	}
	if err := g.clock.Sleep(ctx, delay); err != nil {
		reservation.CancelAt(g.clock.Now())
		return 0, err
	}
	return delay, nil
}
