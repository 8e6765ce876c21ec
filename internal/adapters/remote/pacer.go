package remote

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

type SleepFunc func(ctx context.Context, d time.Duration) bool

// Pacer serializes calls and enforces a fixed pause before each one. It is
// the rate-limit policy for providers that reject bursts of detail lookups:
// a caller waits for the previous call to finish, then for the interval,
// then runs. Waiting for the turn honors the caller's context.
type Pacer struct {
	turn     *semaphore.Weighted
	interval time.Duration
	sleep    SleepFunc
}

// NewPacer returns a Pacer; a nil sleep uses SleepCtx.
func NewPacer(interval time.Duration, sleep SleepFunc) *Pacer {
	if sleep == nil {
		sleep = SleepCtx
	}
	return &Pacer{turn: semaphore.NewWeighted(1), interval: interval, sleep: sleep}
}

// Do runs fn after the pause. It returns ctx.Err() without running fn if
// the context ends while queued or pausing.
func (p *Pacer) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := p.turn.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.turn.Release(1)
	if !p.sleep(ctx, p.interval) {
		return ctx.Err()
	}
	return fn(ctx)
}
