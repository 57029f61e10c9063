// Package throttle provides pause policies applied between upstream calls
// to stay under a block explorer's rate limit.
package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle blocks until the next upstream call may proceed or ctx is done.
type Throttle interface {
	Wait(ctx context.Context) error
}

// nop never waits.
type nop struct{}

// Nop returns a Throttle that never waits.
func Nop() Throttle {
	return nop{}
}

func (nop) Wait(ctx context.Context) error {
	return ctx.Err()
}

// fixedDelay sleeps for the same duration on every call.
type fixedDelay struct {
	delay time.Duration
}

// FixedDelay returns a Throttle that pauses for d on every call.
// A zero or negative d behaves like Nop.
func FixedDelay(d time.Duration) Throttle {
	if d <= 0 {
		return nop{}
	}

	return fixedDelay{delay: d}
}

func (f fixedDelay) Wait(ctx context.Context) error {
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// rateLimited is a token bucket refilled once per interval.
type rateLimited struct {
	limiter *rate.Limiter
}

// RateLimited returns a Throttle allowing burst calls at once and then one
// call per interval. It only waits when calls come in faster than the limit.
func RateLimited(interval time.Duration, burst int) Throttle {
	if burst < 1 {
		burst = 1
	}

	return rateLimited{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

func (r rateLimited) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
