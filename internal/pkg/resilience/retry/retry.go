// Package retry runs operations with exponential backoff on top of avast/retry-go.
//
// txharvest itself never retries explorer calls; this package guards startup
// steps, such as connecting to the cache backend, that may briefly fail while
// a dependency is still coming up.
//
//	r := retry.New(retry.WithAttempts(5))
//	err := r.Execute(ctx, func() error {
//	    return conn.Ping(ctx).Err()
//	})
package retry

import (
	"context"
	"time"

	"github.com/gabapcia/txharvest/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, attempts run out or ctx is done.
type Retry interface {
	// Execute runs operation, retrying on error with exponential backoff.
	//
	// It returns nil as soon as one attempt succeeds. Otherwise it returns the
	// last error (or every error, see WithLastErrorOnly), or the context error
	// if ctx is canceled while waiting.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint          // maximum number of attempts, the first one included
	delay       time.Duration // base delay between attempts
	maxDelay    time.Duration // cap of the exponential delay
	lastErrOnly bool          // whether to return only the last error
	name        string        // operation name used in retry logs
}

// Option configures a Retry created by New.
type Option func(*config)

// retrier implements Retry using retry-go.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry with the given options applied over these defaults:
//
//   - attempts:    3
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		name:        "operation",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry. Every failed attempt that will be retried is logged at warn level.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
		retry.OnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "attempt failed, retrying",
				"retry.operation", r.cfg.name,
				"retry.attempt", attempt+1,
				"error", err,
			)
		}),
	)
}

// WithAttempts sets the maximum number of attempts, the first one included.
// Default: 3.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
// Default: 1 second.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential delay between attempts.
// Default: 5 seconds.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly sets whether only the error of the final attempt is returned
// instead of the errors of every attempt.
// Default: true.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithName sets the operation name reported in retry logs.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
