// Package harvest collects the transaction history of a list of wallets from a
// block explorer, reading through a response cache, and aggregates everything
// into a single dataset.
package harvest

import (
	"context"

	"github.com/gabapcia/txharvest/internal/pkg/throttle"
)

// Service runs a harvest over the configured wallet source.
type Service interface {
	// Run processes every wallet sequentially, in input order, and writes the
	// aggregated dataset once all of them were collected.
	//
	// Upstream failures never abort a run: they are logged and the affected
	// transaction list is left empty. Run returns an error only when the wallet
	// list cannot be loaded, a cache entry is unusable, the context is canceled,
	// or the dataset cannot be written.
	Run(ctx context.Context) (Report, error)
}

// config holds optional collaborators of the service.
type config struct {
	throttle throttle.Throttle
}

// Option configures optional collaborators of the service.
type Option func(*config)

// WithThrottle sets the pause policy applied after every successful upstream fetch.
//
// Default: throttle.Nop.
func WithThrottle(t throttle.Throttle) Option {
	return func(c *config) {
		c.throttle = t
	}
}

// service is the default implementation of Service.
type service struct {
	wallets  WalletSource
	fetcher  TransactionFetcher
	cache    ResponseCache
	writer   DatasetWriter
	throttle throttle.Throttle

	instruments instruments
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates a harvest service wired to the given collaborators.
func New(ws WalletSource, tf TransactionFetcher, rc ResponseCache, dw DatasetWriter, opts ...Option) *service {
	cfg := config{
		throttle: throttle.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		wallets:     ws,
		fetcher:     tf,
		cache:       rc,
		writer:      dw,
		throttle:    cfg.throttle,
		instruments: newInstruments(),
	}
}
