package harvest

import (
	"context"
	"fmt"

	"github.com/gabapcia/txharvest/internal/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Report summarizes one harvest run.
type Report struct {
	RunID   string // unique identifier of the run, also attached to every log entry
	Wallets int    // wallets written to the dataset
	Cached  int    // transaction lists read from the cache
	Fetched int    // transaction lists fetched upstream and cached
	Failed  int    // transaction lists left empty because the fetch failed
}

// add accounts for the fetch results of one wallet.
func (r *Report) add(results []FetchResult) {
	r.Wallets++
	for _, result := range results {
		switch result.Status {
		case FetchStatusCached:
			r.Cached++
		case FetchStatusFetched:
			r.Fetched++
		case FetchStatusFailed:
			r.Failed++
		}
	}
}

// Run loads the wallet list, collects every wallet in order and writes the dataset.
//
// Repeated addresses are collected once, at their first position. Each wallet gets
// exactly one dataset entry whatever the outcome of its fetches. The dataset is
// written only after the last wallet; a run stopped early writes nothing, while
// the cache entries created so far remain available to the next run.
func (s *service) Run(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.Must(uuid.NewV7()).String()}

	ctx, span := tracer.Start(ctx, "harvest.Run",
		trace.WithAttributes(attribute.String("run.id", report.RunID)),
	)
	defer span.End()

	ctx = logger.Derive(ctx, "run.id", report.RunID)

	addresses, err := s.wallets.LoadWallets(ctx)
	if err != nil {
		span.RecordError(err)
		return report, fmt.Errorf("loading wallets: %w", err)
	}

	addresses = uniqueWallets(ctx, addresses)
	logger.Info(ctx, "starting harvest", "wallets.total", len(addresses))

	dataset := NewDataset()
	for i, address := range addresses {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		walletCtx := logger.Derive(ctx, "wallet.address", address)
		logger.Info(walletCtx, "processing wallet", "wallet.position", i+1, "wallets.total", len(addresses))
		warnOnUnusualAddress(walletCtx, address)

		txs, results, err := s.collect(walletCtx, address)
		if err != nil {
			span.RecordError(err)
			return report, err
		}

		dataset.Set(address, txs)
		report.add(results)
		s.instruments.recordWallet(ctx)
	}

	if err := s.writer.WriteDataset(ctx, dataset); err != nil {
		span.RecordError(err)
		return report, fmt.Errorf("writing dataset: %w", err)
	}

	logger.Info(ctx, "harvest finished",
		"wallets", report.Wallets,
		"lists.cached", report.Cached,
		"lists.fetched", report.Fetched,
		"lists.failed", report.Failed,
	)

	return report, nil
}
