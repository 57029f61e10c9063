package harvest

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// collect fetches every transaction kind for one wallet and groups the records by kind.
//
// Kinds are fetched one after another in TransactionKinds order. The records are
// assembled as returned: no deduplication, sorting or filtering happens here.
//
// Parameters:
//   - ctx: context carrying the wallet-scoped logger and span.
//   - address: the wallet address, used verbatim.
//
// Returns:
//   - The wallet's transactions; failed kinds hold empty lists.
//   - One FetchResult per kind, in fetch order.
//   - An error only if a cache entry is unusable or the context was canceled.
func (s *service) collect(ctx context.Context, address string) (WalletTransactions, []FetchResult, error) {
	ctx, span := tracer.Start(ctx, "harvest.collect",
		trace.WithAttributes(attribute.String("wallet.address", address)),
	)
	defer span.End()

	var (
		txs     = newWalletTransactions()
		results = make([]FetchResult, 0, len(TransactionKinds))
	)

	for _, kind := range TransactionKinds {
		result, err := s.fetch(ctx, kind, address)
		if err != nil {
			span.RecordError(err)
			return WalletTransactions{}, nil, err
		}

		s.instruments.recordFetch(ctx, result)
		txs.set(kind, result.Records)
		results = append(results, result)
	}

	return txs, results, nil
}
