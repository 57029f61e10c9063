package harvest

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instrumentationName is the scope name of the spans and metrics emitted by this package.
const instrumentationName = "github.com/gabapcia/txharvest/internal/harvest"

// tracer emits harvest spans through the globally registered TracerProvider.
var tracer = otel.Tracer(instrumentationName)

// instruments groups the metric instruments updated during a run.
type instruments struct {
	fetchResults metric.Int64Counter
	wallets      metric.Int64Counter
}

// newInstruments creates the harvest metric instruments on the global MeterProvider.
// If an instrument cannot be created, a no-op one is used instead.
func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	fetchResults, err := meter.Int64Counter("txharvest.fetch.results",
		metric.WithDescription("Cached fetches by transaction kind and outcome"),
	)
	if err != nil {
		fetchResults, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("txharvest.fetch.results")
	}

	wallets, err := meter.Int64Counter("txharvest.wallets.processed",
		metric.WithDescription("Wallets collected into the dataset"),
	)
	if err != nil {
		wallets, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("txharvest.wallets.processed")
	}

	return instruments{
		fetchResults: fetchResults,
		wallets:      wallets,
	}
}

// recordFetch counts one fetch outcome.
func (i instruments) recordFetch(ctx context.Context, result FetchResult) {
	i.fetchResults.Add(ctx, 1, metric.WithAttributes(
		attribute.String("transaction.kind", result.Kind.String()),
		attribute.String("fetch.status", string(result.Status)),
	))
}

// recordWallet counts one wallet added to the dataset.
func (i instruments) recordWallet(ctx context.Context) {
	i.wallets.Add(ctx, 1)
}
