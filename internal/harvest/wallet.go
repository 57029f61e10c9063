package harvest

import (
	"context"

	"github.com/gabapcia/txharvest/internal/pkg/logger"
	"github.com/gabapcia/txharvest/internal/pkg/types"
	"github.com/gabapcia/txharvest/internal/pkg/validator"
)

// WalletSource provides the list of wallet addresses to harvest.
type WalletSource interface {
	// LoadWallets returns every wallet address in input order.
	//
	// Addresses are returned verbatim; the harvester uses them unchanged as
	// cache keys, query parameters and output keys.
	LoadWallets(ctx context.Context) ([]string, error)
}

// uniqueWallets drops repeated addresses while keeping the first occurrence of each,
// so a wallet listed twice is fetched once and appears once in the dataset.
func uniqueWallets(ctx context.Context, addresses []string) []string {
	var (
		seen   = types.NewSet[string]()
		unique = make([]string, 0, len(addresses))
	)

	for _, address := range addresses {
		if seen.Has(address) {
			logger.Warn(ctx, "skipping duplicated wallet address", "wallet.address", address)
			continue
		}

		seen.Add(address)
		unique = append(unique, address)
	}

	return unique
}

// warnOnUnusualAddress logs addresses that do not look like EVM addresses.
// They are still harvested: the explorer decides whether they are valid.
func warnOnUnusualAddress(ctx context.Context, address string) {
	if err := validator.Var(address, "eth_addr"); err != nil {
		logger.Warn(ctx, "wallet address does not look like an EVM address", "wallet.address", address)
	}
}
