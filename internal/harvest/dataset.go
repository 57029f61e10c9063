package harvest

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DatasetWriter persists the aggregated dataset once a run has processed every wallet.
type DatasetWriter interface {
	// WriteDataset serializes the full dataset to its destination.
	//
	// It is called exactly once per successful run, after all wallets were collected.
	WriteDataset(ctx context.Context, dataset *Dataset) error
}

// Dataset maps each wallet address to the transactions collected for it.
//
// Addresses keep the order in which they were first added, so the serialized
// document follows the order of the input list.
type Dataset struct {
	wallets *orderedmap.OrderedMap[string, WalletTransactions]
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{
		wallets: orderedmap.New[string, WalletTransactions](),
	}
}

// Set stores the transactions of a wallet. Replacing an existing address keeps its position.
func (d *Dataset) Set(address string, txs WalletTransactions) {
	d.wallets.Set(address, txs)
}

// Len returns the number of wallets in the dataset.
func (d *Dataset) Len() int {
	return d.wallets.Len()
}

// MarshalJSON encodes the dataset as a JSON object keyed by address, in insertion order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	return d.wallets.MarshalJSON()
}
