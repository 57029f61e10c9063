package harvest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset(t *testing.T) {
	t.Run("serializes addresses in insertion order", func(t *testing.T) {
		d := NewDataset()
		d.Set("0xC", newWalletTransactions())
		d.Set("0xA", newWalletTransactions())
		d.Set("0xB", newWalletTransactions())

		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t,
			`{"0xC":{"normal":[],"internal":[]},"0xA":{"normal":[],"internal":[]},"0xB":{"normal":[],"internal":[]}}`,
			string(data),
		)
		assert.Equal(t, 3, d.Len())
	})

	t.Run("replaces an entry without moving it", func(t *testing.T) {
		d := NewDataset()
		d.Set("0xA", newWalletTransactions())
		d.Set("0xB", newWalletTransactions())

		txs := newWalletTransactions()
		txs.set(KindNormal, []TransactionRecord{json.RawMessage(`{"hash":"0x1"}`)})
		d.Set("0xA", txs)

		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t,
			`{"0xA":{"normal":[{"hash":"0x1"}],"internal":[]},"0xB":{"normal":[],"internal":[]}}`,
			string(data),
		)
		assert.Equal(t, 2, d.Len())
	})

	t.Run("serializes an empty dataset as an empty object", func(t *testing.T) {
		data, err := json.Marshal(NewDataset())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
	})

	t.Run("escapes addresses as JSON strings", func(t *testing.T) {
		d := NewDataset()
		d.Set(`0x"A`, newWalletTransactions())

		data, err := json.Marshal(d)
		require.NoError(t, err)

		var decoded map[string]WalletTransactions
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, `0x"A`)
	})
}

func TestUniqueWallets(t *testing.T) {
	t.Run("keeps the first occurrence of each address", func(t *testing.T) {
		got := uniqueWallets(context.Background(), []string{"0xB", "0xA", "0xB", "0xC", "0xA"})
		assert.Equal(t, []string{"0xB", "0xA", "0xC"}, got)
	})

	t.Run("treats addresses as case sensitive", func(t *testing.T) {
		got := uniqueWallets(context.Background(), []string{"0xabc", "0xABC"})
		assert.Equal(t, []string{"0xabc", "0xABC"}, got)
	})

	t.Run("returns an empty list for no input", func(t *testing.T) {
		got := uniqueWallets(context.Background(), nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestReport_add(t *testing.T) {
	t.Run("counts results by status", func(t *testing.T) {
		var r Report
		r.add([]FetchResult{
			{Kind: KindNormal, Status: FetchStatusCached},
			{Kind: KindInternal, Status: FetchStatusFailed},
		})
		r.add([]FetchResult{
			{Kind: KindNormal, Status: FetchStatusFetched},
			{Kind: KindInternal, Status: FetchStatusFetched},
		})

		assert.Equal(t, Report{Wallets: 2, Cached: 1, Fetched: 2, Failed: 1}, r)
	})
}
