package memory

import (
	"encoding/json"
	"testing"

	"github.com/gabapcia/txharvest/internal/harvest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	t.Run("returns a miss for unknown keys", func(t *testing.T) {
		c := NewCache()
		var _ harvest.ResponseCache = c

		doc, err := c.Load(t.Context(), harvest.CacheKey{Address: "0xABC", Kind: harvest.KindNormal})
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, harvest.ErrCacheMiss)
	})

	t.Run("keeps each kind under its own key", func(t *testing.T) {
		c := NewCache()
		normalKey := harvest.CacheKey{Address: "0xABC", Kind: harvest.KindNormal}
		internalKey := harvest.CacheKey{Address: "0xABC", Kind: harvest.KindInternal}

		require.NoError(t, c.Store(t.Context(), normalKey, json.RawMessage(`{"result":[1]}`)))
		require.NoError(t, c.Store(t.Context(), internalKey, json.RawMessage(`{"result":[2]}`)))
		assert.Equal(t, 2, c.store.ItemCount())

		doc, err := c.Load(t.Context(), normalKey)
		require.NoError(t, err)
		assert.Equal(t, `{"result":[1]}`, string(doc))

		doc, err = c.Load(t.Context(), internalKey)
		require.NoError(t, err)
		assert.Equal(t, `{"result":[2]}`, string(doc))
	})

	t.Run("is not affected by changes to stored or loaded documents", func(t *testing.T) {
		c := NewCache()
		key := harvest.CacheKey{Address: "0xABC", Kind: harvest.KindNormal}

		doc := json.RawMessage(`{"result":[]}`)
		require.NoError(t, c.Store(t.Context(), key, doc))
		doc[0] = 'X'

		loaded, err := c.Load(t.Context(), key)
		require.NoError(t, err)
		loaded[1] = 'Y'

		again, err := c.Load(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, `{"result":[]}`, string(again))
	})
}
