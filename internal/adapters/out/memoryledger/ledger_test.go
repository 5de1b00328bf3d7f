package memoryledger_test

import (
	"testing"

	"tradefinance/internal/adapters/out/memoryledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedger_GetPut(t *testing.T) {
	ctx := t.Context()
	ledger := memoryledger.NewMemoryLedger()

	t.Run("absent key is not an error", func(t *testing.T) {
		value, found, err := ledger.Get(ctx, "missing")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		require.NoError(t, ledger.Put(ctx, "order-1", []byte(`{"a":1}`)))

		value, found, err := ledger.Get(ctx, "order-1")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`{"a":1}`), value)
	})

	t.Run("put overwrites last-write-wins", func(t *testing.T) {
		require.NoError(t, ledger.Put(ctx, "order-1", []byte(`{"a":2}`)))

		value, _, err := ledger.Get(ctx, "order-1")

		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":2}`), value)
	})

	t.Run("stored value is isolated from caller mutation", func(t *testing.T) {
		buf := []byte("original")
		require.NoError(t, ledger.Put(ctx, "isolated", buf))
		buf[0] = 'X'

		value, _, err := ledger.Get(ctx, "isolated")

		require.NoError(t, err)
		assert.Equal(t, []byte("original"), value)
	})
}

func TestMemoryLedger_Range(t *testing.T) {
	ctx := t.Context()
	ledger := memoryledger.NewMemoryLedger()

	for _, key := range []string{"c", "a", "b", "e", "d"} {
		require.NoError(t, ledger.Put(ctx, key, []byte("v-"+key)))
	}

	collect := func(t *testing.T, start, end string) []string {
		t.Helper()
		it, err := ledger.Range(ctx, start, end)
		require.NoError(t, err)
		defer func() { require.NoError(t, it.Close()) }()

		var keys []string
		for it.Next() {
			keys = append(keys, it.Key())
			assert.Equal(t, []byte("v-"+it.Key()), it.Value())
		}
		require.NoError(t, it.Err())
		return keys
	}

	t.Run("full keyspace scan is ordered by key", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, collect(t, "", ""))
	})

	t.Run("bounded scan is start-inclusive end-exclusive", func(t *testing.T) {
		assert.Equal(t, []string{"b", "c"}, collect(t, "b", "d"))
	})

	t.Run("open start bound", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, collect(t, "", "c"))
	})

	t.Run("open end bound", func(t *testing.T) {
		assert.Equal(t, []string{"d", "e"}, collect(t, "d", ""))
	})

	t.Run("scan snapshot ignores later writes", func(t *testing.T) {
		it, err := ledger.Range(ctx, "", "")
		require.NoError(t, err)
		defer func() { require.NoError(t, it.Close()) }()

		require.NoError(t, ledger.Put(ctx, "zz", []byte("late")))

		var keys []string
		for it.Next() {
			keys = append(keys, it.Key())
		}
		assert.NotContains(t, keys, "zz")
	})
}
