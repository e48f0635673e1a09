package keyindex_test

import (
	"testing"

	"github.com/katalvlaran/lvtable/keyindex"
	"github.com/stretchr/testify/require"
)

// TestAddAndLookup covers ordered insertion and both lookup directions.
func TestAddAndLookup(t *testing.T) {
	ix := keyindex.New().Add("a").Add("b").Add("c")
	require.Equal(t, 3, ix.Len())
	require.Equal(t, []string{"a", "b", "c"}, ix.Keys())

	pos, err := ix.Position("b")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	key, err := ix.Key(2)
	require.NoError(t, err)
	require.Equal(t, "c", key)

	require.True(t, ix.Has("a"))
	require.False(t, ix.Has("z"))
}

// TestErrors checks sentinel errors for unknown names and bad positions.
func TestErrors(t *testing.T) {
	ix := keyindex.New().Add("a")

	_, err := ix.Position("missing")
	require.ErrorIs(t, err, keyindex.ErrKeyNotFound)

	for _, pos := range []int{-1, 1, 5} {
		_, err = ix.Key(pos)
		require.ErrorIs(t, err, keyindex.ErrOutOfRange, "pos=%d", pos)
	}
}

// TestDuplicateKeysLastWins verifies name lookup resolves to the latest duplicate.
func TestDuplicateKeysLastWins(t *testing.T) {
	ix := keyindex.New().Add("x").Add("y").Add("x")
	pos, ok := ix.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 2, pos)

	key, err := ix.Key(0)
	require.NoError(t, err)
	require.Equal(t, "x", key) // still visible positionally
	require.Equal(t, 3, ix.Len())
}

// TestEffectiveKey never fails and reports implicit positions as absent.
func TestEffectiveKey(t *testing.T) {
	ix := keyindex.New().Add("a")
	key, ok := ix.EffectiveKey(0)
	require.True(t, ok)
	require.Equal(t, "a", key)

	for _, pos := range []int{-1, 1, 100} {
		_, ok = ix.EffectiveKey(pos)
		require.False(t, ok)
	}
}

// TestEffectiveLen tracks positional writes independently of declared names.
func TestEffectiveLen(t *testing.T) {
	ix := keyindex.New()
	require.Equal(t, 0, ix.EffectiveLen())

	ix.NotifyPositionalWrite(2)
	require.Equal(t, 3, ix.EffectiveLen())
	require.Equal(t, 0, ix.Len())

	ix.NotifyPositionalWrite(0) // never shrinks
	require.Equal(t, 3, ix.EffectiveLen())

	ix.Add("a").Add("b").Add("c").Add("d")
	require.Equal(t, 4, ix.EffectiveLen()) // declared names count too

	ix.NotifyPositionalWrite(-5)
	require.Equal(t, 4, ix.EffectiveLen())
}

// TestCloneAndEqual checks copies are independent and equality is by names.
func TestCloneAndEqual(t *testing.T) {
	ix := keyindex.New().Add("a").Add("b")
	clone := ix.Clone()
	require.True(t, ix.Equal(clone))

	clone.Add("c")
	require.False(t, ix.Equal(clone))
	require.False(t, ix.Has("c"))

	other := keyindex.New().Add("a").Add("b")
	other.NotifyPositionalWrite(9)
	require.True(t, ix.Equal(other))

	var nilIx *keyindex.Index
	require.False(t, ix.Equal(nilIx))
}

// TestKeysReturnsCopy ensures callers cannot mutate internal order.
func TestKeysReturnsCopy(t *testing.T) {
	ix := keyindex.New().Add("a")
	keys := ix.Keys()
	keys[0] = "changed"
	key, _ := ix.Key(0)
	require.Equal(t, "a", key)
	require.Equal(t, `keyindex["a"]`, ix.String())
}
