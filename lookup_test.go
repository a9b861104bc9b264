package stig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nestedTree() map[string]any {
	return map[string]any{
		"a": map[string]any{"b": "value"},
		"x": map[string]any{"y": "other"},
		"seq": []any{
			"zero",
			map[string]any{"deep": true},
		},
	}
}

func TestLookupAccessor_ResolveWalks(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	value, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	value, err = acc.Resolve([]Segment{Key("seq"), Index(1), Key("deep")})
	require.NoError(t, err)
	assert.Equal(t, true, value)
}

func TestLookupAccessor_ResolveEmptyIsRoot(t *testing.T) {
	t.Parallel()

	tree := nestedTree()
	acc := NewLookupAccessor(tree)

	value, err := acc.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, any(tree), value)
}

func TestLookupAccessor_ErrorKinds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		segs     []Segment
		expected error
	}{
		{
			name:     "missing mapping key",
			segs:     []Segment{Key("nope")},
			expected: ErrKeyMissing,
		},
		{
			name:     "index into mapping",
			segs:     []Segment{Index(0)},
			expected: ErrKeyMissing,
		},
		{
			name:     "sequence index out of range",
			segs:     []Segment{Key("seq"), Index(2)},
			expected: ErrIndexOutOfRange,
		},
		{
			name:     "negative sequence index",
			segs:     []Segment{Key("seq"), Index(-1)},
			expected: ErrIndexOutOfRange,
		},
		{
			name:     "key into sequence",
			segs:     []Segment{Key("seq"), Key("b")},
			expected: ErrNotIndexable,
		},
		{
			name:     "descend into scalar",
			segs:     []Segment{Key("a"), Key("b"), Key("c")},
			expected: ErrNotIndexable,
		},
		{
			name:     "descend into bool",
			segs:     []Segment{Key("seq"), Index(1), Key("deep"), Key("x")},
			expected: ErrNotIndexable,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			acc := NewLookupAccessor(nestedTree())

			_, err := acc.Resolve(testCase.segs)

			require.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestLookupAccessor_ErrorsAreDeterministic(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	_, err1 := acc.Resolve([]Segment{Key("a"), Key("nope")})
	_, err2 := acc.Resolve([]Segment{Key("a"), Key("nope")})

	require.Error(t, err1)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestLookupAccessor_ReflectFallback(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(map[string]any{
		"typedMap":   map[string]int{"n": 7},
		"typedSlice": []string{"a", "b"},
	})

	value, err := acc.Resolve([]Segment{Key("typedMap"), Key("n")})
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	value, err = acc.Resolve([]Segment{Key("typedSlice"), Index(1)})
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = acc.Resolve([]Segment{Key("typedMap"), Index(0)})
	require.ErrorIs(t, err, ErrKeyMissing)

	keys, err := acc.Keys([]Segment{Key("typedSlice")})
	require.NoError(t, err)
	assert.Equal(t, []Segment{Index(0), Index(1)}, keys)
}

func TestLookupAccessor_AnyKeyedMapping(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(map[any]any{
		0:   "by index",
		"0": "by key",
	})

	value, err := acc.Resolve([]Segment{Index(0)})
	require.NoError(t, err)
	assert.Equal(t, "by index", value)

	value, err = acc.Resolve([]Segment{Key("0")})
	require.NoError(t, err)
	assert.Equal(t, "by key", value)

	keys, err := acc.Keys(nil)
	require.NoError(t, err)
	assert.Equal(t, []Segment{Index(0), Key("0")}, keys)
}

func TestLookupAccessor_CachesResolvedNodes(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())
	segs := []Segment{Key("a"), Key("b")}

	fresh, err := walkTree(acc.root, segs)
	require.NoError(t, err)

	cached, err := acc.Resolve(segs)
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)

	require.Equal(t, 1, acc.cache.len())
	assert.True(t, acc.cache.contains(segmentsKey(segs)))

	again, err := acc.Resolve(segs)
	require.NoError(t, err)
	assert.Equal(t, cached, again)
	assert.Equal(t, 1, acc.cache.len())
}

func TestLookupAccessor_FailuresNotCached(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	_, err := acc.Resolve([]Segment{Key("nope")})

	require.ErrorIs(t, err, ErrKeyMissing)
	assert.Equal(t, 0, acc.cache.len())
}

func TestLookupAccessor_LRUEvictionRespectsMaxsize(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())
	require.NoError(t, acc.EnableCache(1))

	ab := []Segment{Key("a"), Key("b")}
	xy := []Segment{Key("x"), Key("y")}

	_, err := acc.Resolve(ab)
	require.NoError(t, err)
	require.True(t, acc.cache.contains(segmentsKey(ab)))

	_, err = acc.Resolve(xy)
	require.NoError(t, err)

	assert.Equal(t, 1, acc.cache.len())
	assert.False(t, acc.cache.contains(segmentsKey(ab)), "a/b should have been evicted")
	assert.True(t, acc.cache.contains(segmentsKey(xy)))
}

func TestLookupAccessor_CacheHitRefreshesRecency(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())
	require.NoError(t, acc.EnableCache(2))

	ab := []Segment{Key("a"), Key("b")}
	xy := []Segment{Key("x"), Key("y")}
	seq := []Segment{Key("seq"), Index(0)}

	_, err := acc.Resolve(ab)
	require.NoError(t, err)
	_, err = acc.Resolve(xy)
	require.NoError(t, err)

	// Hit a/b so x/y becomes the least recently used entry.
	_, err = acc.Resolve(ab)
	require.NoError(t, err)

	_, err = acc.Resolve(seq)
	require.NoError(t, err)

	assert.Equal(t, 2, acc.cache.len())
	assert.True(t, acc.cache.contains(segmentsKey(ab)))
	assert.False(t, acc.cache.contains(segmentsKey(xy)), "x/y should have been evicted")
	assert.True(t, acc.cache.contains(segmentsKey(seq)))
}

func TestLookupAccessor_CacheKeyIsKindSensitive(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(map[any]any{
		0:   "by index",
		"0": "by key",
	})

	byIndex, err := acc.Resolve([]Segment{Index(0)})
	require.NoError(t, err)
	byKey, err := acc.Resolve([]Segment{Key("0")})
	require.NoError(t, err)

	assert.NotEqual(t, byIndex, byKey)
	assert.Equal(t, 2, acc.cache.len(), "Index(0) and Key(\"0\") must occupy distinct cache entries")
}

func TestLookupAccessor_ClearCache(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	_, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)
	require.Equal(t, 1, acc.cache.len())

	acc.ClearCache()
	assert.Equal(t, 0, acc.cache.len())

	// Idempotent.
	acc.ClearCache()
	assert.Equal(t, 0, acc.cache.len())
}

func TestLookupAccessor_DisableCacheReadsEachTime(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	_, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)

	acc.DisableCache()
	require.Nil(t, acc.cache)

	value, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)
	assert.Equal(t, "value", value)

	// Idempotent.
	acc.DisableCache()
	assert.Nil(t, acc.cache)
}

func TestLookupAccessor_EnableCacheStartsEmpty(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	_, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)
	require.Equal(t, 1, acc.cache.len())

	require.NoError(t, acc.EnableCache(4))
	assert.Equal(t, 0, acc.cache.len())
	assert.Equal(t, 4, acc.cache.maxsize)
}

func TestLookupAccessor_EnableCacheRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree())

	require.ErrorIs(t, acc.EnableCache(0), ErrInvalidCacheSize)
	require.ErrorIs(t, acc.EnableCache(-3), ErrInvalidCacheSize)
}

func TestLookupAccessor_CacheNotSharedBetweenInstances(t *testing.T) {
	t.Parallel()

	tree := nestedTree()
	acc1 := NewLookupAccessor(tree)
	acc2 := NewLookupAccessor(tree)

	_, err := acc1.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)

	assert.Equal(t, 1, acc1.cache.len())
	assert.Equal(t, 0, acc2.cache.len())
}

func TestLookupAccessor_WithoutCacheOption(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree(), WithoutCache())

	assert.Nil(t, acc.cache)

	value, err := acc.Resolve([]Segment{Key("a"), Key("b")})
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestLookupAccessor_WithCacheSizeOption(t *testing.T) {
	t.Parallel()

	acc := NewLookupAccessor(nestedTree(), WithCacheSize(3))

	require.NotNil(t, acc.cache)
	assert.Equal(t, 3, acc.cache.maxsize)
}

func TestLRUCache_UpdateExistingKeyKeepsSize(t *testing.T) {
	t.Parallel()

	cache := newLRUCache(2)

	cache.put("k1", 1)
	cache.put("k2", 2)
	cache.put("k1", 10)

	assert.Equal(t, 2, cache.len())

	value, ok := cache.get("k1")
	require.True(t, ok)
	assert.Equal(t, 10, value)
}

func TestLRUCache_EvictionOrder(t *testing.T) {
	t.Parallel()

	cache := newLRUCache(3)

	cache.put("k1", 1)
	cache.put("k2", 2)
	cache.put("k3", 3)

	_, ok := cache.get("k1")
	require.True(t, ok)

	cache.put("k4", 4)

	assert.False(t, cache.contains("k2"), "k2 was least recently used")
	assert.True(t, cache.contains("k1"))
	assert.True(t, cache.contains("k3"))
	assert.True(t, cache.contains("k4"))
}
