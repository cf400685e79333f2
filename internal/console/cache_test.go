package console

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheNeedsFetchLifecycle(t *testing.T) {
	c := NewCache()
	key := CategoriesKey()

	require.True(t, c.NeedsFetch(key), "missing entry needs fetch")

	gen := c.BeginFetch(key)
	require.False(t, c.NeedsFetch(key), "in-flight fetch must not be re-issued")

	require.True(t, c.Resolve(key, gen, []string{"a"}, nil))
	require.False(t, c.NeedsFetch(key), "fresh entry needs no fetch")

	c.Invalidate(key)
	require.True(t, c.NeedsFetch(key), "stale entry needs fetch")

	c.BeginFetch(key)
	require.False(t, c.NeedsFetch(key), "stale+loading must not double-fetch")
}

func TestCacheResolveDiscardsSupersededGeneration(t *testing.T) {
	c := NewCache()
	key := InquiryDetailKey(7)

	gen1 := c.BeginFetch(key)
	c.Invalidate(key)
	gen2 := c.BeginFetch(key)

	// late response for the first fetch arrives after the second started
	require.False(t, c.Resolve(key, gen1, "old", nil))
	entry, ok := c.Get(key)
	require.True(t, ok)
	require.True(t, entry.Loading, "discarded result must not clear loading")
	require.Nil(t, entry.Data)

	require.True(t, c.Resolve(key, gen2, "new", nil))
	entry, _ = c.Get(key)
	require.Equal(t, "new", entry.Data)
	require.False(t, entry.Loading)
}

func TestCacheRemoveOrphansInFlightFetch(t *testing.T) {
	c := NewCache()
	key := InquiryDetailKey(7)

	gen := c.BeginFetch(key)
	c.Remove(key)

	require.False(t, c.Resolve(key, gen, "late", nil), "resolve after remove must be dropped")
	_, ok := c.Get(key)
	require.False(t, ok)
}

func TestCacheRemoveAllOrphansEverything(t *testing.T) {
	c := NewCache()
	genCats := c.BeginFetch(CategoriesKey())
	genStats := c.BeginFetch(StatsKey())

	c.RemoveAll()

	require.False(t, c.Resolve(CategoriesKey(), genCats, "x", nil))
	require.False(t, c.Resolve(StatsKey(), genStats, "y", nil))
}

func TestCacheKeepsDataDuringRefetch(t *testing.T) {
	c := NewCache()
	key := PortfolioKey()

	gen := c.BeginFetch(key)
	require.True(t, c.Resolve(key, gen, "v1", nil))

	c.Invalidate(key)
	c.BeginFetch(key)

	entry, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, "v1", entry.Data, "previous data survives while refetch is in flight")
	require.True(t, entry.Loading)
}

func TestCacheInvalidateKindCoversAllDiscriminators(t *testing.T) {
	c := NewCache()
	for _, id := range []int{1, 2, 3} {
		gen := c.BeginFetch(InquiryDetailKey(id))
		c.Resolve(InquiryDetailKey(id), gen, id, nil)
	}
	gen := c.BeginFetch(InquiriesKey())
	c.Resolve(InquiriesKey(), gen, "list", nil)

	c.InvalidateKind(KindInquiryDetail)

	for _, id := range []int{1, 2, 3} {
		require.True(t, c.NeedsFetch(InquiryDetailKey(id)))
	}
	require.False(t, c.NeedsFetch(InquiriesKey()), "other kinds untouched")
}

func TestCacheResolveStoresError(t *testing.T) {
	c := NewCache()
	key := StatsKey()
	gen := c.BeginFetch(key)

	fetchErr := errors.New("boom")
	require.True(t, c.Resolve(key, gen, nil, fetchErr))

	entry, ok := c.Get(key)
	require.True(t, ok)
	require.Equal(t, fetchErr, entry.Err)
	require.False(t, c.NeedsFetch(key), "a settled error is not refetched until invalidated")
}
