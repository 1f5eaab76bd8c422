package keyedlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/storage"
)

type entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestList(kv storage.Store) *List[entry] {
	return New(kv, "cart", func(e entry) int { return e.ID })
}

func TestMutatePersistsUnderOwnerKey(t *testing.T) {
	kv := storage.NewMemory()
	l := newTestList(kv)
	l.SetOwner("1")

	l.Mutate(func(items []entry) []entry {
		return append(items, entry{ID: 7, Name: "hat"})
	})

	data, err := kv.Get("cart_1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7,"name":"hat"}]`, string(data))
}

func TestNoOwnerSuppressesWrites(t *testing.T) {
	kv := storage.NewMemory()
	l := newTestList(kv)

	l.Mutate(func(items []entry) []entry {
		return append(items, entry{ID: 1, Name: "ghost"})
	})

	data, err := kv.Get("cart_")
	require.NoError(t, err)
	assert.Nil(t, data)
	// the in-memory list still works while unauthenticated
	assert.Equal(t, 1, l.Len())
}

func TestSetOwnerLoadsPersistedList(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set("cart_2", []byte(`[{"id":3,"name":"mug"}]`)))

	l := newTestList(kv)
	l.SetOwner("2")

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, entry{ID: 3, Name: "mug"}, items[0])
}

func TestSetOwnerSwapsListsWithoutBlending(t *testing.T) {
	kv := storage.NewMemory()
	l := newTestList(kv)

	l.SetOwner("1")
	l.Mutate(func(items []entry) []entry { return append(items, entry{ID: 1, Name: "one"}) })

	l.SetOwner("2")
	assert.Zero(t, l.Len())
	l.Mutate(func(items []entry) []entry { return append(items, entry{ID: 2, Name: "two"}) })

	l.SetOwner("1")
	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Name)

	l.SetOwner("")
	assert.Zero(t, l.Len())
}

func TestCorruptStorageTreatedAsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	require.NoError(t, kv.Set("cart_9", []byte(`{not json`)))

	l := newTestList(kv)
	l.SetOwner("9")
	assert.Zero(t, l.Len())
}

func TestClearRewritesEmptyList(t *testing.T) {
	kv := storage.NewMemory()
	l := newTestList(kv)
	l.SetOwner("1")
	l.Mutate(func(items []entry) []entry { return append(items, entry{ID: 1}) })

	l.Clear()

	data, err := kv.Get("cart_1")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFind(t *testing.T) {
	kv := storage.NewMemory()
	l := newTestList(kv)
	l.SetOwner("1")
	l.Mutate(func(items []entry) []entry { return append(items, entry{ID: 5, Name: "five"}) })

	got, ok := l.Find(5)
	require.True(t, ok)
	assert.Equal(t, "five", got.Name)

	_, ok = l.Find(6)
	assert.False(t, ok)
}
