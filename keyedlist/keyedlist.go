// Package keyedlist implements the owner-scoped persistent list pattern
// shared by the cart and the wishlist: a list of entities owned by the
// active identity, written through to storage under a key derived from
// the owner's id, and swapped wholesale whenever the owner changes.
package keyedlist

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/storage"
)

// List holds entities of type T keyed by an int extracted with keyOf.
// While an owner is set, every mutation rewrites the full list under
// "<purpose>_<ownerID>"; with no owner the list is empty and writes are
// suppressed.
type List[T any] struct {
	mu      sync.Mutex
	store   storage.Store
	purpose string
	keyOf   func(T) int

	ownerID string
	items   []T
}

func New[T any](store storage.Store, purpose string, keyOf func(T) int) *List[T] {
	return &List[T]{store: store, purpose: purpose, keyOf: keyOf}
}

// SetOwner switches the owning identity. The current in-memory list is
// discarded; the new owner's list is loaded from storage, defaulting to
// empty when absent or unparseable. An empty id means "no owner".
func (l *List[T]) SetOwner(identityID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ownerID = identityID
	l.items = nil
	if identityID == "" {
		return
	}

	key := storage.ScopedKey(l.purpose, identityID)
	data, err := l.store.Get(key)
	if err != nil {
		zap.L().Warn("list load failed", zap.String("key", key), zap.Error(err))
		return
	}
	if len(data) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		zap.L().Warn("discarding unparseable list", zap.String("key", key), zap.Error(err))
		return
	}
	l.items = items
}

// Mutate applies fn to the current list and persists the result. The
// whole read-modify-write runs under the list lock.
func (l *List[T]) Mutate(fn func(items []T) []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = fn(l.items)
	l.persist()
}

// Clear empties the list. The stored record is rewritten as an empty
// list rather than deleted, matching the write-through contract.
func (l *List[T]) Clear() {
	l.Mutate(func([]T) []T { return nil })
}

// Items returns a copy of the current list.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Find returns the element with the given key, if present.
func (l *List[T]) Find(key int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.items {
		if l.keyOf(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// persist writes the full list under the owner's key. Callers hold l.mu.
func (l *List[T]) persist() {
	if l.ownerID == "" {
		return
	}
	items := l.items
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		zap.L().Error("list marshal failed", zap.String("purpose", l.purpose), zap.Error(err))
		return
	}
	key := storage.ScopedKey(l.purpose, l.ownerID)
	if err := l.store.Set(key, data); err != nil {
		zap.L().Error("list persist failed", zap.String("key", key), zap.Error(err))
	}
}
