// Package wishlist implements the per-user wishlist: membership-only,
// at most one entry per product id.
package wishlist

import (
	"github.com/junaidrashid-git/storefront-api/keyedlist"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// Manager owns the active user's wishlist, swapped wholesale on every
// identity change like the cart.
type Manager struct {
	list *keyedlist.List[models.Product]
}

func New(kv storage.Store, sessions *session.Store) *Manager {
	m := &Manager{
		list: keyedlist.New(kv, "wishlist", func(p models.Product) int { return p.ID }),
	}
	sessions.OnChange(func(u *models.User) {
		if u == nil {
			m.list.SetOwner("")
			return
		}
		m.list.SetOwner(u.ID)
	})
	return m
}

// Add inserts product unless an entry with its id already exists.
func (m *Manager) Add(product models.Product) {
	m.list.Mutate(func(items []models.Product) []models.Product {
		for _, p := range items {
			if p.ID == product.ID {
				return items
			}
		}
		return append(items, product)
	})
}

// Remove deletes the entry for productID. No-op when absent.
func (m *Manager) Remove(productID int) {
	m.list.Mutate(func(items []models.Product) []models.Product {
		for i, p := range items {
			if p.ID == productID {
				return append(items[:i], items[i+1:]...)
			}
		}
		return items
	})
}

// Contains reports whether productID is on the wishlist.
func (m *Manager) Contains(productID int) bool {
	_, ok := m.list.Find(productID)
	return ok
}

// Clear empties the wishlist unconditionally.
func (m *Manager) Clear() {
	m.list.Clear()
}

// Items returns a copy of the current entries.
func (m *Manager) Items() []models.Product {
	return m.list.Items()
}
