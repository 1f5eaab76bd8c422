// Package cart implements the per-user shopping cart: a keyed persistent
// list of cart lines with quantity-aware merge semantics.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/junaidrashid-git/storefront-api/keyedlist"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// Manager owns the active user's cart. It follows the session store:
// on every identity change the whole list is swapped for the new user's
// persisted cart.
type Manager struct {
	list *keyedlist.List[models.CartLine]
}

func New(kv storage.Store, sessions *session.Store) *Manager {
	m := &Manager{
		list: keyedlist.New(kv, "cart", func(l models.CartLine) int { return l.ID }),
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

// Add merges a signed quantity delta into the line for product. An
// existing line's quantity moves by delta and the line is dropped when
// the result is not positive. Without an existing line, a non-positive
// delta is a no-op and a positive one inserts a fresh line. Callers use
// the sign of delta to express increment, decrement and insert alike.
func (m *Manager) Add(product models.Product, delta int) {
	m.list.Mutate(func(items []models.CartLine) []models.CartLine {
		for i, line := range items {
			if line.ID != product.ID {
				continue
			}
			line.Quantity += delta
			if line.Quantity <= 0 {
				return append(items[:i], items[i+1:]...)
			}
			items[i] = line
			return items
		}
		if delta <= 0 {
			return items
		}
		return append(items, models.CartLine{Product: product, Quantity: delta})
	})
}

// Remove deletes the line for productID outright. No-op when absent.
func (m *Manager) Remove(productID int) {
	m.list.Mutate(func(items []models.CartLine) []models.CartLine {
		for i, line := range items {
			if line.ID == productID {
				return append(items[:i], items[i+1:]...)
			}
		}
		return items
	})
}

// Clear empties the cart unconditionally.
func (m *Manager) Clear() {
	m.list.Clear()
}

// Items returns a copy of the current cart lines.
func (m *Manager) Items() []models.CartLine {
	return m.list.Items()
}

// Line returns the cart line for productID, if present.
func (m *Manager) Line(productID int) (models.CartLine, bool) {
	return m.list.Find(productID)
}

// TotalPrice is the sum of price × quantity over all lines.
func (m *Manager) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range m.list.Items() {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func (m *Manager) TotalItems() int {
	n := 0
	for _, line := range m.list.Items() {
		n += line.Quantity
	}
	return n
}
