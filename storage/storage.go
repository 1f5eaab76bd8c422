// Package storage provides the durable key-value store backing session,
// cart, wishlist and order state. Keys are plain strings, values are
// JSON-serialized snapshots; there is no schema versioning, so readers
// treat anything unparseable as absent.
package storage

// Well-known keys. Per-user keys are derived with ScopedKey.
const CurrentUserKey = "currentUser"

// ScopedKey derives the storage key for a purpose ("cart", "wishlist",
// "orders") owned by the given identity, e.g. "cart_1".
func ScopedKey(purpose, identityID string) string {
	return purpose + "_" + identityID
}

// Store is a string-keyed blob store. Get returns (nil, nil) for a
// missing key; callers treat missing and corrupt values alike.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
