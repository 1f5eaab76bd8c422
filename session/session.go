// Package session tracks the storefront's active identity. Credentials
// are process-local demo records: a seeded list extended by signup, with
// no hashing or durability beyond the process. The active identity is
// mirrored to storage so a restart restores the prior session.
package session

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// seedCredentials are the demo accounts available at first start.
func seedCredentials() []models.Credential {
	return []models.Credential{
		{User: models.User{ID: "1", Username: "john_doe", Email: "john@example.com"}, Password: "password123"},
		{User: models.User{ID: "2", Username: "jane_smith", Email: "jane@example.com"}, Password: "pass456"},
		{User: models.User{ID: "3", Username: "admin", Email: "admin@example.com"}, Password: "admin123"},
		{User: models.User{ID: "4", Username: "testuser", Email: "test@example.com"}, Password: "test123"},
	}
}

// Store owns the active identity and the credential registry. Identity
// changes are fanned out synchronously to registered listeners (the cart
// and wishlist reload their lists on that signal).
type Store struct {
	mu        sync.Mutex
	kv        storage.Store
	creds     []models.Credential
	current   *models.User
	listeners []func(*models.User)
}

// New builds a session store and restores the mirrored identity from
// storage, if any. An unparseable mirror means no session.
func New(kv storage.Store) *Store {
	s := &Store{kv: kv, creds: seedCredentials()}

	data, err := kv.Get(storage.CurrentUserKey)
	if err != nil {
		zap.L().Warn("session restore failed", zap.Error(err))
		return s
	}
	if len(data) == 0 {
		return s
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		zap.L().Warn("discarding unparseable session mirror", zap.Error(err))
		return s
	}
	s.current = &u
	return s
}

// OnChange registers a listener for identity changes. The listener is
// invoked immediately with the current identity, then again on every
// login, signup and logout.
func (s *Store) OnChange(fn func(*models.User)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	current := s.current
	s.mu.Unlock()
	fn(current)
}

// Login activates the identity matching username and password exactly.
// On failure the prior state is untouched.
func (s *Store) Login(username, password string) bool {
	s.mu.Lock()
	var found *models.User
	for _, c := range s.creds {
		if c.Username == username && c.Password == password {
			u := c.User
			found = &u
			break
		}
	}
	s.mu.Unlock()
	if found == nil {
		return false
	}
	s.setCurrent(found)
	return true
}

// Signup registers a new credential and activates it. Fails when the
// username is already taken.
func (s *Store) Signup(username, email, password string) bool {
	s.mu.Lock()
	for _, c := range s.creds {
		if c.Username == username {
			s.mu.Unlock()
			return false
		}
	}
	cred := models.Credential{
		User:     models.User{ID: uuid.NewString(), Username: username, Email: email},
		Password: password,
	}
	s.creds = append(s.creds, cred)
	u := cred.User
	s.mu.Unlock()
	s.setCurrent(&u)
	return true
}

// Logout clears the active identity unconditionally.
func (s *Store) Logout() {
	s.setCurrent(nil)
}

// Current returns the active identity, or nil.
func (s *Store) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// setCurrent swaps the identity, mirrors it to storage and notifies
// listeners. Listeners run outside the lock so they may call back in.
func (s *Store) setCurrent(u *models.User) {
	s.mu.Lock()
	s.current = u
	listeners := append([]func(*models.User){}, s.listeners...)
	s.mu.Unlock()

	if u != nil {
		data, _ := json.Marshal(u)
		if err := s.kv.Set(storage.CurrentUserKey, data); err != nil {
			zap.L().Error("session mirror write failed", zap.Error(err))
		}
	} else {
		if err := s.kv.Delete(storage.CurrentUserKey); err != nil {
			zap.L().Error("session mirror delete failed", zap.Error(err))
		}
	}
	for _, fn := range listeners {
		fn(u)
	}
}
