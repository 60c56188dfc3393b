// Package session holds the authenticated user's token and minimal identity
// on the client side. The Store is the only mutable shared state in the SDK:
// the transport reads the token on every outgoing request while login/logout
// flows occasionally write it, so all access is mutex-guarded.
//
// Persistence is delegated to a small KeyValue contract; the Store never
// depends on a specific storage technology. Two backends ship with the
// package: an in-memory map and a SQLite table (see sqlite.go).
package session

import (
	"strconv"
	"sync"
)

// Storage keys. These are the only keys the Store owns in its backend.
const (
	keyToken    = "jwt"
	keyUserID   = "user_id"
	keyEmail    = "email"
	keyUsername = "username"
)

// KeyValue is the persistence contract the Store depends on.
//
// Get returns the stored value and whether the key was present. Implementations
// must be safe for use from a single goroutine at a time; the Store serializes
// access on top.
type KeyValue interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
	Clear() error
}

// Store owns the current session. One instance is constructed at startup and
// shared by reference with the transport and the login/logout flows.
type Store struct {
	mu sync.RWMutex
	kv KeyValue
}

// NewStore wraps the given backend. The backend's prior contents survive, so
// a persisted session is picked up across process restarts.
func NewStore(kv KeyValue) *Store {
	return &Store{kv: kv}
}

// SetSession stores the token and overwrites only the identity fields that
// are supplied (non-nil). The write is atomic with respect to concurrent
// readers: no request observes a half-written session.
func (s *Store) SetSession(token string, userID *int, email, username *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(keyToken, token); err != nil {
		return err
	}
	if userID != nil {
		if err := s.kv.Set(keyUserID, strconv.Itoa(*userID)); err != nil {
			return err
		}
	}
	if email != nil {
		if err := s.kv.Set(keyEmail, *email); err != nil {
			return err
		}
	}
	if username != nil {
		if err := s.kv.Set(keyUsername, *username); err != nil {
			return err
		}
	}
	return nil
}

// Token returns the stored JWT, or ok=false when no session exists.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok, err := s.kv.Get(keyToken)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// UserID returns the stored user ID, or ok=false when absent or unparsable.
func (s *Store) UserID() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok, err := s.kv.Get(keyUserID)
	if err != nil || !ok {
		return 0, false
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Email returns the stored email, or "" when absent.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, _, _ := s.kv.Get(keyEmail)
	return v
}

// Username returns the stored username, or "" when absent.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, _, _ := s.kv.Get(keyUsername)
	return v
}

// IsLoggedIn reports whether a token is currently stored.
func (s *Store) IsLoggedIn() bool {
	_, ok := s.Token()
	return ok
}

// ClearSession removes all four session keys under one lock, so no reader
// ever sees a token without its identity fields torn away separately.
func (s *Store) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range []string{keyToken, keyUserID, keyEmail, keyUsername} {
		if err := s.kv.Remove(k); err != nil {
			return err
		}
	}
	return nil
}
