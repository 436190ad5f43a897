// Package session owns the panel's client-side authentication state:
// one object with an explicit load-on-start and clear-on-logout
// lifecycle, replacing scattered reads and writes of independent
// storage flags.
package session

import (
	"sync"

	"github.com/mis-safeli/safeli-api/internal/localstore"
	"github.com/mis-safeli/safeli-api/internal/models"
)

// Storage keys. All three are written and cleared together.
const (
	authKey  = "ksev_auth"
	userKey  = "ksev_user"
	tokenKey = "ksev_token"
)

type Session struct {
	mu            sync.RWMutex
	kv            *localstore.Store
	authenticated bool
	user          *models.UserProjection
	token         string
}

// Load restores session state from persistent storage. An inconsistent
// state (flag set without a stored user) is treated as stale and fully
// cleared.
func Load(kv *localstore.Store) (*Session, error) {
	s := &Session{kv: kv}

	var flag bool
	hasFlag, err := kv.Get(authKey, &flag)
	if err != nil {
		return nil, err
	}

	var user models.UserProjection
	hasUser, err := kv.Get(userKey, &user)
	if err != nil {
		return nil, err
	}

	var token string
	if _, err := kv.Get(tokenKey, &token); err != nil {
		return nil, err
	}

	if hasFlag && flag && hasUser {
		s.authenticated = true
		s.user = &user
		s.token = token
		return s, nil
	}

	// Anything short of a complete session is cleared wholesale.
	if err := s.clear(); err != nil {
		return nil, err
	}
	return s, nil
}

// SignIn persists the authenticated user and token.
func (s *Session) SignIn(user models.UserProjection, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(authKey, true); err != nil {
		return err
	}
	if err := s.kv.Set(userKey, user); err != nil {
		return err
	}
	if err := s.kv.Set(tokenKey, token); err != nil {
		return err
	}

	s.authenticated = true
	s.user = &user
	s.token = token
	return nil
}

// SignOut clears all session state, persistent and in-memory.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear()
}

func (s *Session) clear() error {
	for _, key := range []string{authKey, userKey, tokenKey} {
		if err := s.kv.Remove(key); err != nil {
			return err
		}
	}
	s.authenticated = false
	s.user = nil
	s.token = ""
	return nil
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) User() *models.UserProjection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
