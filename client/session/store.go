// Package session holds the client-side session capabilities the facade
// depends on: a key-value Store for the bearer token and the serialized
// user record, and a Notifier told when the backend rejects the session.
package session

import (
	"encoding/json"
	"fmt"
)

// Keys owned by the session.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// Store is a persistent string key-value store.
//
// Get reports ok=false for a missing key. Delete of a missing key is not an
// error. Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// Clear removes the token and the user record.
func Clear(s Store) error {
	return s.Delete(TokenKey, UserKey)
}

// SaveLogin persists a freshly issued token and the user it belongs to.
// user may be nil, in which case any stale user record is removed.
func SaveLogin(s Store, token string, user any) error {
	if token == "" {
		return fmt.Errorf("save login: empty token")
	}
	if err := s.Set(TokenKey, token); err != nil {
		return fmt.Errorf("save login: token: %w", err)
	}
	if user == nil {
		if err := s.Delete(UserKey); err != nil {
			return fmt.Errorf("save login: user: %w", err)
		}
		return nil
	}
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save login: encode user: %w", err)
	}
	if err := s.Set(UserKey, string(b)); err != nil {
		return fmt.Errorf("save login: user: %w", err)
	}
	return nil
}

// LoadUser decodes the stored user record into out. ok is false when no
// record is stored.
func LoadUser(s Store, out any) (bool, error) {
	raw, ok, err := s.Get(UserKey)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("load user: %w", err)
	}
	return true, nil
}
