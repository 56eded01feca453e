// Package recovery issues and verifies short-lived account recovery codes.
// Codes are kept per identifier with an expiry, so concurrent recoveries for
// different users never observe each other's codes.
package recovery

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"
)

const codeDigits = 6

type entry struct {
	code      string
	expiresAt time.Time
}

// Store holds recovery codes keyed by identifier, typically a user ID or
// email address. Verified and expired codes are removed.
type Store struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]entry
	now   func() time.Time
}

// NewStore creates a recovery code store whose codes expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:   ttl,
		codes: make(map[string]entry),
		now:   time.Now,
	}
}

// Issue generates a fresh numeric code for the identifier, replacing any
// previous one, and returns it for delivery to the user.
func (s *Store) Issue(key string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[key] = entry{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}

	return code, nil
}

// Verify checks the code for the identifier. A successful verification
// consumes the code; expired or mismatched codes leave the store unchanged
// apart from expiry cleanup.
func (s *Store) Verify(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.codes[key]
	if !ok {
		return false
	}

	if s.now().After(stored.expiresAt) {
		delete(s.codes, key)
		return false
	}

	if stored.code != code {
		return false
	}

	delete(s.codes, key)
	return true
}

// Evict removes expired codes and returns how many were dropped.
func (s *Store) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0

	for key, stored := range s.codes {
		if now.After(stored.expiresAt) {
			delete(s.codes, key)
			evicted++
		}
	}

	return evicted
}

// Len reports how many codes are currently stored, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.codes)
}

func randomCode() (string, error) {
	digits := make([]byte, codeDigits)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
