// pkg/otpstore holds short-lived single-use tokens: password-reset
// grants issued after OTP verification, and pending Telegram login
// codes. Keys must survive process restarts, so production uses redis;
// the map impl exists for tests.
package otpstore

import (
	"context"
	"sync"
	"time"
)

type TokenStore interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Consume returns the value for key if not expired, and removes the
	// key (single-use). Returns "" if missing/expired.
	Consume(ctx context.Context, key string) (string, error)

	Peek(ctx context.Context, key string) (string, bool, error)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]entry),
	}
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Consume(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return "", nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return "", nil
	}
	delete(s.data, key) // single-use
	return e.value, nil
}

func (s *MemoryStore) Peek(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}
