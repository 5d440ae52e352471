// Package dedup provides first-writer-wins idempotency storage. Action
// execution keys a claim on the client's request id; a retry of an already
// executed request gets the stored outcome back instead of a second effect.
package dedup

import (
	"context"
	"sync"
	"time"
)

// Store claims keys exactly once within a TTL window.
type Store interface {
	// Claim stores payload under key when the key is new and reports
	// replay=false. When the key is already claimed, the original payload
	// comes back with replay=true and nothing is written.
	Claim(ctx context.Context, key string, payload []byte, ttl time.Duration) (existing []byte, replay bool, err error)
	// Save overwrites the payload under an already claimed key. Callers
	// claim a placeholder before performing an effect, then save the real
	// outcome for replays to read.
	Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore is the single-process fallback used when Redis is not
// configured. Claims are atomic under one mutex.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

// Claim implements Store.
func (s *MemoryStore) Claim(_ context.Context, key string, payload []byte, ttl time.Duration) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if entry, ok := s.entries[key]; ok && now.Before(entry.expiresAt) {
		return entry.payload, true, nil
	}

	s.entries[key] = memoryEntry{payload: payload, expiresAt: now.Add(ttl)}
	return nil, false, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{payload: payload, expiresAt: time.Now().Add(ttl)}
	return nil
}
