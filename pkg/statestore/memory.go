package statestore

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory storage.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]*State
	ticker *time.Ticker
	done   chan struct{}
}

// NewMemoryStore creates an in-memory state store. A positive
// cleanupInterval starts a background sweep of expired entries; expired
// entries are treated as absent either way.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		states: make(map[string]*State),
		done:   make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Put stores a new state record.
func (m *MemoryStore) Put(ctx context.Context, state *State) error {
	if state == nil || state.Token == "" || state.Verifier == "" {
		return ErrInvalidState
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stateCopy := *state
	m.states[state.Token] = &stateCopy
	return nil
}

// Consume retrieves and removes the state atomically.
func (m *MemoryStore) Consume(ctx context.Context, token string) (*State, error) {
	m.mu.Lock()
	state, exists := m.states[token]
	if exists {
		delete(m.states, token)
	}
	m.mu.Unlock()

	if !exists || state.IsExpired() {
		return nil, ErrStateNotFound
	}

	stateCopy := *state
	return &stateCopy, nil
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.deleteExpired()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryStore) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, state := range m.states {
		if now.After(state.ExpiresAt) {
			delete(m.states, token)
		}
	}
}
