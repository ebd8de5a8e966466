package store

import (
	"context"
	"sync"

	"github.com/serroba/linx/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository.
// It is only suitable for single-process deployments.
type MemoryStore struct {
	mu    sync.RWMutex
	links map[shortener.Code]string // code -> url
}

// NewMemoryStore creates a new in-memory link store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[shortener.Code]string),
	}
}

// Insert checks for an existing code and inserts under the same lock.
func (m *MemoryStore) Insert(_ context.Context, code shortener.Code, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.links[code]; ok {
		return shortener.ErrDuplicateCode
	}

	m.links[code] = url

	return nil
}

// Lookup returns the URL stored under code, or shortener.ErrNotFound.
func (m *MemoryStore) Lookup(_ context.Context, code shortener.Code) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	url, ok := m.links[code]
	if !ok {
		return "", shortener.ErrNotFound
	}

	return url, nil
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
