// Package store abstracts where assessment score maps live between sessions.
package store

import (
	"context"
	"sync"

	"github.com/vijay-prabhu/disha/internal/assessment"
)

// ScoreStore persists raw score maps by key. A missing key is not an error:
// Get returns an empty map.
type ScoreStore interface {
	Get(ctx context.Context, key string) (assessment.RawScoreMap, error)
	Put(ctx context.Context, key string, scores assessment.RawScoreMap) error
}

// Memory is an in-memory ScoreStore. Maps are copied on the way in and out.
type Memory struct {
	mu   sync.RWMutex
	data map[string]assessment.RawScoreMap
}

// NewMemory creates an empty Memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]assessment.RawScoreMap)}
}

// Get returns a copy of the map stored under key
func (m *Memory) Get(_ context.Context, key string) (assessment.RawScoreMap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key].Clone(), nil
}

// Put replaces the map stored under key
func (m *Memory) Put(_ context.Context, key string, scores assessment.RawScoreMap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = scores.Clone()
	return nil
}

// Delete removes key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
