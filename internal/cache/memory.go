package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Gateway. It backs tests and the --no-cache
// path, where generation should run with cache semantics but without a
// database on disk.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func key(handle string, year int) string {
	return fmt.Sprintf("%s/%d", handle, year)
}

func (m *Memory) Get(_ context.Context, handle string, year int) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key(handle, year)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *Memory) Put(_ context.Context, handle string, year int, data json.RawMessage, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	k := key(handle, year)
	created := now
	if prev, ok := m.entries[k]; ok {
		created = prev.CreatedAt
	}
	m.entries[k] = Entry{
		Handle:    handle,
		Year:      year,
		Data:      append(json.RawMessage(nil), data...),
		CreatedAt: created,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, handle string, year int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key(handle, year))
	return nil
}

func (m *Memory) Entries(_ context.Context) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Handle != out[j].Handle {
			return out[i].Handle < out[j].Handle
		}
		return out[i].Year < out[j].Year
	})
	return out, nil
}

func (m *Memory) Clear(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := int64(len(m.entries))
	m.entries = make(map[string]Entry)
	return n, nil
}
