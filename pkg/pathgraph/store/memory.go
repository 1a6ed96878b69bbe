package store

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory report store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]storedReport // searchID -> serialized report
	closed bool
}

// storedReport holds the serialized report with metadata for List().
type storedReport struct {
	data []byte
	info Info
}

// NewMemoryStore creates a new in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]storedReport),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(report Report) error {
	data, err := encodeReport(&report)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.data[report.SearchID] = storedReport{
		data: data,
		info: Info{
			SearchID:  report.SearchID,
			Kind:      report.Kind,
			CreatedAt: report.CreatedAt,
			Size:      int64(len(data)),
		},
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(searchID string) (Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Report{}, ErrStoreClosed
	}

	stored, ok := m.data[searchID]
	if !ok {
		return Report{}, ErrNotFound
	}
	return decodeReport(stored.data)
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.data))
	for _, stored := range m.data {
		infos = append(infos, stored.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(searchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, searchID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
