package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/pytutor-ai/backend/internal/store"
)

// Memory is an in-process DocumentStore.
type Memory struct {
	mu    sync.RWMutex
	parts map[Partition]map[string]json.RawMessage
	fail  error
}

// Compile-time check: *Memory satisfies DocumentStore.
var _ DocumentStore = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{parts: make(map[Partition]map[string]json.RawMessage)}
}

// FailWith makes every following call return err. A nil err restores
// normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *Memory) Get(_ context.Context, p Partition, id string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fail != nil {
		return nil, m.fail
	}
	body, ok := m.parts[p][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &Document{ID: id, Body: clone(body)}, nil
}

// List returns documents ordered by id.
func (m *Memory) List(_ context.Context, p Partition) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fail != nil {
		return nil, m.fail
	}
	return m.collect(p, func(json.RawMessage) bool { return true }), nil
}

func (m *Memory) Query(_ context.Context, p Partition, field, value string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fail != nil {
		return nil, m.fail
	}
	return m.collect(p, func(body json.RawMessage) bool {
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			return false
		}
		s, ok := fields[field].(string)
		return ok && s == value
	}), nil
}

func (m *Memory) Put(_ context.Context, p Partition, docs ...Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	part, ok := m.parts[p]
	if !ok {
		part = make(map[string]json.RawMessage)
		m.parts[p] = part
	}
	for _, d := range docs {
		part[d.ID] = clone(d.Body)
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, p Partition, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.parts[p], id)
	return nil
}

func (m *Memory) collect(p Partition, keep func(json.RawMessage) bool) []Document {
	docs := make([]Document, 0, len(m.parts[p]))
	for id, body := range m.parts[p] {
		if keep(body) {
			docs = append(docs, Document{ID: id, Body: clone(body)})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

func clone(b json.RawMessage) json.RawMessage {
	return bytes.Clone(b)
}
