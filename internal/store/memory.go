package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Memory is an in-process Store keeping each collection in insertion order.
// It evaluates filters with the same semantics as the Mongo store and backs
// tests and local runs without a database.
type Memory struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.Raw
	order       []string
	now         func() time.Time
}

func NewMemory(name string) *Memory {
	return &Memory{name: name, collections: make(map[string][]bson.Raw), now: time.Now}
}

func (m *Memory) Name() string { return m.name }

func (m *Memory) Find(ctx context.Context, collection string, f Filter, limit int64) ([]bson.Raw, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f == nil {
		f = All
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.Raw{}
	for _, doc := range m.collections[collection] {
		if !f.Match(doc) {
			continue
		}
		out = append(out, doc)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d, err := stamp(doc, m.now(), true)
	if err != nil {
		return err
	}
	raw, err := bson.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[collection]; !ok {
		m.order = append(m.order, collection)
	}
	m.collections[collection] = append(m.collections[collection], raw)
	return nil
}

// CollectionNames returns collections in the order they were first written.
func (m *Memory) CollectionNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...), nil
}

// Raw returns the stored records of collection, including internal fields.
func (m *Memory) Raw(collection string) []bson.Raw {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]bson.Raw(nil), m.collections[collection]...)
}
