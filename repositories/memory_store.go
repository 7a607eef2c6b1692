package repositories

import (
	"context"
	"reflect"
	"sort"
	"strconv"
	"sync"
)

// MemoryStore is an in-process DocumentStore used for local runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]map[string]interface{}
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]map[string]interface{})}
}

// Put stores a document under a fixed id, replacing any previous one.
func (s *MemoryStore) Put(collection, id string, data map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[id] = copyFields(data)
}

func (s *MemoryStore) collection(name string) map[string]map[string]interface{} {
	c, ok := s.data[name]
	if !ok {
		c = make(map[string]map[string]interface{})
		s.data[name] = c
	}
	return c
}

func (s *MemoryStore) List(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data[collection]))
	for id := range s.data[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var docs []Document
	for _, id := range ids {
		data := s.data[collection][id]
		if matches(data, filters) {
			docs = append(docs, Document{ID: id, Data: copyFields(data)})
		}
	}
	return docs, nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filters ...Filter) (int, error) {
	docs, err := s.List(ctx, collection, filters...)
	return len(docs), err
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Data: copyFields(data)}, nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := collection + "-" + strconv.Itoa(s.nextID)
	s.collection(collection)[id] = copyFields(data)
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[collection][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		data[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[collection], id)
	return nil
}

func matches(data map[string]interface{}, filters []Filter) bool {
	for _, f := range filters {
		if !reflect.DeepEqual(data[f.Field], f.Value) {
			return false
		}
	}
	return true
}

func copyFields(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
