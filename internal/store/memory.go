package store

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps collections in process memory. It is safe for concurrent
// use and copies documents on the way in and out, so callers never share
// aliases with stored state. Construct one per process and inject it; there
// is no package-level instance.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc Document) (string, error) {
	id, _ := doc["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}

	stored := copyDocument(doc)
	stored["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	coll := s.collections[collection]
	if coll == nil {
		coll = make(map[string]Document)
		s.collections[collection] = coll
	}
	coll[id] = stored
	return id, nil
}

func (s *MemoryStore) GetByID(_ context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return copyDocument(doc), nil
}

func (s *MemoryStore) ListAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		docs = append(docs, copyDocument(doc))
	}
	return docs, nil
}

func (s *MemoryStore) ListWhere(_ context.Context, collection, fieldPath string, value any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]Document, 0)
	for _, doc := range s.collections[collection] {
		if got, ok := lookupPath(doc, fieldPath); ok && valueEqual(got, value) {
			docs = append(docs, copyDocument(doc))
		}
	}
	return docs, nil
}

// lookupPath resolves a dotted field path through nested documents.
func lookupPath(doc Document, fieldPath string) (any, bool) {
	parts := strings.Split(fieldPath, ".")
	var cur any = doc
	for _, part := range parts {
		m, ok := cur.(Document)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// valueEqual compares a stored value with a query value, tolerating the
// numeric widenings the document codec performs.
func valueEqual(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
		return false
	}
	switch a.(type) {
	case Document, []any:
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case Document:
		return copyDocument(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}
