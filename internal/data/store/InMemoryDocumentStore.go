package store

import (
	"context"
	"sync"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

// InMemoryDocumentStore backs the pipeline when Redis is unavailable. Contents
// do not survive a restart.
type InMemoryDocumentStore struct {
	mu        sync.RWMutex
	documents map[string]docmodel.Document
	logger    *logger_i.Logger
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		documents: make(map[string]docmodel.Document),
		logger:    logger_i.NewLogger("InMemoryDocumentStore"),
	}
}

func (s *InMemoryDocumentStore) SaveDocument(_ context.Context, doc docmodel.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.Id] = doc
	return nil
}

func (s *InMemoryDocumentStore) GetDocument(_ context.Context, id string) (docmodel.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	return doc, ok
}

func (s *InMemoryDocumentStore) DeleteDocument(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}
