package analysis_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// MockDocumentStore implements docmodel.DocumentStore over a map, with an
// optional hook to simulate save failures.
type MockDocumentStore struct {
	mu             sync.Mutex
	docs           map[string]docmodel.Document
	OnSaveDocument func(ctx context.Context, doc docmodel.Document) error
}

func NewMockDocumentStore(seed ...docmodel.Document) *MockDocumentStore {
	s := &MockDocumentStore{docs: make(map[string]docmodel.Document)}
	for _, d := range seed {
		s.docs[d.Id] = d
	}
	return s
}

func (m *MockDocumentStore) GetDocument(_ context.Context, id string) (docmodel.Document, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[id]
	return doc, ok
}

func (m *MockDocumentStore) SaveDocument(ctx context.Context, doc docmodel.Document) error {
	if m.OnSaveDocument != nil {
		if err := m.OnSaveDocument(ctx, doc); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.Id] = doc
	return nil
}

func (m *MockDocumentStore) DeleteDocument(_ context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
}

type MockClaimStore struct {
	mu     sync.Mutex
	claims map[string]docmodel.ClaimDetail
}

func NewMockClaimStore(seed ...docmodel.ClaimDetail) *MockClaimStore {
	s := &MockClaimStore{claims: make(map[string]docmodel.ClaimDetail)}
	for _, c := range seed {
		s.claims[c.CaseId] = c
	}
	return s
}

func (m *MockClaimStore) GetClaimDetail(_ context.Context, caseId string) (docmodel.ClaimDetail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.claims[caseId]
	return c, ok
}

func (m *MockClaimStore) SaveClaimDetail(_ context.Context, claim docmodel.ClaimDetail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.claims[claim.CaseId] = claim
	return nil
}

// MockStorage implements storage.Store.
type MockStorage struct {
	OnDownload func(ctx context.Context, path string) ([]byte, error)
}

func (m *MockStorage) Download(ctx context.Context, path string) ([]byte, error) {
	if m.OnDownload != nil {
		return m.OnDownload(ctx, path)
	}
	return nil, errors.New("no such file")
}

// MockProvider implements ai.Provider and counts calls.
type MockProvider struct {
	OnAnalyze func(ctx context.Context, text string, filename string) (*ai.Insights, error)
	CallCount int32
}

func (m *MockProvider) Analyze(ctx context.Context, text string, filename string) (*ai.Insights, error) {
	atomic.AddInt32(&m.CallCount, 1)
	if m.OnAnalyze != nil {
		return m.OnAnalyze(ctx, text, filename)
	}
	return &ai.Insights{Category: "unknown", Confidence: 0.1}, nil
}

type MockEmbedder struct {
	OnGetEmbedding func(ctx context.Context, text string) ([]float32, error)
}

func (m *MockEmbedder) GetEmbedding(ctx context.Context, text string) ([]float32, error) {
	if m.OnGetEmbedding != nil {
		return m.OnGetEmbedding(ctx, text)
	}
	return []float32{0.1, 0.2}, nil
}

// MockResultCache implements ai.ResultCache.
type MockResultCache struct {
	OnLookup func(ctx context.Context, vector []float32) (*ai.Insights, bool)
	OnSave   func(ctx context.Context, id string, vector []float32, insights *ai.Insights) error
}

func (m *MockResultCache) Lookup(ctx context.Context, vector []float32) (*ai.Insights, bool) {
	if m.OnLookup != nil {
		return m.OnLookup(ctx, vector)
	}
	return nil, false
}

func (m *MockResultCache) Save(ctx context.Context, id string, vector []float32, insights *ai.Insights) error {
	if m.OnSave != nil {
		return m.OnSave(ctx, id, vector, insights)
	}
	return nil
}
