package store

import (
	"context"
	"sync"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

type InMemoryClaimStore struct {
	mu     sync.RWMutex
	claims map[string]docmodel.ClaimDetail
	logger *logger_i.Logger
}

func NewInMemoryClaimStore() *InMemoryClaimStore {
	return &InMemoryClaimStore{
		claims: make(map[string]docmodel.ClaimDetail),
		logger: logger_i.NewLogger("InMemoryClaimStore"),
	}
}

func (s *InMemoryClaimStore) SaveClaimDetail(_ context.Context, claim docmodel.ClaimDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[claim.CaseId] = claim
	return nil
}

func (s *InMemoryClaimStore) GetClaimDetail(_ context.Context, caseId string) (docmodel.ClaimDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claim, ok := s.claims[caseId]
	return claim, ok
}
