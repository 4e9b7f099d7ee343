// Package analysis orchestrates the document intelligence pipeline: resolve
// text, classify, run the pattern extractors, build the deterministic summary,
// optionally augment with an AI provider, then persist and backfill claim
// details. Every stage after text resolution is pure; this package owns the
// sequencing and the side effects.
package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/classify"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/embedding"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/summary"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/internal/metrics"
	"github.com/bart800/Denham-cms-sub000/internal/storage"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrNoExtractableContent = errors.New("no text content to analyze")
	ErrAlreadyProcessing    = errors.New("document analysis already in progress")
	ErrAlreadyAnalyzed      = errors.New("document already analyzed, re-run requires force")
)

// Request carries the three mutually-complementary text sources. Inline text
// wins over a storage path; an explicit storage path wins over the stored
// document's own path.
type Request struct {
	DocumentId  string
	StoragePath string
	Text        string
	Force       bool
}

// Outcome is everything a single run produced. PersistenceErr being non-nil
// does not invalidate the rest: analysis results survive a failed save and the
// handler reports both.
type Outcome struct {
	DocumentId          string
	DocType             string
	AICategory          string
	Summary             string
	Metadata            docmodel.Metadata
	ExtractedText       string
	ClaimDetailsUpdated []string
	PersistenceErr      error
}

// Service Worker and handlers only call this - they don't need to know the
// stores or the AI provider.
type Service interface {
	AnalyzeDocument(ctx context.Context, req Request) (*Outcome, error)
}

type service struct {
	documents docmodel.DocumentStore
	claims    docmodel.ClaimStore
	storage   storage.Store
	provider  ai.Provider
	embedder  embedding.Embedder
	cache     ai.ResultCache
	logger    *logger_i.Logger
}

// NewService constructor. provider, embedder and cache may be nil; the
// pipeline then runs pattern-only.
func NewService(documents docmodel.DocumentStore, claims docmodel.ClaimStore, files storage.Store, provider ai.Provider, em embedding.Embedder, cache ai.ResultCache) Service {
	return &service{
		documents: documents,
		claims:    claims,
		storage:   files,
		provider:  provider,
		embedder:  em,
		cache:     cache,
		logger:    logger_i.NewLogger("Analysis Service :"),
	}
}

func (s *service) AnalyzeDocument(ctx context.Context, req Request) (*Outcome, error) {
	start := time.Now()
	inMethodLogger := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", req.DocumentId)

	doc, hasDoc, err := s.resolveDocument(ctx, inMethodLogger, req)
	if err != nil {
		return nil, err
	}

	// Text resolution
	text, method, err := s.resolveText(ctx, inMethodLogger, req, doc, hasDoc)
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(text)) < config.MinAnalyzableLength {
		inMethodLogger.Warn("document has no analyzable text", "length", len(text))
		if hasDoc {
			s.persistFailure(ctx, inMethodLogger, doc, "No extractable text content")
		}
		metrics.CountAnalyzedDocument(classify.Unknown, string(docmodel.AIStatusFailed))
		return nil, ErrNoExtractableContent
	}

	// Classification + pattern scan
	docType, meta := s.executePatternStep(inMethodLogger, text, method)

	// Deterministic summary
	docSummary := summary.Generate(docType, meta, text)

	// AI augmentation, never fatal
	meta, aiCategory := s.executeAIStep(ctx, inMethodLogger, text, docType, meta, req, doc, hasDoc)

	outcome := &Outcome{
		DocumentId:    req.DocumentId,
		DocType:       docType,
		AICategory:    aiCategory,
		Summary:       docSummary,
		Metadata:      meta,
		ExtractedText: text,
	}

	// Persistence; analysis results outlive a failed save
	if hasDoc {
		outcome.PersistenceErr = s.persistResults(ctx, inMethodLogger, doc, outcome)
		if outcome.PersistenceErr == nil && doc.CaseId != "" {
			outcome.ClaimDetailsUpdated = s.executeBackfillStep(ctx, inMethodLogger, doc.CaseId, meta)
		}
	}

	status := docmodel.AIStatusCompleted
	if outcome.PersistenceErr != nil {
		status = docmodel.AIStatusFailed
	}
	metrics.CountAnalyzedDocument(docType, string(status))
	metrics.CaptureJobMetrics(string(status), time.Since(start))

	inMethodLogger.Info("analysis complete", "docType", docType, "aiPowered", meta.AIPowered, "elapsed", time.Since(start))
	return outcome, nil
}
