package analysis

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bart800/Denham-cms-sub000/internal/adapter/utils"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/classify"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/extract"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/textextract"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
	"github.com/bart800/Denham-cms-sub000/internal/metrics"
	"github.com/bart800/Denham-cms-sub000/pkg/logger_i"
)

// resolveDocument loads the referenced document (when an id was given) and
// flips it to "processing". Only a pending document starts without force:
// processing means a run is already in flight, and completed/failed are
// terminal until the batch orchestrator sweeps with force.
func (s *service) resolveDocument(ctx context.Context, log *logger_i.Logger, req Request) (docmodel.Document, bool, error) {
	if req.DocumentId == "" {
		return docmodel.Document{}, false, nil
	}

	doc, found := s.documents.GetDocument(ctx, req.DocumentId)
	if !found {
		log.Warn("document not found")
		return docmodel.Document{}, false, ErrDocumentNotFound
	}

	if !req.Force {
		switch doc.AIStatus {
		case docmodel.AIStatusProcessing:
			log.Warn("document already processing")
			return docmodel.Document{}, false, ErrAlreadyProcessing
		case docmodel.AIStatusCompleted, docmodel.AIStatusFailed:
			log.Warn("document already analyzed", "status", doc.AIStatus)
			return docmodel.Document{}, false, ErrAlreadyAnalyzed
		}
	}

	doc.AIStatus = docmodel.AIStatusProcessing
	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("could not mark document processing", "error", err)
	}
	return doc, true, nil
}

// resolveText applies the source priority: inline text, then the request's
// storage path, then the document's own path.
func (s *service) resolveText(ctx context.Context, log *logger_i.Logger, req Request, doc docmodel.Document, hasDoc bool) (string, string, error) {
	if req.Text != "" {
		return req.Text, textextract.MethodTextLayer, nil
	}

	path := req.StoragePath
	if path == "" && hasDoc {
		path = doc.StoragePath
	}
	if path == "" {
		return "", "", nil
	}

	content, err := s.executeStorageStep(ctx, log, path)
	if err != nil {
		if hasDoc {
			s.persistFailure(ctx, log, doc, "Could not read document from storage")
		}
		return "", "", err
	}

	ext := doc.Extension
	if ext == "" {
		ext = filepath.Ext(path)
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	result := textextract.Extract(content, ext)
	return result.Text, result.Method, nil
}

func (s *service) executeStorageStep(ctx context.Context, log *logger_i.Logger, path string) ([]byte, error) {
	storageCtx, cancel := context.WithTimeout(ctx, config.StorageCallTimeout)
	defer cancel()

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("storage_download", time.Since(start)) }()

	content, err := s.storage.Download(storageCtx, path)
	if err != nil {
		log.Error("storage download failed", "path", path, "error", err)
	}
	return content, err
}

// executePatternStep classifies the text and runs the generic plus
// type-specific extractors. Pure; timed only because the regex pass over large
// documents is the widest CPU stretch in the pipeline.
func (s *service) executePatternStep(log *logger_i.Logger, text string, method string) (string, docmodel.Metadata) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("pattern_scan", time.Since(start)) }()

	docType := classify.Classify(text)
	meta := extract.Scan(text)
	meta.DocType = docType
	meta.ExtractionMethod = method

	switch docType {
	case "denial_letter":
		meta.DenialInfo = extract.DenialInfo(text)
	case "estimate":
		meta.EstimateInfo = extract.EstimateInfo(text)
	}

	log.Debug("pattern scan done", "docType", docType)
	return docType, meta
}

// executeAIStep runs the augmentor and merges its output. Failures anywhere in
// here degrade to pattern-only results; they are never surfaced to the caller.
func (s *service) executeAIStep(ctx context.Context, log *logger_i.Logger, text string, docType string, meta docmodel.Metadata, req Request, doc docmodel.Document, hasDoc bool) (docmodel.Metadata, string) {
	aiCategory := docType
	if s.provider == nil {
		return meta, aiCategory
	}

	window := truncate(text, config.AITextWindow)

	insights := s.lookupOrAnalyze(ctx, log, window, doc, hasDoc)
	if insights == nil {
		return meta, aiCategory
	}

	merged, override := ai.Merge(meta, insights, config.AICategoryConfidenceGate)
	if override != "" {
		aiCategory = override
		log.Debug("AI category override", "category", override, "confidence", insights.Confidence)
	}
	return merged, aiCategory
}

func (s *service) lookupOrAnalyze(ctx context.Context, log *logger_i.Logger, window string, doc docmodel.Document, hasDoc bool) *ai.Insights {
	var vector []float32

	if s.embedder != nil && s.cache != nil {
		emb, err := s.embedder.GetEmbedding(ctx, window)
		if err != nil {
			log.Error("embedding for AI cache failed", "error", err)
		} else {
			vector = emb
			if cached, found := s.cache.Lookup(ctx, vector); found {
				return cached
			}
		}
	}

	aiCtx, cancel := context.WithTimeout(ctx, config.AICallTimeout)
	defer cancel()

	start := time.Now()
	filename := ""
	if hasDoc {
		filename = doc.Filename
	}
	insights, err := s.provider.Analyze(aiCtx, window, filename)
	metrics.CaptureExecutionMetrics("ai_analysis", time.Since(start))
	if err != nil {
		log.Error("AI analysis failed, continuing pattern-only", "error", err)
		return nil
	}

	if vector != nil {
		go func() {
			if err := s.cache.Save(context.WithoutCancel(ctx), utils.GetNewUUID(), vector, insights); err != nil {
				s.logger.Error("Failed to save AI insights to cache")
			}
		}()
	}
	return insights
}

func (s *service) persistResults(ctx context.Context, log *logger_i.Logger, doc docmodel.Document, outcome *Outcome) error {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("persistence", time.Since(start)) }()

	extracted := truncate(outcome.ExtractedText, config.ExtractedTextCap)

	metaCopy := outcome.Metadata
	doc.AIExtractedText = extracted
	doc.AISummary = outcome.Summary
	doc.AIMetadata = &metaCopy
	doc.AICategory = outcome.AICategory
	doc.DocType = outcome.DocType
	doc.AIStatus = docmodel.AIStatusCompleted
	doc.AnalyzedAt = time.Now().UTC()

	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("persisting analysis results failed", "error", err)
		return err
	}
	return nil
}

// persistFailure marks the document failed and records the reason in metadata.
// Best effort: a second failure here has nowhere useful to go but the log.
func (s *service) persistFailure(ctx context.Context, log *logger_i.Logger, doc docmodel.Document, reason string) {
	doc.AIStatus = docmodel.AIStatusFailed
	doc.AIMetadata = &docmodel.Metadata{Error: reason}
	doc.AnalyzedAt = time.Now().UTC()
	if err := s.documents.SaveDocument(ctx, doc); err != nil {
		log.Error("could not persist failure state", "error", err)
	}
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func (s *service) executeBackfillStep(ctx context.Context, log *logger_i.Logger, caseId string, meta docmodel.Metadata) []string {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("claim_backfill", time.Since(start)) }()

	// Claim rows are created by case intake; a case without one gets no
	// backfill, the pipeline never inserts.
	claim, found := s.claims.GetClaimDetail(ctx, caseId)
	if !found {
		log.Debug("no claim detail row for case, skipping backfill", "caseId", caseId)
		return nil
	}

	updated := ApplyClaimBackfill(&claim, meta)
	if len(updated) == 0 {
		return nil
	}

	if err := s.claims.SaveClaimDetail(ctx, claim); err != nil {
		log.Error("claim backfill save failed", "caseId", caseId, "error", err)
		return nil
	}
	log.Info("claim details backfilled", "caseId", caseId, "fields", strings.Join(updated, ","))
	return updated
}
