package analysis_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/bart800/Denham-cms-sub000/internal/analysis"
	"github.com/bart800/Denham-cms-sub000/internal/analysis/ai"
	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

const denialText = "Dear Mr. Henderson,\n" +
	"We regret to inform you that your claim CLM-2024-555 under policy POL-99812 " +
	"has been denied due to flood exclusion. State Farm stands by this determination.\n" +
	"Sincerely, Dana Whitfield"

const estimateText = "Estimate prepared by Premier Roofing for hail damage repairs. " +
	"Total replacement cost: $42,500.00. Labor and materials are included across 37 line items."

func testContext() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestAnalyzeDocument_DenialLetter(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{
		Id:       "doc-1",
		CaseId:   "case-1",
		Filename: "denial.txt",
		AIStatus: docmodel.AIStatusPending,
	})
	claims := NewMockClaimStore(docmodel.ClaimDetail{CaseId: "case-1"})
	s := analysis.NewService(docs, claims, &MockStorage{}, nil, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	if outcome.DocType != "denial_letter" {
		t.Errorf("DocType = %q, want denial_letter", outcome.DocType)
	}
	if outcome.Metadata.ClaimNumber != "CLM-2024-555" {
		t.Errorf("ClaimNumber = %q", outcome.Metadata.ClaimNumber)
	}
	if outcome.Metadata.PolicyNumber != "POL-99812" {
		t.Errorf("PolicyNumber = %q", outcome.Metadata.PolicyNumber)
	}
	if outcome.Metadata.Insurer != "State Farm" {
		t.Errorf("Insurer = %q", outcome.Metadata.Insurer)
	}
	if outcome.Metadata.DenialInfo == nil || outcome.Metadata.DenialInfo.DenialReasons[0] != "flood exclusion" {
		t.Errorf("DenialInfo = %+v", outcome.Metadata.DenialInfo)
	}
	if !strings.Contains(outcome.Summary, "denial letter") {
		t.Errorf("Summary = %q", outcome.Summary)
	}
	if outcome.PersistenceErr != nil {
		t.Errorf("unexpected persistence error: %v", outcome.PersistenceErr)
	}

	saved, _ := docs.GetDocument(testContext(), "doc-1")
	if saved.AIStatus != docmodel.AIStatusCompleted {
		t.Errorf("persisted status = %q, want completed", saved.AIStatus)
	}
	if saved.AIMetadata == nil || saved.DocType != "denial_letter" {
		t.Errorf("persisted document incomplete: %+v", saved)
	}
	if saved.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt not set")
	}

	claim, found := claims.GetClaimDetail(testContext(), "case-1")
	if !found {
		t.Fatal("seeded claim detail row went missing")
	}
	if claim.PolicyNumber != "POL-99812" || claim.ClaimNumber != "CLM-2024-555" {
		t.Errorf("claim backfill wrong: %+v", claim)
	}

	updated := strings.Join(outcome.ClaimDetailsUpdated, ",")
	if !strings.Contains(updated, "policy_number") || !strings.Contains(updated, "claim_number") {
		t.Errorf("ClaimDetailsUpdated = %v", outcome.ClaimDetailsUpdated)
	}
}

func TestAnalyzeDocument_EstimateInlineText(t *testing.T) {
	s := analysis.NewService(NewMockDocumentStore(), NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{Text: estimateText})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	if outcome.DocType != "estimate" {
		t.Errorf("DocType = %q, want estimate", outcome.DocType)
	}
	info := outcome.Metadata.EstimateInfo
	if info == nil {
		t.Fatal("EstimateInfo missing")
	}
	if info.TotalAmount != 42500 {
		t.Errorf("TotalAmount = %v, want 42500", info.TotalAmount)
	}
	if info.LineItemCount != 37 {
		t.Errorf("LineItemCount = %d, want 37", info.LineItemCount)
	}
	if info.ContractorName != "Premier Roofing" {
		t.Errorf("ContractorName = %q", info.ContractorName)
	}
	if outcome.ClaimDetailsUpdated != nil {
		t.Errorf("no document, no backfill expected: %v", outcome.ClaimDetailsUpdated)
	}
}

func TestAnalyzeDocument_NoText(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", AIStatus: docmodel.AIStatusPending})
	s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	t.Run("Short inline text", func(t *testing.T) {
		_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: "   hi   "})
		if !errors.Is(err, analysis.ErrNoExtractableContent) {
			t.Fatalf("err = %v, want ErrNoExtractableContent", err)
		}

		saved, _ := docs.GetDocument(testContext(), "doc-1")
		if saved.AIStatus != docmodel.AIStatusFailed {
			t.Errorf("status = %q, want failed", saved.AIStatus)
		}
		if saved.AIMetadata == nil || saved.AIMetadata.Error == "" {
			t.Errorf("failure reason not recorded: %+v", saved.AIMetadata)
		}
	})

	t.Run("No document either", func(t *testing.T) {
		_, err := s.AnalyzeDocument(testContext(), analysis.Request{Text: "short"})
		if !errors.Is(err, analysis.ErrNoExtractableContent) {
			t.Errorf("err = %v, want ErrNoExtractableContent", err)
		}
	})
}

func TestAnalyzeDocument_DocumentNotFound(t *testing.T) {
	s := analysis.NewService(NewMockDocumentStore(), NewMockClaimStore(), &MockStorage{}, nil, nil, nil)
	_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "ghost"})
	if !errors.Is(err, analysis.ErrDocumentNotFound) {
		t.Errorf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestAnalyzeDocument_AlreadyProcessing(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", AIStatus: docmodel.AIStatusProcessing})
	s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText})
	if !errors.Is(err, analysis.ErrAlreadyProcessing) {
		t.Fatalf("err = %v, want ErrAlreadyProcessing", err)
	}

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText, Force: true})
	if err != nil {
		t.Fatalf("force re-run failed: %v", err)
	}
	if outcome.DocType != "denial_letter" {
		t.Errorf("DocType = %q", outcome.DocType)
	}
}

func TestAnalyzeDocument_NonDestructiveBackfill(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", CaseId: "case-1", AIStatus: docmodel.AIStatusPending})
	claims := NewMockClaimStore(docmodel.ClaimDetail{CaseId: "case-1", PolicyNumber: "EXISTING-1"})
	s := analysis.NewService(docs, claims, &MockStorage{}, nil, nil, nil)

	text := "Correspondence regarding claim CLM-9999 under policy POL-2222. Dear client, thank you for your patience."
	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: text})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	claim, _ := claims.GetClaimDetail(testContext(), "case-1")
	if claim.PolicyNumber != "EXISTING-1" {
		t.Errorf("populated policy number was overwritten: %q", claim.PolicyNumber)
	}
	if claim.ClaimNumber != "CLM-9999" {
		t.Errorf("blank claim number not filled: %q", claim.ClaimNumber)
	}

	for _, f := range outcome.ClaimDetailsUpdated {
		if f == "policy_number" {
			t.Error("policy_number reported as updated despite being populated")
		}
	}
}

func TestAnalyzeDocument_NoClaimRowNoBackfill(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", CaseId: "case-1", AIStatus: docmodel.AIStatusPending})
	claims := NewMockClaimStore()
	s := analysis.NewService(docs, claims, &MockStorage{}, nil, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	if claim, found := claims.GetClaimDetail(testContext(), "case-1"); found {
		t.Errorf("backfill inserted a claim detail row for a case that had none: %+v", claim)
	}
	if outcome.ClaimDetailsUpdated != nil {
		t.Errorf("ClaimDetailsUpdated = %v, want none without an existing row", outcome.ClaimDetailsUpdated)
	}
}

func TestAnalyzeDocument_RerunRequiresForce(t *testing.T) {
	for _, status := range []docmodel.AIStatus{docmodel.AIStatusCompleted, docmodel.AIStatusFailed} {
		t.Run(string(status), func(t *testing.T) {
			docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", AIStatus: status})
			s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

			_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText})
			if !errors.Is(err, analysis.ErrAlreadyAnalyzed) {
				t.Fatalf("err = %v, want ErrAlreadyAnalyzed for %s without force", err, status)
			}

			outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText, Force: true})
			if err != nil {
				t.Fatalf("force re-run failed: %v", err)
			}
			if outcome.DocType != "denial_letter" {
				t.Errorf("DocType = %q", outcome.DocType)
			}

			saved, _ := docs.GetDocument(testContext(), "doc-1")
			if saved.AIStatus != docmodel.AIStatusCompleted {
				t.Errorf("status after force re-run = %q, want completed", saved.AIStatus)
			}
		})
	}
}

func TestAnalyzeDocument_ExtractedTextCapKeepsRunesWhole(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", AIStatus: docmodel.AIStatusPending})
	s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	// 20,000 three-byte runes; the persistence cap lands mid-rune
	text := strings.Repeat("€", 20000)
	_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: text})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}

	saved, _ := docs.GetDocument(testContext(), "doc-1")
	if len(saved.AIExtractedText) > config.ExtractedTextCap {
		t.Errorf("persisted text length %d exceeds cap", len(saved.AIExtractedText))
	}
	if !utf8.ValidString(saved.AIExtractedText) {
		t.Error("persisted text is not valid UTF-8")
	}
}

func TestAnalyzeDocument_AIGate(t *testing.T) {
	run := func(confidence float64) *analysis.Outcome {
		provider := &MockProvider{OnAnalyze: func(ctx context.Context, text, filename string) (*ai.Insights, error) {
			return &ai.Insights{Category: "policy", Confidence: confidence, Summary: "ai summary"}, nil
		}}
		s := analysis.NewService(NewMockDocumentStore(), NewMockClaimStore(), &MockStorage{}, provider, nil, nil)
		outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{Text: denialText})
		if err != nil {
			t.Fatalf("AnalyzeDocument failed: %v", err)
		}
		return outcome
	}

	t.Run("Low confidence keeps pattern category", func(t *testing.T) {
		outcome := run(0.5)
		if outcome.AICategory != "denial_letter" {
			t.Errorf("AICategory = %q, want pattern category at confidence 0.5", outcome.AICategory)
		}
		if !outcome.Metadata.AIPowered {
			t.Error("ai_powered must be set even below the gate")
		}
		if outcome.Metadata.AISummary != "ai summary" {
			t.Errorf("AISummary = %q", outcome.Metadata.AISummary)
		}
		if outcome.Summary == "ai summary" {
			t.Error("deterministic summary must not be replaced by the AI one")
		}
	})

	t.Run("High confidence overrides category", func(t *testing.T) {
		outcome := run(0.9)
		if outcome.AICategory != "policy" {
			t.Errorf("AICategory = %q, want policy at confidence 0.9", outcome.AICategory)
		}
		if outcome.DocType != "denial_letter" {
			t.Errorf("pattern DocType must stay, got %q", outcome.DocType)
		}
	})
}

func TestAnalyzeDocument_AIFailureIsolated(t *testing.T) {
	provider := &MockProvider{OnAnalyze: func(ctx context.Context, text, filename string) (*ai.Insights, error) {
		return nil, errors.New("provider down")
	}}
	s := analysis.NewService(NewMockDocumentStore(), NewMockClaimStore(), &MockStorage{}, provider, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{Text: denialText})
	if err != nil {
		t.Fatalf("AI failure must not fail the run: %v", err)
	}
	if outcome.Metadata.AIPowered {
		t.Error("ai_powered set despite provider failure")
	}
	if outcome.DocType != "denial_letter" {
		t.Errorf("pattern results lost: %q", outcome.DocType)
	}
}

func TestAnalyzeDocument_AICacheHit(t *testing.T) {
	provider := &MockProvider{}
	cache := &MockResultCache{OnLookup: func(ctx context.Context, vector []float32) (*ai.Insights, bool) {
		return &ai.Insights{Category: "policy", Confidence: 0.95, Summary: "cached"}, true
	}}
	s := analysis.NewService(NewMockDocumentStore(), NewMockClaimStore(), &MockStorage{}, provider, &MockEmbedder{}, cache)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{Text: denialText})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}
	if atomic.LoadInt32(&provider.CallCount) != 0 {
		t.Errorf("provider called %d times despite cache hit", provider.CallCount)
	}
	if outcome.Metadata.AISummary != "cached" {
		t.Errorf("cached insights not merged: %q", outcome.Metadata.AISummary)
	}
	if outcome.AICategory != "policy" {
		t.Errorf("AICategory = %q", outcome.AICategory)
	}
}

func TestAnalyzeDocument_PersistenceFailureKeepsResults(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", CaseId: "case-1", AIStatus: docmodel.AIStatusPending})
	docs.OnSaveDocument = func(ctx context.Context, doc docmodel.Document) error {
		if doc.AIStatus == docmodel.AIStatusCompleted {
			return errors.New("redis write failed")
		}
		return nil
	}
	s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1", Text: denialText})
	if err != nil {
		t.Fatalf("persistence failure must not drop results: %v", err)
	}
	if outcome.PersistenceErr == nil {
		t.Fatal("expected a persistence error")
	}
	if outcome.DocType != "denial_letter" || outcome.Metadata.ClaimNumber != "CLM-2024-555" {
		t.Errorf("analysis results missing: %+v", outcome)
	}
	if outcome.ClaimDetailsUpdated != nil {
		t.Errorf("backfill must be skipped after persistence failure: %v", outcome.ClaimDetailsUpdated)
	}
}

func TestAnalyzeDocument_StoragePath(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{
		Id:          "doc-1",
		StoragePath: "cases/1/denial.txt",
		Extension:   "txt",
		AIStatus:    docmodel.AIStatusPending,
	})
	files := &MockStorage{OnDownload: func(ctx context.Context, path string) ([]byte, error) {
		if path != "cases/1/denial.txt" {
			t.Errorf("unexpected path %q", path)
		}
		return []byte(denialText), nil
	}}
	s := analysis.NewService(docs, NewMockClaimStore(), files, nil, nil, nil)

	outcome, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1"})
	if err != nil {
		t.Fatalf("AnalyzeDocument failed: %v", err)
	}
	if outcome.DocType != "denial_letter" {
		t.Errorf("DocType = %q", outcome.DocType)
	}
	if outcome.Metadata.ExtractionMethod != "text-layer" {
		t.Errorf("ExtractionMethod = %q", outcome.Metadata.ExtractionMethod)
	}
}

func TestAnalyzeDocument_StorageFailure(t *testing.T) {
	docs := NewMockDocumentStore(docmodel.Document{Id: "doc-1", StoragePath: "gone.txt", AIStatus: docmodel.AIStatusPending})
	s := analysis.NewService(docs, NewMockClaimStore(), &MockStorage{}, nil, nil, nil)

	_, err := s.AnalyzeDocument(testContext(), analysis.Request{DocumentId: "doc-1"})
	if err == nil {
		t.Fatal("expected an error for unreadable storage")
	}

	saved, _ := docs.GetDocument(testContext(), "doc-1")
	if saved.AIStatus != docmodel.AIStatusFailed {
		t.Errorf("status = %q, want failed", saved.AIStatus)
	}
}
