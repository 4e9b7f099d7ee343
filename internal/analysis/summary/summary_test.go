package summary

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

func TestGenerate_FactOrder(t *testing.T) {
	meta := docmodel.Metadata{
		Insurer:         "State Farm",
		PolicyNumber:    "POL-99812",
		ClaimNumber:     "CLM-2024-555",
		PropertyAddress: "412 Palmetto Court, Tampa, FL 33602",
		DenialInfo:      &docmodel.DenialInfo{DenialReasons: []string{"flood exclusion"}},
	}

	got := Generate("denial_letter", meta, "irrelevant body text")

	want := "This document is a denial letter. Insurer: State Farm. Policy number: POL-99812. " +
		"Claim number: CLM-2024-555. Denial reason: flood exclusion. " +
		"Property address: 412 Palmetto Court, Tampa, FL 33602."
	if got != want {
		t.Errorf("Generate() =\n%q\nwant\n%q", got, want)
	}
}

func TestGenerate_EstimateTotal(t *testing.T) {
	meta := docmodel.Metadata{
		Insurer:         "Allstate",
		PolicyNumber:    "HO-1",
		ClaimNumber:     "CLM-1",
		PropertyAddress: "1 Oak Street, Tampa, FL 33601",
		EstimateInfo:    &docmodel.EstimateInfo{TotalAmount: 42500},
	}

	got := Generate("estimate", meta, "")
	if !strings.Contains(got, "Estimate total: $42500.00.") {
		t.Errorf("expected estimate total fact, got %q", got)
	}
}

func TestGenerate_ExcerptFallback(t *testing.T) {
	text := "This letter concerns the hail storm last spring. The roof sustained considerable damage on the north slope. Call us."

	got := Generate("correspondence", docmodel.Metadata{}, text)

	if !strings.Contains(got, "This letter concerns the hail storm last spring.") {
		t.Errorf("expected first excerpt sentence, got %q", got)
	}
	if !strings.Contains(got, "The roof sustained considerable damage on the north slope.") {
		t.Errorf("expected second excerpt sentence, got %q", got)
	}
	if strings.Contains(got, "Call us") {
		t.Errorf("short sentences must be skipped, got %q", got)
	}
}

func TestGenerate_NoExcerptWhenEnoughFacts(t *testing.T) {
	meta := docmodel.Metadata{
		Insurer:         "GEICO",
		PolicyNumber:    "P-1",
		ClaimNumber:     "C-1",
		PropertyAddress: "2 Elm Street, Tampa, FL 33601",
	}
	got := Generate("policy", meta, "This body sentence should not appear in the summary output.")
	if strings.Contains(got, "This body sentence") {
		t.Errorf("excerpt must not be used with enough facts, got %q", got)
	}
}

func TestGenerate_Cap(t *testing.T) {
	got := Generate("unknown", docmodel.Metadata{}, strings.Repeat("very long filler text without periods ", 40))
	if len(got) > config.SummaryMaxLength {
		t.Errorf("summary length %d exceeds cap %d", len(got), config.SummaryMaxLength)
	}
}

func TestGenerate_CapOnRuneBoundary(t *testing.T) {
	got := Generate("unknown", docmodel.Metadata{}, strings.Repeat("€", 400)+".")
	if len(got) > config.SummaryMaxLength {
		t.Errorf("summary length %d exceeds cap %d", len(got), config.SummaryMaxLength)
	}
	if !utf8.ValidString(got) {
		t.Errorf("summary is not valid UTF-8 at the cap: %q", got[len(got)-4:])
	}
}

func TestGenerate_HumanizesDocType(t *testing.T) {
	got := Generate("inspection_report", docmodel.Metadata{}, "")
	if !strings.HasPrefix(got, "This document is a inspection report.") {
		t.Errorf("unexpected opening: %q", got)
	}
}
