package analysis

import (
	"reflect"
	"testing"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

func TestApplyClaimBackfill(t *testing.T) {
	meta := docmodel.Metadata{
		PolicyNumber:    "POL-2",
		ClaimNumber:     "CLM-2",
		PropertyAddress: "412 Palmetto Court, Tampa, FL 33602",
		Adjuster:        &docmodel.AdjusterContact{Name: "Dana Whitfield", Email: "dana@carrier.com"},
		KeyDates:        &docmodel.KeyDates{DenialDate: "04/02/2024"},
		Coverage:        &docmodel.CoverageAmounts{Dwelling: 250000, Deductible: 2500},
	}

	t.Run("Fills only blank columns", func(t *testing.T) {
		claim := docmodel.ClaimDetail{CaseId: "case-1", PolicyNumber: "POL-1", CoverageDwelling: 100000}
		updated := ApplyClaimBackfill(&claim, meta)

		if claim.PolicyNumber != "POL-1" {
			t.Errorf("populated policy number overwritten: %q", claim.PolicyNumber)
		}
		if claim.CoverageDwelling != 100000 {
			t.Errorf("populated coverage overwritten: %v", claim.CoverageDwelling)
		}
		if claim.ClaimNumber != "CLM-2" || claim.AdjusterName != "Dana Whitfield" {
			t.Errorf("blank columns not filled: %+v", claim)
		}
		if claim.DateDenied != "04/02/2024" || claim.Deductible != 2500 {
			t.Errorf("blank columns not filled: %+v", claim)
		}

		want := []string{"claim_number", "adjuster_name", "adjuster_email", "property_address", "date_denied", "deductible"}
		if !reflect.DeepEqual(updated, want) {
			t.Errorf("updated = %v, want %v", updated, want)
		}
	})

	t.Run("Empty metadata updates nothing", func(t *testing.T) {
		claim := docmodel.ClaimDetail{CaseId: "case-1"}
		if updated := ApplyClaimBackfill(&claim, docmodel.Metadata{}); updated != nil {
			t.Errorf("updated = %v, want none", updated)
		}
	})

	t.Run("Fully populated claim untouched", func(t *testing.T) {
		claim := docmodel.ClaimDetail{
			CaseId:           "case-1",
			PolicyNumber:     "A",
			ClaimNumber:      "B",
			AdjusterName:     "C",
			AdjusterPhone:    "D",
			AdjusterEmail:    "E",
			PropertyAddress:  "F",
			DateDenied:       "G",
			PolicyLimits:     "H",
			CoverageDwelling: 1, CoverageOtherStructure: 2, CoverageContents: 3, CoverageALE: 4, Deductible: 5,
		}
		before := claim
		if updated := ApplyClaimBackfill(&claim, meta); updated != nil {
			t.Errorf("updated = %v, want none", updated)
		}
		if claim != before {
			t.Errorf("claim mutated: %+v", claim)
		}
	})
}
