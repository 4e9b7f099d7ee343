package extract

import (
	"reflect"
	"testing"
)

func TestDenialInfo(t *testing.T) {
	t.Run("Reason and citations", func(t *testing.T) {
		text := "Your claim has been denied due to flood exclusion. See Exclusion 4(b) and Section 12 of your policy."
		info := DenialInfo(text)

		if !reflect.DeepEqual(info.DenialReasons, []string{"flood exclusion"}) {
			t.Errorf("DenialReasons = %v", info.DenialReasons)
		}
		wantCitations := []string{"4(b)", "12"}
		if !reflect.DeepEqual(info.PolicyCitations, wantCitations) {
			t.Errorf("PolicyCitations = %v, want %v", info.PolicyCitations, wantCitations)
		}
	})

	t.Run("Multiple reasons", func(t *testing.T) {
		text := "The loss is not covered because of late notice; additionally the damage is excluded under the wear and tear provision"
		info := DenialInfo(text)
		if len(info.DenialReasons) != 2 {
			t.Fatalf("expected 2 reasons, got %v", info.DenialReasons)
		}
	})

	t.Run("Placeholder when no reason stated", func(t *testing.T) {
		info := DenialInfo("We regret to inform you that your claim is denied.")
		if !reflect.DeepEqual(info.DenialReasons, []string{noDenialReasonFound}) {
			t.Errorf("expected placeholder reason, got %v", info.DenialReasons)
		}
	})
}

func TestEstimateInfo(t *testing.T) {
	t.Run("Full estimate", func(t *testing.T) {
		text := "Estimate prepared by Premier Roofing. Total: $42,500.00. Materials $18,200.00 and labor $12,300.00 across 37 line items."
		info := EstimateInfo(text)
		if info == nil {
			t.Fatal("expected estimate info, got nil")
		}
		if info.TotalAmount != 42500 {
			t.Errorf("TotalAmount = %v, want 42500", info.TotalAmount)
		}
		if info.LineItemCount != 37 {
			t.Errorf("LineItemCount = %d, want 37", info.LineItemCount)
		}
		if info.ContractorName != "Premier Roofing" {
			t.Errorf("ContractorName = %q, want %q", info.ContractorName, "Premier Roofing")
		}
		if !reflect.DeepEqual(info.Amounts, []float64{42500, 18200, 12300}) {
			t.Errorf("Amounts = %v", info.Amounts)
		}
	})

	t.Run("Amounts capped at ten", func(t *testing.T) {
		text := "$11 $10 $9 $8 $7 $6 $5 $4 $3 $2 $1 $12"
		info := EstimateInfo(text)
		if info == nil {
			t.Fatal("expected estimate info")
		}
		if len(info.Amounts) != 10 {
			t.Errorf("expected 10 amounts kept, got %d", len(info.Amounts))
		}
		if info.TotalAmount != 12 {
			t.Errorf("TotalAmount = %v, want the largest amount 12", info.TotalAmount)
		}
	})

	t.Run("Nil without amounts", func(t *testing.T) {
		if info := EstimateInfo("scope of work with no pricing yet"); info != nil {
			t.Errorf("expected nil, got %+v", info)
		}
	})
}
