package analysis

import (
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// claimFields maps extraction output onto claim-detail columns. Each entry
// reads one value out of metadata and writes it only when the column is still
// blank; already-populated claim data is never overwritten.
var claimFields = []struct {
	name  string
	value func(docmodel.Metadata) string
	slot  func(*docmodel.ClaimDetail) *string
}{
	{
		name:  "policy_number",
		value: func(m docmodel.Metadata) string { return m.PolicyNumber },
		slot:  func(c *docmodel.ClaimDetail) *string { return &c.PolicyNumber },
	},
	{
		name:  "claim_number",
		value: func(m docmodel.Metadata) string { return m.ClaimNumber },
		slot:  func(c *docmodel.ClaimDetail) *string { return &c.ClaimNumber },
	},
	{
		name: "adjuster_name",
		value: func(m docmodel.Metadata) string {
			if m.Adjuster == nil {
				return ""
			}
			return m.Adjuster.Name
		},
		slot: func(c *docmodel.ClaimDetail) *string { return &c.AdjusterName },
	},
	{
		name: "adjuster_phone",
		value: func(m docmodel.Metadata) string {
			if m.Adjuster == nil {
				return ""
			}
			return m.Adjuster.Phone
		},
		slot: func(c *docmodel.ClaimDetail) *string { return &c.AdjusterPhone },
	},
	{
		name: "adjuster_email",
		value: func(m docmodel.Metadata) string {
			if m.Adjuster == nil {
				return ""
			}
			return m.Adjuster.Email
		},
		slot: func(c *docmodel.ClaimDetail) *string { return &c.AdjusterEmail },
	},
	{
		name:  "property_address",
		value: func(m docmodel.Metadata) string { return m.PropertyAddress },
		slot:  func(c *docmodel.ClaimDetail) *string { return &c.PropertyAddress },
	},
	{
		name: "date_denied",
		value: func(m docmodel.Metadata) string {
			if m.KeyDates == nil {
				return ""
			}
			return m.KeyDates.DenialDate
		},
		slot: func(c *docmodel.ClaimDetail) *string { return &c.DateDenied },
	},
	{
		name: "policy_limits",
		value: func(m docmodel.Metadata) string {
			if m.KeyDates == nil {
				return ""
			}
			return m.KeyDates.PolicyPeriod
		},
		slot: func(c *docmodel.ClaimDetail) *string { return &c.PolicyLimits },
	},
}

var claimAmountFields = []struct {
	name  string
	value func(*docmodel.CoverageAmounts) float64
	slot  func(*docmodel.ClaimDetail) *float64
}{
	{
		name:  "coverage_dwelling",
		value: func(c *docmodel.CoverageAmounts) float64 { return c.Dwelling },
		slot:  func(c *docmodel.ClaimDetail) *float64 { return &c.CoverageDwelling },
	},
	{
		name:  "coverage_other_structure",
		value: func(c *docmodel.CoverageAmounts) float64 { return c.OtherStructures },
		slot:  func(c *docmodel.ClaimDetail) *float64 { return &c.CoverageOtherStructure },
	},
	{
		name:  "coverage_contents",
		value: func(c *docmodel.CoverageAmounts) float64 { return c.Contents },
		slot:  func(c *docmodel.ClaimDetail) *float64 { return &c.CoverageContents },
	},
	{
		name:  "coverage_ale",
		value: func(c *docmodel.CoverageAmounts) float64 { return c.LossOfUse },
		slot:  func(c *docmodel.ClaimDetail) *float64 { return &c.CoverageALE },
	},
	{
		name:  "deductible",
		value: func(c *docmodel.CoverageAmounts) float64 { return c.Deductible },
		slot:  func(c *docmodel.ClaimDetail) *float64 { return &c.Deductible },
	},
}

// ApplyClaimBackfill fills blank claim columns from extraction metadata and
// returns the names of the columns it wrote, in table order.
func ApplyClaimBackfill(claim *docmodel.ClaimDetail, meta docmodel.Metadata) []string {
	var updated []string

	for _, f := range claimFields {
		v := f.value(meta)
		if v == "" {
			continue
		}
		if slot := f.slot(claim); *slot == "" {
			*slot = v
			updated = append(updated, f.name)
		}
	}

	if meta.Coverage != nil {
		for _, f := range claimAmountFields {
			v := f.value(meta.Coverage)
			if v == 0 {
				continue
			}
			if slot := f.slot(claim); *slot == 0 {
				*slot = v
				updated = append(updated, f.name)
			}
		}
	}
	return updated
}
