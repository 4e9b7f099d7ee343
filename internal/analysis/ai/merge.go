package ai

import (
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// Merge applies AI insights onto a copy of the pattern-extraction metadata
// and returns it together with the category the AI proposes for the
// externally visible ai_category field. The proposed category is empty unless
// the model's confidence beats the gate; summary, findings, dates and amounts
// attach regardless, under the ai_powered marker.
func Merge(meta docmodel.Metadata, insights *Insights, confidenceGate float64) (docmodel.Metadata, string) {
	if insights == nil {
		return meta, ""
	}

	meta.AIPowered = true
	meta.AISummary = insights.Summary
	meta.AIKeyFindings = insights.KeyFindings
	meta.AIKeyDates = insights.KeyDates
	meta.AIAmounts = insights.Amounts

	category := ""
	if insights.Category != "" && insights.Confidence > confidenceGate {
		category = insights.Category
	}
	return meta, category
}
