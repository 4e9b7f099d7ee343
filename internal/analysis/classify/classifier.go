// Package classify assigns a document type by counting hand-curated keyword
// hits per label. Cheap, deterministic and explainable; no model involved.
package classify

import "strings"

const Unknown = "unknown"

type bucket struct {
	label    string
	keywords []string
}

// taxonomy order doubles as the tie-break: the first label with the max score
// wins.
var taxonomy = []bucket{
	{
		label: "denial_letter",
		keywords: []string{
			"denied", "denial", "not covered", "exclusion", "excluded",
			"regret to inform", "unable to provide coverage", "claim has been rejected",
		},
	},
	{
		label: "estimate",
		keywords: []string{
			"estimate", "line item", "labor", "materials", "total cost",
			"replacement cost value", "scope of work", "unit price",
		},
	},
	{
		label: "policy",
		keywords: []string{
			"declarations", "policy period", "premium", "insuring agreement",
			"conditions", "endorsement", "coverage a", "named insured",
		},
	},
	{
		label: "pleading",
		keywords: []string{
			"plaintiff", "defendant", "complaint", "motion", "cause of action",
			"jurisdiction", "hereby", "circuit court",
		},
	},
	{
		label: "correspondence",
		keywords: []string{
			"dear", "sincerely", "regards", "thank you for", "please find",
			"we are writing", "follow up",
		},
	},
	{
		label: "inspection_report",
		keywords: []string{
			"inspection", "inspected", "observations", "site visit",
			"damage assessment", "photographs", "findings",
		},
	},
	{
		label: "proof_of_loss",
		keywords: []string{
			"proof of loss", "sworn", "notary", "amount claimed",
			"subscribed", "affirm",
		},
	},
}

// Labels returns the taxonomy labels in declaration order.
func Labels() []string {
	out := make([]string, len(taxonomy))
	for i, b := range taxonomy {
		out[i] = b.label
	}
	return out
}

// Classify scores each label by how many of its keywords occur in the text
// (case-insensitive substring). All-zero scores classify as Unknown.
func Classify(text string) string {
	lower := strings.ToLower(text)

	best := Unknown
	bestScore := 0
	for _, b := range taxonomy {
		score := 0
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = b.label
			bestScore = score
		}
	}
	return best
}
