// Package summary builds the human-readable one-paragraph summary from the
// classifier label and extracted fields. Fully deterministic; the AI summary,
// when present, lives in metadata and never replaces this one.
package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bart800/Denham-cms-sub000/internal/config"
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// minFactCount is the point below which the raw-text excerpt fallback kicks in.
const minFactCount = 4

// Generate renders "This document is a {type}." plus known facts in fixed
// priority order, padding with a short excerpt from the text when few facts
// were extracted. Output is capped at config.SummaryMaxLength chars.
func Generate(docType string, meta docmodel.Metadata, text string) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("This document is a %s.", humanize(docType)))

	facts := 0
	addFact := func(sentence string) {
		parts = append(parts, sentence)
		facts++
	}

	if meta.Insurer != "" {
		addFact(fmt.Sprintf("Insurer: %s.", meta.Insurer))
	}
	if meta.PolicyNumber != "" {
		addFact(fmt.Sprintf("Policy number: %s.", meta.PolicyNumber))
	}
	if meta.ClaimNumber != "" {
		addFact(fmt.Sprintf("Claim number: %s.", meta.ClaimNumber))
	}
	if meta.DenialInfo != nil && len(meta.DenialInfo.DenialReasons) > 0 {
		addFact(fmt.Sprintf("Denial reason: %s.", meta.DenialInfo.DenialReasons[0]))
	} else if meta.EstimateInfo != nil && meta.EstimateInfo.TotalAmount > 0 {
		addFact(fmt.Sprintf("Estimate total: $%.2f.", meta.EstimateInfo.TotalAmount))
	}
	if meta.PropertyAddress != "" {
		addFact(fmt.Sprintf("Property address: %s.", meta.PropertyAddress))
	}

	if facts < minFactCount {
		parts = append(parts, excerpt(text, 2)...)
	}

	out := strings.Join(parts, " ")
	if len(out) > config.SummaryMaxLength {
		cut := config.SummaryMaxLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}

func humanize(docType string) string {
	if docType == "" {
		return "unknown"
	}
	return strings.ReplaceAll(docType, "_", " ")
}

// excerpt returns up to max "meaningful" sentences (longer than 20 chars)
// from the start of the text.
func excerpt(text string, max int) []string {
	var out []string
	for _, s := range strings.Split(text, ".") {
		s = strings.TrimSpace(s)
		if len(s) <= 20 {
			continue
		}
		out = append(out, s+".")
		if len(out) == max {
			break
		}
	}
	return out
}
