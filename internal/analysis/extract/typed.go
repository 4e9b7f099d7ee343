package extract

import (
	"regexp"
	"strings"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// Type-specific extractors. These only run once the classifier has picked the
// matching document type; they still read nothing but the text.

var (
	denialReasonPattern = regexp.MustCompile(`(?i:(?:denied|not\s+covered|excluded)\s*(?:because(?:\s+of)?|due\s+to|based\s+on|under|as)\s+)([^.;\n]{3,200})`)
	citationPattern     = regexp.MustCompile(`(?i:(?:section|provision|exclusion|paragraph|endorsement)\s+)([A-Z0-9][A-Za-z0-9().-]*)`)

	lineItemPattern   = regexp.MustCompile(`(\d{1,4})\s+line\s+items?`)
	contractorPattern = regexp.MustCompile(`(?i:(?:prepared\s+by|estimate\s+(?:from|by)|contractor|submitted\s+by)\s*:?\s+)([A-Z][A-Za-z&'-]*(?:\s+[A-Z][A-Za-z&'-]*){0,4})`)
)

// placeholder used when a denial letter names no reason; downstream consumers
// always get a non-empty reasons list for this type.
const noDenialReasonFound = "No explicit denial reason stated in document"

// DenialInfo pulls every "denied/excluded because ..." clause plus citations
// to policy sections or provisions.
func DenialInfo(text string) *docmodel.DenialInfo {
	info := docmodel.DenialInfo{}

	for _, m := range denialReasonPattern.FindAllStringSubmatch(text, -1) {
		reason := strings.TrimSpace(m[1])
		if reason != "" {
			info.DenialReasons = append(info.DenialReasons, reason)
		}
	}
	if len(info.DenialReasons) == 0 {
		info.DenialReasons = []string{noDenialReasonFound}
	}

	for _, m := range citationPattern.FindAllStringSubmatch(text, -1) {
		info.PolicyCitations = append(info.PolicyCitations, strings.TrimSpace(m[1]))
	}
	info.PolicyCitations = dedupe(info.PolicyCitations)
	return &info
}

// EstimateInfo ranks the document's dollar amounts: the largest is the
// estimate total, the top 10 are kept, and line-item count and contractor are
// optional extras.
func EstimateInfo(text string) *docmodel.EstimateInfo {
	_, amounts := Amounts(text)
	if len(amounts) == 0 {
		return nil
	}

	info := docmodel.EstimateInfo{TotalAmount: amounts[0]}
	if len(amounts) > 10 {
		amounts = amounts[:10]
	}
	info.Amounts = amounts

	if m := lineItemPattern.FindStringSubmatch(text); m != nil {
		count := 0
		for _, c := range m[1] {
			count = count*10 + int(c-'0')
		}
		info.LineItemCount = count
	}
	if m := contractorPattern.FindStringSubmatch(text); m != nil {
		info.ContractorName = strings.TrimSpace(m[1])
	}
	return &info
}
