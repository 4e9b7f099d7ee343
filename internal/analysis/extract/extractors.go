// Package extract is the pattern extraction engine: a set of independent pure
// functions over plain text, each producing one typed field or nothing. No
// extractor depends on another extractor's output.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

var (
	amountPattern = regexp.MustCompile(`\$\s?\d[\d,]*(?:\.\d{1,2})?`)

	slashDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)
	monthDatePattern = regexp.MustCompile(`\b` + monthNamePat)
	dashDatePattern  = regexp.MustCompile(`\b(?:\d{4}-\d{2}-\d{2}|\d{1,2}-\d{1,2}-\d{2,4})\b`)

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}`)

	letterheadPattern = regexp.MustCompile(`(?m)^([A-Z][A-Za-z&.,'-]*(?:\s+[A-Za-z&.,'-]+)*\s+(?:Insurance|Mutual|Indemnity|Casualty|Fire)(?:\s+(?:Company|Co\.?|Group|Corp\.?))?)\s*$`)

	// 2-4 capitalized tokens following a salutation or role anchor
	namePat       = `([A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*){1,3})`
	partyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Dear\s+(?:Mr\.|Ms\.|Mrs\.|Dr\.)?\s*` + namePat),
		regexp.MustCompile(`(?i:adjuster)\s*:\s*` + namePat),
		regexp.MustCompile(`(?i:insured)\s*:\s*` + namePat),
		regexp.MustCompile(`(?i:claimant)\s*:\s*` + namePat),
		regexp.MustCompile(`(?i:att(?:n|ention))\s*:?\s*` + namePat),
		regexp.MustCompile(`Sincerely,\s*` + namePat),
	}

	adjusterKeywordPattern = regexp.MustCompile(`(?i)adjuster|examiner|claims?\s+representative`)
	adjusterNamePattern    = regexp.MustCompile(`(?i:(?:adjuster|examiner|representative))\s*:?\s*([A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){1,2})`)
)

// adjusterContextRadius bounds how far from an adjuster keyword a contact
// detail may sit and still be attributed to the adjuster.
const adjusterContextRadius = 200

// Amounts returns the de-duplicated dollar tokens in first-seen order and the
// parsed values sorted descending. Both derive from the same normalized set,
// so repeated runs over identical text are stable.
func Amounts(text string) ([]string, []float64) {
	matches := amountPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(matches))
	var normalized []string
	for _, m := range matches {
		n := normalizeAmount(m)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}

	var values []float64
	for _, n := range normalized {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	return normalized, values
}

func normalizeAmount(token string) string {
	token = strings.TrimPrefix(token, "$")
	token = strings.ReplaceAll(token, ",", "")
	return strings.TrimSpace(token)
}

// Dates unions the three date shapes and de-duplicates; ordering carries no
// meaning beyond scan order.
func Dates(text string) []string {
	var all []string
	for _, p := range []*regexp.Regexp{slashDatePattern, monthDatePattern, dashDatePattern} {
		all = append(all, p.FindAllString(text, -1)...)
	}
	return dedupe(all)
}

// Parties collects capitalized name runs anchored to salutation and role
// keywords.
func Parties(text string) []string {
	var names []string
	for _, p := range partyPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			names = append(names, strings.TrimSpace(m[1]))
		}
	}
	return dedupe(names)
}

func PolicyNumber(text string) string {
	return firstMatch(policyNumberRules, text)
}

func ClaimNumber(text string) string {
	return firstMatch(claimNumberRules, text)
}

// Insurer resolves a carrier by exact case-insensitive substring match against
// the known-carrier list, falling back to a letterhead heuristic.
func Insurer(text string) string {
	lower := strings.ToLower(text)
	for _, carrier := range knownCarriers {
		if strings.Contains(lower, strings.ToLower(carrier)) {
			return carrier
		}
	}
	if m := letterheadPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// PropertyAddress tries the labeled rules first; a labeled hit must contain a
// digit and be longer than 10 chars to count. Otherwise the standalone
// street-address shape is used.
func PropertyAddress(text string) string {
	if candidate := firstMatch(addressLabelRules, text); candidate != "" {
		candidate = strings.TrimRight(candidate, " .,;")
		if len(candidate) > 10 && strings.ContainsAny(candidate, "0123456789") {
			return candidate
		}
	}
	return standaloneAddressPattern.FindString(text)
}

// Adjuster extracts name, phone and email independently, each preferring a
// match near an adjuster/examiner/representative keyword. Email falls back to
// any email in the document. Returns nil when nothing was found.
func Adjuster(text string) *docmodel.AdjusterContact {
	window := text
	if loc := adjusterKeywordPattern.FindStringIndex(text); loc != nil {
		start := loc[0] - adjusterContextRadius
		if start < 0 {
			start = 0
		}
		end := loc[1] + adjusterContextRadius
		if end > len(text) {
			end = len(text)
		}
		window = text[start:end]
	}

	contact := docmodel.AdjusterContact{}
	if m := adjusterNamePattern.FindStringSubmatch(window); m != nil {
		contact.Name = strings.TrimSpace(m[1])
	}
	contact.Phone = phonePattern.FindString(window)
	contact.Email = emailPattern.FindString(window)
	if contact.Email == "" {
		contact.Email = emailPattern.FindString(text)
	}

	if contact.Name == "" && contact.Phone == "" && contact.Email == "" {
		return nil
	}
	return &contact
}

// KeyDates runs the labeled-context date rules; each field is independent of
// the generic date extractor.
func KeyDates(text string) *docmodel.KeyDates {
	kd := docmodel.KeyDates{
		DateOfLoss:     firstMatch(keyDateRules["date_of_loss"], text),
		DenialDate:     firstMatch(keyDateRules["denial_date"], text),
		InspectionDate: firstMatch(keyDateRules["inspection_date"], text),
		PolicyPeriod:   firstMatch(keyDateRules["policy_period"], text),
	}
	if kd == (docmodel.KeyDates{}) {
		return nil
	}
	return &kd
}

// Coverage extracts the five labeled coverage figures; nil when none matched.
func Coverage(text string) *docmodel.CoverageAmounts {
	cov := docmodel.CoverageAmounts{
		Dwelling:        coverageValue("dwelling", text),
		OtherStructures: coverageValue("other_structures", text),
		Contents:        coverageValue("contents", text),
		LossOfUse:       coverageValue("loss_of_use", text),
		Deductible:      coverageValue("deductible", text),
	}
	if cov == (docmodel.CoverageAmounts{}) {
		return nil
	}
	return &cov
}

func coverageValue(field string, text string) float64 {
	raw := firstMatch(coverageRules[field], text)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
