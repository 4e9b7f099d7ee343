package extract

import (
	"regexp"
	"sort"
	"strings"
)

// rule is one entry in an ordered extraction table for a single field.
// Tables are evaluated first-match-wins, most specific pattern first.
type rule struct {
	name     string
	re       *regexp.Regexp
	priority int
}

func firstMatch(rules []rule, text string) string {
	for _, r := range rules {
		if m := r.re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func sortRules(rules []rule) []rule {
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].priority < rules[j].priority })
	return rules
}

// datePat matches the same three shapes the generic date extractor unions:
// slash-numeric, month-name-numeric and dash-numeric.
const datePat = `(?:\d{1,2}/\d{1,2}/\d{2,4}|` + monthNamePat + `|\d{4}-\d{2}-\d{2}|\d{1,2}-\d{1,2}-\d{2,4})`

const monthNamePat = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+\d{1,2},?\s+\d{4}`

var policyNumberRules = sortRules([]rule{
	{
		name:     "labeled_policy_number",
		re:       regexp.MustCompile(`(?i:policy\s*(?:number|no\.?|#)\s*[:#]?\s*)([A-Z0-9][A-Z0-9-]{3,24})`),
		priority: 1,
	},
	{
		name:     "policy_prefix_token",
		re:       regexp.MustCompile(`(?i:policy\s*[:#]?\s+)([A-Z]{2,5}-?\d{3,12})\b`),
		priority: 2,
	},
	{
		name:     "standalone_pol_token",
		re:       regexp.MustCompile(`\b(POL-?[A-Z0-9][A-Z0-9-]{2,18})\b`),
		priority: 3,
	},
})

var claimNumberRules = sortRules([]rule{
	{
		name:     "labeled_claim_number",
		re:       regexp.MustCompile(`(?i:claim\s*(?:number|no\.?|#)\s*[:#]?\s*)([A-Z0-9][A-Z0-9-]{3,24})`),
		priority: 1,
	},
	{
		name:     "standalone_clm_token",
		re:       regexp.MustCompile(`\b(CLM-?[A-Z0-9][A-Z0-9-]{2,18})\b`),
		priority: 2,
	},
	{
		name:     "claim_prefix_token",
		re:       regexp.MustCompile(`(?i:claim\s*[:#]?\s+)([A-Z]{2,5}-?\d{3,12})\b`),
		priority: 3,
	},
})

var addressLabelRules = sortRules([]rule{
	{
		name:     "property_address_label",
		re:       regexp.MustCompile(`(?i:property\s+address\s*[:#-]?\s*)([^\n]+)`),
		priority: 1,
	},
	{
		name:     "loss_location_label",
		re:       regexp.MustCompile(`(?i:loss\s+location\s*[:#-]?\s*)([^\n]+)`),
		priority: 2,
	},
	{
		name:     "property_location_label",
		re:       regexp.MustCompile(`(?i:(?:property|insured|risk)\s+location\s*[:#-]?\s*)([^\n]+)`),
		priority: 3,
	},
	{
		name:     "insured_premises_label",
		re:       regexp.MustCompile(`(?i:insured\s+premises\s*[:#-]?\s*)([^\n]+)`),
		priority: 4,
	},
})

// standaloneAddressPattern is the unlabeled fallback: street number, street
// name with a recognizable suffix, city, two-letter state, ZIP.
var standaloneAddressPattern = regexp.MustCompile(
	`\b\d{1,6}\s+[A-Za-z0-9. ]+?` +
		`(?:Street|St\.?|Avenue|Ave\.?|Road|Rd\.?|Drive|Dr\.?|Lane|Ln\.?|Boulevard|Blvd\.?|Court|Ct\.?|Way|Place|Pl\.?|Circle|Cir\.?|Trail|Trl\.?)` +
		`[,.]?\s+[A-Za-z. ]+,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?\b`)

var keyDateRules = map[string][]rule{
	"date_of_loss": sortRules([]rule{
		{name: "date_of_loss_label", re: regexp.MustCompile(`(?i:date\s+of\s+loss\s*[:#-]?\s*)(` + datePat + `)`), priority: 1},
		{name: "loss_date_label", re: regexp.MustCompile(`(?i:loss\s+date\s*[:#-]?\s*)(` + datePat + `)`), priority: 2},
	}),
	"denial_date": sortRules([]rule{
		{name: "denial_date_label", re: regexp.MustCompile(`(?i:(?:date\s+of\s+denial|denial\s+date)\s*[:#-]?\s*)(` + datePat + `)`), priority: 1},
		{name: "denied_on", re: regexp.MustCompile(`(?i:denied\s+on\s+)(` + datePat + `)`), priority: 2},
	}),
	"inspection_date": sortRules([]rule{
		{name: "inspection_date_label", re: regexp.MustCompile(`(?i:inspection\s+date\s*[:#-]?\s*)(` + datePat + `)`), priority: 1},
		{name: "inspected_on", re: regexp.MustCompile(`(?i:inspect(?:ed|ion)\s+(?:on|scheduled\s+for)\s+)(` + datePat + `)`), priority: 2},
	}),
	"policy_period": sortRules([]rule{
		{name: "policy_period_label", re: regexp.MustCompile(`(?i:policy\s+period\s*[:#-]?\s*)(` + datePat + `\s*(?:-|to|through)\s*` + datePat + `)`), priority: 1},
	}),
}

const moneyPat = `\$?\s*([\d,]+(?:\.\d{1,2})?)`

var coverageRules = map[string][]rule{
	"dwelling": sortRules([]rule{
		{name: "coverage_a", re: regexp.MustCompile(`(?i:coverage\s+a\b[^$\d\n]*)` + moneyPat), priority: 1},
		{name: "dwelling_label", re: regexp.MustCompile(`(?i:dwelling\s*(?:coverage|limit)?\s*[:#-]?\s*)` + moneyPat), priority: 2},
	}),
	"other_structures": sortRules([]rule{
		{name: "coverage_b", re: regexp.MustCompile(`(?i:coverage\s+b\b[^$\d\n]*)` + moneyPat), priority: 1},
		{name: "other_structures_label", re: regexp.MustCompile(`(?i:other\s+structures?\s*(?:coverage|limit)?\s*[:#-]?\s*)` + moneyPat), priority: 2},
	}),
	"contents": sortRules([]rule{
		{name: "coverage_c", re: regexp.MustCompile(`(?i:coverage\s+c\b[^$\d\n]*)` + moneyPat), priority: 1},
		{name: "contents_label", re: regexp.MustCompile(`(?i:(?:contents|personal\s+property)\s*(?:coverage|limit)?\s*[:#-]?\s*)` + moneyPat), priority: 2},
	}),
	"loss_of_use": sortRules([]rule{
		{name: "coverage_d", re: regexp.MustCompile(`(?i:coverage\s+d\b[^$\d\n]*)` + moneyPat), priority: 1},
		{name: "loss_of_use_label", re: regexp.MustCompile(`(?i:(?:loss\s+of\s+use|additional\s+living\s+expenses?|ALE)\s*(?:coverage|limit)?\s*[:#-]?\s*)` + moneyPat), priority: 2},
	}),
	"deductible": sortRules([]rule{
		{name: "deductible_label", re: regexp.MustCompile(`(?i:deductible\s*(?:amount)?\s*[:#-]?\s*)` + moneyPat), priority: 1},
	}),
}
