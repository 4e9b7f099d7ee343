package extract

import (
	"github.com/bart800/Denham-cms-sub000/internal/domain/docmodel"
)

// Scan composes every generic extractor into one metadata value. The
// extractors are independent, so ordering here is cosmetic.
func Scan(text string) docmodel.Metadata {
	amountStrings, amounts := Amounts(text)
	return docmodel.Metadata{
		AmountStrings:   amountStrings,
		Amounts:         amounts,
		Dates:           Dates(text),
		Parties:         Parties(text),
		PolicyNumber:    PolicyNumber(text),
		ClaimNumber:     ClaimNumber(text),
		Insurer:         Insurer(text),
		PropertyAddress: PropertyAddress(text),
		Adjuster:        Adjuster(text),
		KeyDates:        KeyDates(text),
		Coverage:        Coverage(text),
	}
}
