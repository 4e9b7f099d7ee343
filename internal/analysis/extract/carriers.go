package extract

// knownCarriers is the fixed list matched case-insensitively against document
// text. Order matters: more specific names come before substrings of other
// names so "American Family" is tried before "American Integrity" etc.
var knownCarriers = []string{
	"State Farm",
	"Liberty Mutual",
	"Allstate",
	"GEICO",
	"Progressive",
	"USAA",
	"Farmers Insurance",
	"Nationwide",
	"Travelers",
	"American Family",
	"American Integrity",
	"American Strategic",
	"Chubb",
	"Erie Insurance",
	"Auto-Owners",
	"The Hartford",
	"Safeco",
	"Mercury Insurance",
	"Amica",
	"MetLife",
	"AIG",
	"Zurich",
	"Berkshire Hathaway",
	"The Hanover",
	"Cincinnati Insurance",
	"Westfield",
	"Grange Insurance",
	"Shelter Insurance",
	"Kemper",
	"National General",
	"Esurance",
	"Homesite",
	"Lemonade",
	"Hippo",
	"Universal Property",
	"Citizens Property",
	"Tower Hill",
	"Heritage Insurance",
	"Florida Peninsula",
	"Security First",
	"Southern Fidelity",
	"St. Johns Insurance",
	"People's Trust",
	"TypTap",
	"Slide Insurance",
	"SageSure",
}
