// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/drivematch/pkg/types"
)

// fieldPattern pairs a compiled pattern with the setter it feeds. The
// extractor is a declarative table of these rather than a chain of
// conditionals, so individual patterns stay testable and new fields are a
// one-line addition.
type fieldPattern struct {
	re    *regexp.Regexp
	apply func(m []string, p *profiles)
}

// amount matches "$30,000", "30000", "$30k", "30.5k". Group 1 is the
// number, group 2 the optional k-suffix.
const amount = `\$?([0-9][0-9,]*(?:\.[0-9]+)?)\s*(k?)\b`

// parseAmount normalizes a matched amount, expanding the "$Nk" shorthand.
func parseAmount(num, suffix string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
	if err != nil {
		return 0
	}
	if suffix == "k" {
		v *= 1000
	}
	return v
}

var fieldPatterns = []fieldPattern{
	// --- budget ---
	{
		re: regexp.MustCompile(`(?:budget(?:\s+is)?|under|below|less than|spend|up to|max(?:imum)?(?:\s+price)?|afford)\s*(?:of\s+|about\s+|around\s+)?` + amount),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.user.BudgetMax = v
			}
		},
	},
	{
		re: regexp.MustCompile(amount + `\s*budget`),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.user.BudgetMax = v
			}
		},
	},
	{
		re: regexp.MustCompile(`budget(?:\s+is)?\s+(?:flexible|open|not (?:really )?an issue)|no (?:real |strict )?budget|money is no object|price is no(?:t an)? (?:object|issue)`),
		apply: func(m []string, p *profiles) {
			p.user.BudgetFlexible = true
		},
	},

	// --- passengers and family signals ---
	{
		re: regexp.MustCompile(`([0-9]+)\s*(?:passengers?|people|persons?|adults?|seats?)\b`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.user.Passengers = n
			}
		},
	},
	{
		re: regexp.MustCompile(`family of\s*([0-9]+)`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.user.Passengers = n
			}
			p.addNeed("family")
		},
	},
	{
		re: regexp.MustCompile(`\b(?:kids?|children|child seats?|car seats?|family)\b`),
		apply: func(m []string, p *profiles) {
			p.addNeed("family")
		},
	},
	{
		re: regexp.MustCompile(`\b(?:dogs?|pets?)\b`),
		apply: func(m []string, p *profiles) {
			p.addNeed("pets")
		},
	},

	// --- commute ---
	{
		re: regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)[-\s]*mile\s+commute`),
		apply: func(m []string, p *profiles) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
				p.user.CommuteMiles = v
			}
		},
	},
	{
		re: regexp.MustCompile(`(?:commute|drive)\s*(?:is|of)?\s*(?:about\s*|around\s*)?([0-9]+(?:\.[0-9]+)?)\s*miles?\b`),
		apply: func(m []string, p *profiles) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
				p.user.CommuteMiles = v
			}
		},
	},

	// --- explicit top priority ---
	{
		re: regexp.MustCompile(`([a-z][a-z\s-]+?)\s+is\s+(?:my\s+|the\s+)?(?:top priority|most important|more important|what matters most)`),
		apply: func(m []string, p *profiles) {
			if d := resolvePriorityPhrase(m[1]); d != types.DimensionNone {
				p.setTopPriority(d)
			}
		},
	},
	{
		re: regexp.MustCompile(`(?:most important|top priority|matters most)(?:\s+(?:to me|thing|for me))?\s+is\s+([a-z][a-z\s-]+)`),
		apply: func(m []string, p *profiles) {
			if d := resolvePriorityPhrase(m[1]); d != types.DimensionNone {
				p.setTopPriority(d)
			}
		},
	},

	// --- terrain ---
	{
		re: regexp.MustCompile(`off[-\s]?road|\btrails?\b|overlanding`),
		apply: func(m []string, p *profiles) {
			p.user.Terrain = types.TerrainOffroad
		},
	},
	{
		re: regexp.MustCompile(`highway|freeway|interstate`),
		apply: func(m []string, p *profiles) {
			p.user.Terrain = types.TerrainHighway
		},
	},
	{
		re: regexp.MustCompile(`\bcity\b|urban|downtown|stop[-\s]and[-\s]go`),
		apply: func(m []string, p *profiles) {
			p.user.Terrain = types.TerrainCity
		},
	},

	// --- specific needs ---
	{
		re: regexp.MustCompile(`\btow(?:ing)?\b|trailer|\bboat\b|camper`),
		apply: func(m []string, p *profiles) {
			p.addNeed("towing")
		},
	},
	{
		re: regexp.MustCompile(`\bsnow\b|winter|\bicy?\b`),
		apply: func(m []string, p *profiles) {
			p.addNeed("snow")
		},
	},
	{
		re: regexp.MustCompile(`cargo|luggage|\bgear\b|lots of space|room for`),
		apply: func(m []string, p *profiles) {
			p.addNeed("space")
		},
	},

	// --- income ---
	{
		re: regexp.MustCompile(`(?:income|salary)(?:\s+is)?(?:\s+(?:about|around))?\s*(?:of\s+)?` + amount + `(?:\s*(?:per|a|/)\s*(year|yr|annum|month|mo))?`),
		apply: func(m []string, p *profiles) {
			p.setIncome(parseAmount(m[1], m[2]), m[3])
		},
	},
	{
		re: regexp.MustCompile(amount + `\s*(?:(monthly|annual|yearly)\s+)?income\b`),
		apply: func(m []string, p *profiles) {
			p.setIncome(parseAmount(m[1], m[2]), m[3])
		},
	},
	{
		re: regexp.MustCompile(`(monthly|annual|yearly)\s+income(?:\s+is|\s+of)?\s*(?:about\s+|around\s+)?` + amount),
		apply: func(m []string, p *profiles) {
			p.setIncome(parseAmount(m[2], m[3]), m[1])
		},
	},
	{
		re: regexp.MustCompile(`(?:make|earn)s?\s*(?:about\s+|around\s+)?` + amount + `(?:\s*(?:per|a|/)\s*(year|yr|annum|month|mo))?`),
		apply: func(m []string, p *profiles) {
			p.setIncome(parseAmount(m[1], m[2]), m[3])
		},
	},

	// --- credit ---
	{
		re: regexp.MustCompile(`credit(?:\s*score)?(?:\s+is)?(?:\s+(?:about|around))?[^0-9a-z]{0,8}([0-9]{3})\b`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				p.setCreditScore(n)
			}
		},
	},
	{
		re: regexp.MustCompile(`([0-9]{3})\s*credit`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				p.setCreditScore(n)
			}
		},
	},
	{
		re: regexp.MustCompile(`credit(?:\s*(?:score|rating))?(?:\s+is)?\s+(?:pretty\s+|really\s+|very\s+)?(excellent|great|good|fair|average|ok|okay|bad|poor|terrible)`),
		apply: func(m []string, p *profiles) {
			p.setCreditBand(qualitativeBand(m[1]))
		},
	},
	{
		re: regexp.MustCompile(`(excellent|great|good|fair|average|ok|okay|bad|poor|terrible)\s+credit`),
		apply: func(m []string, p *profiles) {
			p.setCreditBand(qualitativeBand(m[1]))
		},
	},

	// --- down payment ---
	{
		re: regexp.MustCompile(amount + `\s*(?:dollars?\s*)?down(?:\s*payment)?\b`),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.financial.DownPayment = v
			}
		},
	},
	{
		re: regexp.MustCompile(`down\s*payment(?:\s+(?:of|is|around|about))?\s*` + amount),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.financial.DownPayment = v
			}
		},
	},

	// --- loan term ---
	{
		re: regexp.MustCompile(`([0-9]+)[-\s]*months?\s*(?:loan|term|financing)`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.financial.LoanTermMonths = n
			}
		},
	},
	{
		re: regexp.MustCompile(`([0-9]+)[-\s]*(?:year|yr)s?\s*(?:loan|term|financing)`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.financial.LoanTermMonths = n * 12
			}
		},
	},
	{
		re: regexp.MustCompile(`(?:loan|financing)\s*(?:term|for|of|over)?\s*([0-9]+)\s*months?\b`),
		apply: func(m []string, p *profiles) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.financial.LoanTermMonths = n
			}
		},
	},

	// --- trade-in ---
	{
		re: regexp.MustCompile(`trade[-\s]?in(?:\s+(?:value|worth))?(?:\s+(?:is|of|about|around))?\s*` + amount),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.financial.TradeInValue = v
			}
		},
	},
	{
		re: regexp.MustCompile(amount + `\s*(?:for\s+(?:my|the)\s+)?trade[-\s]?in\b`),
		apply: func(m []string, p *profiles) {
			if v := parseAmount(m[1], m[2]); v > 0 {
				p.financial.TradeInValue = v
			}
		},
	},
}

// priorityKeyword maps recognition patterns to the closed dimension
// taxonomy. Order matters: the first matching entry wins when resolving a
// free-text priority phrase.
type priorityKeyword struct {
	re  *regexp.Regexp
	dim types.Dimension
}

var priorityKeywords = []priorityKeyword{
	{regexp.MustCompile(`fuel[-\s]?effic\w*|gas mileage|\bmpg\b|fuel econom\w*|good on gas|\befficiency\b`), types.DimFuelEfficiency},
	{regexp.MustCompile(`\bsafety\b|\bsafe(?:st|r)?\b`), types.DimSafety},
	{regexp.MustCompile(`performance|powerful|horsepower|\bfast\b|sporty|acceleration|\bspeed\b`), types.DimPerformance},
	{regexp.MustCompile(`high[-\s]tech|technology|luxur\w*|loaded with features`), types.DimFeatures},
	{regexp.MustCompile(`\broomy\b|spacious|seating|lots of (?:space|room)`), types.DimSeating},
	{regexp.MustCompile(`\bcheap\b|affordable|inexpensive|low price|good value`), types.DimBudget},
}

// addPrioritiesInOrder records plain priority mentions in the order they
// appear in the text, so the first thing the user brought up becomes the
// default top priority.
func addPrioritiesInOrder(text string, p *profiles) {
	type hit struct {
		pos int
		dim types.Dimension
	}
	var hits []hit
	for _, kw := range priorityKeywords {
		if loc := kw.re.FindStringIndex(text); loc != nil {
			hits = append(hits, hit{pos: loc[0], dim: kw.dim})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	for _, h := range hits {
		p.addPriority(h.dim)
	}
}

func init() {
	for _, fk := range featureKeywords {
		fk := fk
		fieldPatterns = append(fieldPatterns, fieldPattern{
			re: fk.re,
			apply: func(m []string, p *profiles) {
				p.addFeature(fk.tag)
			},
		})
	}
}

// resolvePriorityPhrase maps a captured free-text phrase ("fuel
// efficiency", "performance") to a dimension, or DimensionNone when the
// phrase names nothing in the taxonomy.
func resolvePriorityPhrase(phrase string) types.Dimension {
	for _, kw := range priorityKeywords {
		if kw.re.MatchString(phrase) {
			return kw.dim
		}
	}
	return types.DimensionNone
}

// featureKeywords maps canonical feature tags to their mention patterns.
// A slice rather than a map keeps the pattern table, and therefore the
// extracted feature order, deterministic.
var featureKeywords = []struct {
	tag string
	re  *regexp.Regexp
}{
	{"awd", regexp.MustCompile(`\bawd\b|all[-\s]wheel`)},
	{"sunroof", regexp.MustCompile(`sunroof|moon\s?roof`)},
	{"leather_seats", regexp.MustCompile(`leather`)},
	{"apple_carplay", regexp.MustCompile(`carplay|apple car\s?play`)},
	{"android_auto", regexp.MustCompile(`android auto`)},
	{"adaptive_cruise", regexp.MustCompile(`adaptive cruise`)},
	{"lane_assist", regexp.MustCompile(`lane\s(?:assist|keep\w*|departure)`)},
	{"blind_spot_monitor", regexp.MustCompile(`blind\s?spot`)},
	{"third_row", regexp.MustCompile(`third row|3rd row|three rows|3 rows`)},
	{"heated_seats", regexp.MustCompile(`heated seats`)},
	{"backup_camera", regexp.MustCompile(`backup camera|rear\s?view camera`)},
	{"navigation", regexp.MustCompile(`\bnavigation\b`)},
	{"hybrid", regexp.MustCompile(`\bhybrid\b`)},
}

// qualitativeBand maps spoken credit quality to a representative band.
func qualitativeBand(word string) types.CreditBand {
	switch word {
	case "excellent", "great":
		return types.CreditExcellent
	case "good":
		return types.CreditGood
	case "fair", "average", "ok", "okay":
		return types.CreditFair
	case "bad", "poor":
		return types.CreditPoor
	default: // "terrible"
		return types.CreditVeryPoor
	}
}
