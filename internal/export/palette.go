package export

import (
	"github.com/jiwoohan/record-analyzer/internal/analysis"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
)

// Palette holds the five shades for one category, darkest at the top bucket.
type Palette struct {
	Outstanding string
	Excellent   string
	Good        string
	Fair        string
	Weak        string
}

// One palette per category: blues, oranges, purples.
var palettes = map[rubric.Category]Palette{
	rubric.CategoryInquiry:        {"#1e3a8a", "#1d4ed8", "#3b82f6", "#93c5fd", "#dbeafe"},
	rubric.CategorySelfDirection:  {"#9a3412", "#c2410c", "#ea580c", "#f97316", "#fdba74"},
	rubric.CategoryProblemSolving: {"#4c1d95", "#5b21b6", "#7c3aed", "#a78bfa", "#ddd6fe"},
}

// barColor selects the hex shade for a score via the contract's bucket
// thresholds. 5-point items only ever reach the top three shades.
func barColor(cat rubric.Category, score int) string {
	p := palettes[cat]
	switch analysis.BucketFor(cat, score) {
	case analysis.BucketOutstanding:
		return p.Outstanding
	case analysis.BucketExcellent:
		return p.Excellent
	case analysis.BucketGood:
		return p.Good
	case analysis.BucketFair:
		return p.Fair
	default:
		return p.Weak
	}
}

// accentColor is the category's headline shade for the overview chart.
func accentColor(cat rubric.Category) string {
	return palettes[cat].Excellent
}
