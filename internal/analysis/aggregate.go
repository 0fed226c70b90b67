package analysis

import (
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
)

// AggregateItem is one scored criterion projected into a category group.
type AggregateItem struct {
	ID            rubric.Key `json:"id"`
	Label         string     `json:"label"`
	Score         int        `json:"score"`
	Justification string     `json:"justification"`
}

// CategoryAggregate is the derived per-category summary. It is computed
// fresh on every call and never persisted.
type CategoryAggregate struct {
	Category   rubric.Category `json:"category"`
	Name       string          `json:"name"`
	Items      []AggregateItem `json:"items"`
	TotalScore int             `json:"totalScore"`
	MaxScore   int             `json:"maxScore"`
	Average    float64         `json:"average"`
}

// GrandTotal sums the three category aggregates.
type GrandTotal struct {
	TotalScore int     `json:"totalScore"`
	MaxScore   int     `json:"maxScore"`
	Average    float64 `json:"average"`
}

// ChartPoint is one bar of the main category chart.
type ChartPoint struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// Aggregate groups per-item scores by category and computes totals and
// percentage averages. Keys outside the rubric are skipped silently, as are
// rubric keys absent from scores. The input is never mutated; items appear
// in rubric definition order.
func Aggregate(scores map[rubric.Key]model.ScoreItem) ([]CategoryAggregate, GrandTotal) {
	byCategory := make(map[rubric.Category]*CategoryAggregate, 3)
	aggs := make([]CategoryAggregate, 0, 3)
	for _, cat := range rubric.Categories() {
		aggs = append(aggs, CategoryAggregate{Category: cat, Name: cat.Name(), Items: []AggregateItem{}})
	}
	for i := range aggs {
		byCategory[aggs[i].Category] = &aggs[i]
	}

	for _, key := range rubric.AllKeys() {
		item, ok := scores[key]
		if !ok {
			continue
		}
		cat, ok := rubric.CategoryOf(key)
		if !ok {
			continue
		}
		agg := byCategory[cat]
		agg.Items = append(agg.Items, AggregateItem{
			ID:            key,
			Label:         rubric.LabelOf(key),
			Score:         item.Score,
			Justification: item.Justification,
		})
		agg.TotalScore += item.Score
		agg.MaxScore += rubric.MaxScoreOf(key)
	}

	var grand GrandTotal
	for i := range aggs {
		if aggs[i].MaxScore > 0 {
			aggs[i].Average = float64(aggs[i].TotalScore) / float64(aggs[i].MaxScore) * 100
		}
		grand.TotalScore += aggs[i].TotalScore
		grand.MaxScore += aggs[i].MaxScore
	}
	if grand.MaxScore > 0 {
		grand.Average = float64(grand.TotalScore) / float64(grand.MaxScore) * 100
	}
	return aggs, grand
}

// MainChartSeries builds the chart-ready series for the category overview.
func MainChartSeries(aggs []CategoryAggregate) []ChartPoint {
	series := make([]ChartPoint, len(aggs))
	for i, agg := range aggs {
		series[i] = ChartPoint{Name: agg.Name, Average: agg.Average}
	}
	return series
}
