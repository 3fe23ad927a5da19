package engine

import "github.com/piwi3910/profilecut/internal/model"

// Patterns enumerates every way to cut whole pieces of demandLen from a bar
// of stockLen, ordered by increasing piece count (and thus decreasing
// waste). A bar shorter than the demand length yields an empty list. Pure
// function of its arguments.
func Patterns(stockLen, demandLen float64) []model.Pattern {
	var patterns []model.Pattern
	pieces := 1
	waste := stockLen - demandLen
	for waste >= 0 {
		patterns = append(patterns, model.Pattern{Pieces: pieces, Waste: waste})
		pieces++
		waste -= demandLen
	}
	return patterns
}

// BuildPatternTable builds the per-stock pattern table for a job. Built once
// per request and read-only afterward.
func BuildPatternTable(stocks []model.StockBar, demand model.Demand) model.PatternTable {
	table := make(model.PatternTable, len(stocks))
	for i, s := range stocks {
		table[i] = Patterns(s.Length, demand.Length)
	}
	return table
}
