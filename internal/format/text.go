// Package format renders solved cutting plans as human-readable text.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/profilecut/internal/engine"
	"github.com/piwi3910/profilecut/internal/model"
)

// cleanTol is the rounding-error bound for minimal sufficient precision.
const cleanTol = 1e-10

// maxPrecision caps the decimal places tried before giving up.
const maxPrecision = 15

// CleanFloat rounds a value to the fewest decimal places that keep the
// rounding error below cleanTol, hiding binary floating-point artifacts
// like 0.33999999999999986 -> 0.34.
func CleanFloat(num float64) float64 {
	for precision := 1; precision <= maxPrecision; precision++ {
		shift := math.Pow(10, float64(precision))
		rounded := math.Round(num*shift) / shift
		if math.Abs(num-rounded) < cleanTol {
			return rounded
		}
	}
	return num
}

// Length formats a length value with minimal sufficient precision.
func Length(v float64) string {
	return strconv.FormatFloat(CleanFloat(v), 'f', -1, 64)
}

// Text renders a solution as a plain text block: per stock type, the piece
// breakdown of each pattern with its per-bar offcut and repetition count,
// closed by the total waste and, when waste is positive, its share of the
// material actually consumed.
func Text(sol model.Solution) string {
	var b strings.Builder
	b.WriteString("CUTTING PLAN:\n\n")

	for _, su := range sol.Stocks {
		if su.BarsUsed() == 0 {
			continue
		}
		fmt.Fprintf(&b, "Stock bar %s m:\n", Length(su.Stock.Length))
		for _, g := range su.Groups {
			if g.Repeat == 0 {
				continue
			}
			fmt.Fprintf(&b, "Cut: [%s m x %d]", Length(sol.Demand.Length), g.Pattern.Pieces)
			if g.Pattern.Waste > 0 {
				fmt.Fprintf(&b, " | Offcut: %s m", Length(g.Pattern.Waste))
			}
			b.WriteString("\n")
			fmt.Fprintf(&b, "Repetitions: %d\n\n", g.Repeat)
		}
	}

	totalWaste := CleanFloat(sol.TotalWaste)
	fmt.Fprintf(&b, "Total waste: %s m", Length(sol.TotalWaste))
	if totalWaste > 0 {
		fmt.Fprintf(&b, " (%.2f%% of material used)", sol.WastePercent())
	}
	return b.String()
}

// Reports renders strategy comparison reports as an aligned text table.
func Reports(reports []engine.StrategyReport) string {
	var b strings.Builder
	b.WriteString("STRATEGY COMPARISON:\n\n")
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(&b, "%-14s failed: %v\n", r.Strategy, r.Err)
			continue
		}
		fmt.Fprintf(&b, "%-14s bars: %d | waste: %s m | spread: %s\n",
			r.Strategy, r.BarsUsed, Length(r.TotalWaste), Length(r.UsageSpread))
	}
	return b.String()
}
