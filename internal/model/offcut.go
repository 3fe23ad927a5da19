package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable bar remnant left over after cutting.
type Offcut struct {
	ID          string  `json:"id"`
	StockLabel  string  `json:"stock_label"` // which stock type it came from
	Length      float64 `json:"length"`      // usable length (m)
	Count       int     `json:"count"`       // identical remnants of this length
	PricePerBar float64 `json:"price_per_bar"` // inherited price proportional to length (0 if not set)
}

// TotalLength returns the combined length of all remnants in this group.
func (o Offcut) TotalLength() float64 {
	return o.Length * float64(o.Count)
}

// ToStockBar converts an offcut group into a stock entry for reuse.
func (o Offcut) ToStockBar() StockBar {
	bar := NewStockBar("Offcut "+o.StockLabel, o.Length, o.Count)
	bar.PricePerBar = o.PricePerBar
	return bar
}

// DetectOffcuts scans a solution for per-bar leftovers at least minLength
// meters long. Shorter leftovers are waste. Identical leftovers from the
// same stock type are grouped into one Offcut with a count.
func DetectOffcuts(sol Solution, minLength float64) []Offcut {
	var offcuts []Offcut
	for _, su := range sol.Stocks {
		for _, g := range su.Groups {
			if g.Repeat == 0 || g.Pattern.Waste < minLength {
				continue
			}
			oc := Offcut{
				ID:         uuid.New().String()[:8],
				StockLabel: su.Stock.Label,
				Length:     g.Pattern.Waste,
				Count:      g.Repeat,
			}
			if su.Stock.PricePerBar > 0 && su.Stock.Length > 0 {
				oc.PricePerBar = su.Stock.PricePerBar * (oc.Length / su.Stock.Length)
			}
			offcuts = append(offcuts, oc)
		}
	}

	// Longest remnants first
	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the combined length of all detected offcuts.
func TotalOffcutLength(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.TotalLength()
	}
	return total
}
