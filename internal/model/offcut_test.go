package model

import (
	"math"
	"testing"
)

func solutionWithLeftovers() Solution {
	return Solution{
		Demand: Demand{Length: 2.0, Quantity: 7},
		Stocks: []StockUsage{
			{
				Stock: StockBar{Label: "Steel 5 m", Length: 5.0, PricePerBar: 10.0},
				Groups: []CutGroup{
					{Pattern: Pattern{Pieces: 2, Waste: 1.0}, Repeat: 2},
				},
			},
			{
				Stock: StockBar{Label: "Steel 6.3 m", Length: 6.3, Quantity: 1},
				Groups: []CutGroup{
					{Pattern: Pattern{Pieces: 3, Waste: 0.3}, Repeat: 1},
				},
			},
		},
	}
}

func TestDetectOffcutsFiltersShortLeftovers(t *testing.T) {
	offcuts := DetectOffcuts(solutionWithLeftovers(), 0.5)

	if len(offcuts) != 1 {
		t.Fatalf("expected 1 offcut group, got %d", len(offcuts))
	}
	oc := offcuts[0]
	if oc.Length != 1.0 || oc.Count != 2 {
		t.Errorf("unexpected offcut: %+v", oc)
	}
	if oc.StockLabel != "Steel 5 m" {
		t.Errorf("unexpected stock label: %q", oc.StockLabel)
	}
	// price inherited proportional to length: 10.0 * 1/5
	if math.Abs(oc.PricePerBar-2.0) > 1e-12 {
		t.Errorf("expected inherited price 2.0, got %v", oc.PricePerBar)
	}
}

func TestDetectOffcutsSortsLongestFirst(t *testing.T) {
	sol := Solution{
		Stocks: []StockUsage{
			{Stock: StockBar{Label: "A", Length: 4}, Groups: []CutGroup{
				{Pattern: Pattern{Pieces: 1, Waste: 0.7}, Repeat: 1},
			}},
			{Stock: StockBar{Label: "B", Length: 6}, Groups: []CutGroup{
				{Pattern: Pattern{Pieces: 1, Waste: 2.5}, Repeat: 1},
			}},
		},
	}
	offcuts := DetectOffcuts(sol, 0.5)
	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	if offcuts[0].Length != 2.5 || offcuts[1].Length != 0.7 {
		t.Errorf("expected longest first, got %v then %v", offcuts[0].Length, offcuts[1].Length)
	}
}

func TestOffcutToStockBar(t *testing.T) {
	oc := Offcut{ID: "abc", StockLabel: "Steel 5 m", Length: 1.2, Count: 3, PricePerBar: 2.4}
	bar := oc.ToStockBar()

	if bar.Length != 1.2 || bar.Quantity != 3 {
		t.Errorf("unexpected stock bar: %+v", bar)
	}
	if bar.Label != "Offcut Steel 5 m" {
		t.Errorf("unexpected label: %q", bar.Label)
	}
	if bar.PricePerBar != 2.4 {
		t.Errorf("expected price carried over, got %v", bar.PricePerBar)
	}
}

func TestTotalOffcutLength(t *testing.T) {
	offcuts := []Offcut{
		{Length: 1.0, Count: 2},
		{Length: 0.6, Count: 1},
	}
	if got := TotalOffcutLength(offcuts); math.Abs(got-2.6) > 1e-12 {
		t.Errorf("expected 2.6, got %v", got)
	}
}
