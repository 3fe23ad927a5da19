package model

import (
	"math"
	"testing"
)

func TestNewStockBarGeneratesID(t *testing.T) {
	bar := NewStockBar("Steel 6m", 6.0, 4)
	if bar.ID == "" {
		t.Error("expected a generated ID")
	}
	if len(bar.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", bar.ID)
	}
	if bar.Length != 6.0 || bar.Quantity != 4 {
		t.Errorf("unexpected bar fields: %+v", bar)
	}

	other := NewStockBar("Steel 6m", 6.0, 4)
	if other.ID == bar.ID {
		t.Error("expected unique IDs for separate bars")
	}
}

func TestDemandTotalLength(t *testing.T) {
	d := Demand{Length: 2.5, Quantity: 4}
	if got := d.TotalLength(); got != 10.0 {
		t.Errorf("expected 10.0, got %v", got)
	}
}

func TestPatternTableCount(t *testing.T) {
	pt := PatternTable{
		{{Pieces: 1, Waste: 3}, {Pieces: 2, Waste: 1}},
		{}, // bar too short for a single piece
		{{Pieces: 1, Waste: 0}},
	}
	if got := pt.PatternCount(); got != 3 {
		t.Errorf("expected 3 patterns, got %d", got)
	}
}

func TestStockUsageAggregates(t *testing.T) {
	su := StockUsage{
		Stock: StockBar{Label: "Steel 5m", Length: 5.0, Quantity: 3},
		Groups: []CutGroup{
			{Pattern: Pattern{Pieces: 2, Waste: 1.0}, Repeat: 2},
			{Pattern: Pattern{Pieces: 1, Waste: 3.0}, Repeat: 1},
		},
	}
	if got := su.BarsUsed(); got != 3 {
		t.Errorf("expected 3 bars used, got %d", got)
	}
	if got := su.Pieces(); got != 5 {
		t.Errorf("expected 5 pieces, got %d", got)
	}
	if got := su.Waste(); got != 5.0 {
		t.Errorf("expected 5.0 waste, got %v", got)
	}
}

func TestSolutionTotals(t *testing.T) {
	sol := Solution{
		Demand: Demand{Length: 2.0, Quantity: 5},
		Stocks: []StockUsage{
			{
				Stock:  StockBar{Length: 5.0},
				Groups: []CutGroup{{Pattern: Pattern{Pieces: 2, Waste: 1.0}, Repeat: 2}},
			},
			{
				Stock:  StockBar{Length: 4.0},
				Groups: []CutGroup{{Pattern: Pattern{Pieces: 1, Waste: 2.0}, Repeat: 1}},
			},
		},
		TotalWaste: 4.0,
	}

	if got := sol.TotalBars(); got != 3 {
		t.Errorf("expected 3 bars, got %d", got)
	}
	if got := sol.TotalPieces(); got != 5 {
		t.Errorf("expected 5 pieces, got %d", got)
	}
	if got := sol.UsedLength(); got != 14.0 {
		t.Errorf("expected 14.0 m used, got %v", got)
	}

	wantPct := 4.0 / 14.0 * 100.0
	if got := sol.WastePercent(); math.Abs(got-wantPct) > 1e-12 {
		t.Errorf("expected %.4f%%, got %.4f%%", wantPct, got)
	}
}

func TestWastePercentEmptySolution(t *testing.T) {
	var sol Solution
	if got := sol.WastePercent(); got != 0 {
		t.Errorf("expected 0%% on empty solution, got %v", got)
	}
}

func TestJobTotalStockLength(t *testing.T) {
	job := Job{
		Stocks: []StockBar{
			{Length: 6.0, Quantity: 2},
			{Length: 4.0, Quantity: 3},
		},
	}
	if got := job.TotalStockLength(); got != 24.0 {
		t.Errorf("expected 24.0, got %v", got)
	}
}
