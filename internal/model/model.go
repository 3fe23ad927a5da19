package model

import "github.com/google/uuid"

// StockBar represents an available bar of profile stock to cut from.
type StockBar struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Length      float64 `json:"length"` // meters
	Quantity    int     `json:"quantity"`
	PricePerBar float64 `json:"price_per_bar,omitempty"`
}

func NewStockBar(label string, length float64, qty int) StockBar {
	return StockBar{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Quantity: qty,
	}
}

// Demand is the single requested piece length and how many pieces are needed.
type Demand struct {
	Length   float64 `json:"length"` // meters
	Quantity int     `json:"quantity"`
}

// TotalLength returns the total material length the demand requires.
func (d Demand) TotalLength() float64 {
	return d.Length * float64(d.Quantity)
}

// Pattern is one way to cut a single stock bar: Pieces whole pieces of the
// demand length, leaving Waste meters of offcut.
type Pattern struct {
	Pieces int     `json:"pieces"`
	Waste  float64 `json:"waste"`
}

// PatternTable maps each stock index to its ordered pattern list. A bar
// shorter than the demand length has an empty list and contributes nothing
// to the solve.
type PatternTable [][]Pattern

// PatternCount returns the total number of patterns across all stock types.
func (pt PatternTable) PatternCount() int {
	n := 0
	for _, row := range pt {
		n += len(row)
	}
	return n
}

// Strategy identifies which solving strategy produced a solution.
type Strategy string

const (
	StrategyTwoPhase      Strategy = "two-phase"     // waste-minimizing MILP + fairness MILP
	StrategyCombinatorial Strategy = "combinatorial" // divisor-restricted exhaustive search
)

// CutGroup is one pattern applied to Repeat bars of the same stock type.
type CutGroup struct {
	Pattern Pattern `json:"pattern"`
	Repeat  int     `json:"repeat"`
}

// StockUsage describes how the bars of one stock type are cut.
type StockUsage struct {
	Stock  StockBar   `json:"stock"`
	Groups []CutGroup `json:"groups"`
}

// BarsUsed returns the number of bars of this stock type that are cut.
func (su StockUsage) BarsUsed() int {
	n := 0
	for _, g := range su.Groups {
		n += g.Repeat
	}
	return n
}

// Waste returns the total offcut length across all bars of this stock type.
func (su StockUsage) Waste() float64 {
	var w float64
	for _, g := range su.Groups {
		w += g.Pattern.Waste * float64(g.Repeat)
	}
	return w
}

// Pieces returns the number of demand pieces produced from this stock type.
func (su StockUsage) Pieces() int {
	n := 0
	for _, g := range su.Groups {
		n += g.Pattern.Pieces * g.Repeat
	}
	return n
}

// Solution is the chosen cutting plan for one request. It is produced once
// by exactly one strategy and consumed by the formatters; nothing persists
// it across requests.
type Solution struct {
	Demand     Demand       `json:"demand"`
	Stocks     []StockUsage `json:"stocks"`
	TotalWaste float64      `json:"total_waste"`
	Strategy   Strategy     `json:"strategy"`
}

// TotalBars returns the number of stock bars cut in this solution.
func (s Solution) TotalBars() int {
	n := 0
	for _, su := range s.Stocks {
		n += su.BarsUsed()
	}
	return n
}

// TotalPieces returns the number of demand pieces the solution produces.
func (s Solution) TotalPieces() int {
	n := 0
	for _, su := range s.Stocks {
		n += su.Pieces()
	}
	return n
}

// UsedLength returns the total length of stock material consumed.
func (s Solution) UsedLength() float64 {
	var total float64
	for _, su := range s.Stocks {
		total += su.Stock.Length * float64(su.BarsUsed())
	}
	return total
}

// WastePercent returns waste as a percentage of material actually consumed.
func (s Solution) WastePercent() float64 {
	used := s.UsedLength()
	if used == 0 {
		return 0
	}
	return s.TotalWaste / used * 100.0
}

// SolveSettings holds tunables for the solve pipeline.
type SolveSettings struct {
	// FloatTolerance is the equality tolerance for real-valued length
	// arithmetic (divisibility test, combinatorial target match).
	FloatTolerance float64 `json:"float_tolerance"`
	// MinOffcutLength is the smallest leftover (meters) worth keeping as a
	// reusable offcut. See DetectOffcuts.
	MinOffcutLength float64 `json:"min_offcut_length"`
}

func DefaultSettings() SolveSettings {
	return SolveSettings{
		FloatTolerance:  1e-8,
		MinOffcutLength: 0.5,
	}
}

// Job ties a normalized request together for solving, templates and export.
type Job struct {
	Name   string     `json:"name"`
	Stocks []StockBar `json:"stocks"`
	Demand Demand     `json:"demand"`
}

// TotalStockLength returns the total material length held in stock.
func (j Job) TotalStockLength() float64 {
	var total float64
	for _, s := range j.Stocks {
		total += s.Length * float64(s.Quantity)
	}
	return total
}
