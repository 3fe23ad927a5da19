package model

import "math"

// PurchaseEstimate holds the results of a bar purchasing calculation.
type PurchaseEstimate struct {
	TotalDemandLength float64 `json:"total_demand_length"` // total piece length required (m)
	BarLength         float64 `json:"bar_length"`          // length of one stock bar (m)
	PiecesPerBar      int     `json:"pieces_per_bar"`      // whole pieces obtainable from one bar
	BarsNeededExact   float64 `json:"bars_needed_exact"`   // exact fractional number of bars
	BarsNeededMin     int     `json:"bars_needed_min"`     // minimum bars (ceiling of exact)
	BarsWithWaste     int     `json:"bars_with_waste"`     // recommended bars including waste factor
	WastePercent      float64 `json:"waste_percent"`       // waste factor applied (e.g., 10 for 10%)
	EstimatedCost     float64 `json:"estimated_cost"`      // total cost if pricing available
	PricePerBar       float64 `json:"price_per_bar"`       // price used for estimation
}

// CalculatePurchaseEstimate computes how many bars of a single stock length
// to buy for a demand, before running the exact optimizer. Bars that cannot
// yield a single piece produce a zero estimate.
func CalculatePurchaseEstimate(demand Demand, barLength, wastePercent, pricePerBar float64) PurchaseEstimate {
	totalDemand := demand.TotalLength()

	est := PurchaseEstimate{
		TotalDemandLength: totalDemand,
		BarLength:         barLength,
		WastePercent:      wastePercent,
		PricePerBar:       pricePerBar,
	}
	if barLength <= 0 || demand.Length <= 0 {
		return est
	}

	est.PiecesPerBar = int(barLength / demand.Length)
	if est.PiecesPerBar == 0 {
		return est
	}

	// Bars needed counts whole pieces per bar, not raw length, so short
	// leftovers are already treated as waste here.
	est.BarsNeededExact = float64(demand.Quantity) / float64(est.PiecesPerBar)
	est.BarsNeededMin = int(math.Ceil(est.BarsNeededExact))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	est.BarsWithWaste = int(math.Ceil(est.BarsNeededExact * wasteFactor))
	if est.BarsWithWaste < est.BarsNeededMin {
		est.BarsWithWaste = est.BarsNeededMin
	}

	est.EstimatedCost = float64(est.BarsWithWaste) * pricePerBar
	return est
}
