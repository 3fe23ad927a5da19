package engine

import (
	"math"

	"github.com/piwi3910/profilecut/internal/model"
)

// targetTol is the equality tolerance when matching a usage tuple's total
// length against the demand total.
const targetTol = 1e-8

// divisible reports whether length is an exact integer multiple of unit,
// within tol of either side of the remainder.
func divisible(length, unit, tol float64) bool {
	if unit <= 0 {
		return false
	}
	rem := math.Mod(length, unit)
	return rem < tol || unit-rem < tol
}

// combinatorialApplicable reports whether every stock length is an exact
// multiple of the demand length, the structural precondition under which
// every usable cut is waste-free and the exhaustive search is a sound
// total-correctness solver.
func combinatorialApplicable(job model.Job, tol float64) bool {
	for _, s := range job.Stocks {
		if !divisible(s.Length, job.Demand.Length, tol) {
			return false
		}
	}
	return len(job.Stocks) > 0
}

// solveCombinatorial enumerates non-negative usage counts u_i for each
// divisible stock type (bounded by availability and by the demand total)
// and picks the tuple satisfying sum(u_i * L_i) == total demand length with
// the lowest statistical variance. Ties go to the tuple encountered first.
func (o *Optimizer) solveCombinatorial(job model.Job) (model.Solution, error) {
	tol := o.settings.FloatTolerance

	var candidates []model.StockBar
	for _, s := range job.Stocks {
		if divisible(s.Length, job.Demand.Length, tol) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return model.Solution{}, infeasiblef("no stock length is a whole multiple of the demand length %g m", job.Demand.Length)
	}

	target := job.Demand.TotalLength()

	// Bounded range per stock type: never more bars than available, never
	// more than could possibly be needed.
	limits := make([]int, len(candidates))
	for i, s := range candidates {
		byDemand := int(math.Ceil(target / s.Length))
		limits[i] = s.Quantity
		if byDemand < limits[i] {
			limits[i] = byDemand
		}
	}

	counts := make([]int, len(candidates))
	best := make([]int, 0, len(candidates))
	bestVariance := math.Inf(1)
	found := false

	for {
		var total float64
		for i, u := range counts {
			total += float64(u) * candidates[i].Length
		}
		if math.Abs(total-target) < targetTol {
			if v := variance(counts); v < bestVariance {
				bestVariance = v
				best = append(best[:0], counts...)
				found = true
			}
		}

		// Advance the odometer, last position fastest.
		pos := len(counts) - 1
		for pos >= 0 {
			counts[pos]++
			if counts[pos] <= limits[pos] {
				break
			}
			counts[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	if !found {
		return model.Solution{}, infeasiblef("no waste-free combination of the available stock adds up to %g m", target)
	}

	sol := model.Solution{
		Demand:   job.Demand,
		Strategy: model.StrategyCombinatorial,
	}
	for i, u := range best {
		if u == 0 {
			continue
		}
		pieces := int(math.Round(candidates[i].Length / job.Demand.Length))
		sol.Stocks = append(sol.Stocks, model.StockUsage{
			Stock: candidates[i],
			Groups: []model.CutGroup{
				{Pattern: model.Pattern{Pieces: pieces, Waste: 0}, Repeat: u},
			},
		})
	}
	return sol, nil
}

// variance is the population variance of the usage counts, zeros included.
func variance(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	var mean float64
	for _, c := range counts {
		mean += float64(c)
	}
	mean /= float64(len(counts))

	var sum float64
	for _, c := range counts {
		d := float64(c) - mean
		sum += d * d
	}
	return sum / float64(len(counts))
}
