package engine

import "github.com/piwi3910/profilecut/internal/model"

// StrategyReport holds the outcome and computed statistics of one strategy
// run, for side-by-side comparison.
type StrategyReport struct {
	Strategy    model.Strategy
	Solution    model.Solution
	Err         error
	BarsUsed    int
	TotalWaste  float64
	UsageSpread float64 // mean pairwise |used_i - used_k| over stock types
}

// CompareStrategies runs every applicable strategy on the same job and
// returns one report per strategy. The two-phase pipeline always runs; the
// combinatorial search runs only when its divisibility precondition holds.
func (o *Optimizer) CompareStrategies(job model.Job) []StrategyReport {
	var reports []StrategyReport

	sol, err := o.solveTwoPhase(job)
	reports = append(reports, buildReport(model.StrategyTwoPhase, job, sol, err))

	if combinatorialApplicable(job, o.settings.FloatTolerance) {
		sol, err := o.solveCombinatorial(job)
		reports = append(reports, buildReport(model.StrategyCombinatorial, job, sol, err))
	}

	return reports
}

func buildReport(strategy model.Strategy, job model.Job, sol model.Solution, err error) StrategyReport {
	report := StrategyReport{Strategy: strategy, Solution: sol, Err: err}
	if err != nil {
		return report
	}
	report.BarsUsed = sol.TotalBars()
	report.TotalWaste = sol.TotalWaste
	report.UsageSpread = usageSpread(job, sol)
	return report
}

// usageSpread computes the fairness metric over all job stock types,
// counting zero usage for types the solution skipped: the sum of pairwise
// absolute usage differences divided by the number of stock types.
func usageSpread(job model.Job, sol model.Solution) float64 {
	used := make([]int, len(job.Stocks))
	for i, s := range job.Stocks {
		for _, su := range sol.Stocks {
			if su.Stock.ID == s.ID {
				used[i] = su.BarsUsed()
			}
		}
	}

	n := len(used)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			d := used[i] - used[k]
			if d < 0 {
				d = -d
			}
			sum += float64(d)
		}
	}
	return sum / float64(n)
}
