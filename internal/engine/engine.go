// Package engine finds minimal-waste, maximally-even cutting plans for a
// single demanded piece length. One capability, two strategies: a two-phase
// integer-program pipeline for the general case, and an exhaustive
// combinatorial search when every stock length divides evenly by the demand
// length (waste is then necessarily zero for any feasible plan).
package engine

import (
	"github.com/piwi3910/profilecut/internal/milp"
	"github.com/piwi3910/profilecut/internal/model"
)

// Optimizer runs the cutting-stock solve pipeline. It holds no per-request
// state; each Solve builds its own pattern table and programs, so one
// Optimizer may serve sequential requests. The backend is invoked once or
// twice per request and is not shared across concurrent solves unless the
// backend itself is safe for that.
type Optimizer struct {
	backend  milp.Backend
	settings model.SolveSettings
}

func New(backend milp.Backend, settings model.SolveSettings) *Optimizer {
	return &Optimizer{backend: backend, settings: settings}
}

// Solve produces the cutting plan for a normalized job. The job must have
// passed request validation: positive-quantity stock entries and a positive
// demand. Returns InfeasibleError when the arithmetic cannot be satisfied
// and InternalError when the two solve phases disagree.
func (o *Optimizer) Solve(job model.Job) (model.Solution, error) {
	if job.TotalStockLength() < job.Demand.TotalLength()-o.settings.FloatTolerance {
		return model.Solution{}, infeasiblef(
			"not enough stock: %g m available, %g m required",
			job.TotalStockLength(), job.Demand.TotalLength())
	}

	if combinatorialApplicable(job, o.settings.FloatTolerance) {
		return o.solveCombinatorial(job)
	}
	return o.solveTwoPhase(job)
}

// solveTwoPhase runs the general pipeline: find the minimum achievable
// waste, then re-solve with waste pinned to that minimum while minimizing
// the spread of stock usage.
func (o *Optimizer) solveTwoPhase(job model.Job) (model.Solution, error) {
	table := BuildPatternTable(job.Stocks, job.Demand)
	if table.PatternCount() == 0 {
		return model.Solution{}, infeasiblef(
			"no stock bar is long enough to yield a single %g m piece", job.Demand.Length)
	}

	minWaste, err := o.minWaste(table, job)
	if err != nil {
		return model.Solution{}, err
	}
	return o.fairestPlan(table, job, minWaste)
}
