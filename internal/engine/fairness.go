package engine

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/milp"
	"github.com/piwi3910/profilecut/internal/model"
)

// wasteEqTol is the slack allowed when pinning phase-2 waste to the phase-1
// minimum. One fixed-point backend unit, to absorb per-coefficient rounding.
const wasteEqTol = 1e-6

// fairestPlan solves the second-phase integer program: same variables,
// capacity and demand constraints as the waste phase, plus a constraint
// fixing total waste to minWaste. The objective minimizes the mean pairwise
// absolute difference in per-stock usage counts, so material draw spreads
// evenly across stock types among all waste-minimal plans.
func (o *Optimizer) fairestPlan(table model.PatternTable, job model.Job, minWaste float64) (model.Solution, error) {
	p := milp.NewProblem("uniform_solution")
	x := planVars(p, table, job.Stocks)
	addCapacityConstraints(p, x, job.Stocks)
	addDemandConstraint(p, x, table, job.Demand)
	p.AddConstraint(wasteTerms(x, table), minWaste-wasteEqTol, minWaste+wasteEqTol)

	maxQty := int64(0)
	for _, s := range job.Stocks {
		if q := int64(s.Quantity); q > maxQty {
			maxQty = q
		}
	}

	// For each unordered pair (i, k) of stock types, an auxiliary variable
	// d >= |used_i - used_k| via d >= used_i - used_k and d >= used_k - used_i.
	// Under a minimize objective the solver drives d down to the exact
	// absolute difference; flipping either inequality silently breaks
	// optimality.
	n := len(table)
	var distances []milp.Var
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			d := p.IntVar(0, maxQty, fmt.Sprintf("d_%d_%d", i, k))
			distances = append(distances, d)

			// d - used_i + used_k >= 0
			var lower []milp.Term
			lower = append(lower, milp.Term{Var: d, Coeff: 1})
			for _, v := range x[i] {
				lower = append(lower, milp.Term{Var: v, Coeff: -1})
			}
			for _, v := range x[k] {
				lower = append(lower, milp.Term{Var: v, Coeff: 1})
			}
			p.AddGreaterEq(lower, 0)

			// d + used_i - used_k >= 0
			var upper []milp.Term
			upper = append(upper, milp.Term{Var: d, Coeff: 1})
			for _, v := range x[i] {
				upper = append(upper, milp.Term{Var: v, Coeff: 1})
			}
			for _, v := range x[k] {
				upper = append(upper, milp.Term{Var: v, Coeff: -1})
			}
			p.AddGreaterEq(upper, 0)
		}
	}

	if len(distances) > 0 {
		objTerms := make([]milp.Term, len(distances))
		for i, d := range distances {
			objTerms[i] = milp.Term{Var: d, Coeff: 1 / float64(n)}
		}
		p.Minimize(objTerms)
	} else {
		// Single stock type: nothing to balance, any waste-minimal plan is
		// fair. Minimize bars used to keep the plan deterministic.
		var objTerms []milp.Term
		for i := range x {
			for _, v := range x[i] {
				objTerms = append(objTerms, milp.Term{Var: v, Coeff: 1})
			}
		}
		p.Minimize(objTerms)
	}

	sol, err := o.backend.Solve(p)
	if err != nil {
		return model.Solution{}, fmt.Errorf("fairness phase: %w", err)
	}
	switch sol.Status {
	case milp.StatusOptimal:
		return buildSolution(job, table, x, sol, model.StrategyTwoPhase), nil
	case milp.StatusInfeasible:
		return model.Solution{}, &InternalError{
			Msg: fmt.Sprintf("fairness phase infeasible at proven minimal waste %g", minWaste),
		}
	default:
		return model.Solution{}, fmt.Errorf("fairness phase: unexpected status %v", sol.Status)
	}
}

// buildSolution reads the plan variables out of a solved program and
// assembles the Solution. Total waste is recomputed exactly from the chosen
// plan rather than taken from the scaled objective.
func buildSolution(job model.Job, table model.PatternTable, x [][]milp.Var, sol milp.Solution, strategy model.Strategy) model.Solution {
	result := model.Solution{
		Demand:   job.Demand,
		Strategy: strategy,
	}
	for i, row := range table {
		usage := model.StockUsage{Stock: job.Stocks[i]}
		for j, pat := range row {
			repeat := int(sol.Value(x[i][j]))
			if repeat <= 0 {
				continue
			}
			usage.Groups = append(usage.Groups, model.CutGroup{Pattern: pat, Repeat: repeat})
			result.TotalWaste += pat.Waste * float64(repeat)
		}
		if len(usage.Groups) > 0 {
			result.Stocks = append(result.Stocks, usage)
		}
	}
	return result
}
