package engine

import (
	"fmt"

	"github.com/piwi3910/profilecut/internal/milp"
	"github.com/piwi3910/profilecut/internal/model"
)

// planVars adds one bounded integer variable per (stock, pattern) pair:
// how many bars of stock i are cut with pattern j. Upper bound is the
// stock's available quantity.
func planVars(p *milp.Problem, table model.PatternTable, stocks []model.StockBar) [][]milp.Var {
	x := make([][]milp.Var, len(table))
	for i, row := range table {
		x[i] = make([]milp.Var, len(row))
		for j := range row {
			x[i][j] = p.IntVar(0, int64(stocks[i].Quantity), fmt.Sprintf("x_%d_%d", i, j))
		}
	}
	return x
}

// addCapacityConstraints bounds bars used per stock type by its quantity.
func addCapacityConstraints(p *milp.Problem, x [][]milp.Var, stocks []model.StockBar) {
	for i := range x {
		if len(x[i]) == 0 {
			continue
		}
		terms := make([]milp.Term, len(x[i]))
		for j, v := range x[i] {
			terms[j] = milp.Term{Var: v, Coeff: 1}
		}
		p.AddLessEq(terms, float64(stocks[i].Quantity))
	}
}

// addDemandConstraint requires the produced piece count to equal the demand
// quantity exactly, so overproduction is ruled out by construction.
func addDemandConstraint(p *milp.Problem, x [][]milp.Var, table model.PatternTable, demand model.Demand) {
	var terms []milp.Term
	for i, row := range table {
		for j, pat := range row {
			terms = append(terms, milp.Term{Var: x[i][j], Coeff: float64(pat.Pieces)})
		}
	}
	p.AddEq(terms, float64(demand.Quantity))
}

// wasteTerms builds the total-waste linear expression over the plan vars.
func wasteTerms(x [][]milp.Var, table model.PatternTable) []milp.Term {
	var terms []milp.Term
	for i, row := range table {
		for j, pat := range row {
			terms = append(terms, milp.Term{Var: x[i][j], Coeff: pat.Waste})
		}
	}
	return terms
}

// minWaste solves the first-phase integer program and returns the minimum
// achievable total waste for the given pattern table.
func (o *Optimizer) minWaste(table model.PatternTable, job model.Job) (float64, error) {
	p := milp.NewProblem("waste_minimization")
	x := planVars(p, table, job.Stocks)
	addCapacityConstraints(p, x, job.Stocks)
	addDemandConstraint(p, x, table, job.Demand)
	p.Minimize(wasteTerms(x, table))

	sol, err := o.backend.Solve(p)
	if err != nil {
		return 0, fmt.Errorf("waste phase: %w", err)
	}
	switch sol.Status {
	case milp.StatusOptimal:
		return sol.Objective, nil
	case milp.StatusInfeasible:
		return 0, infeasiblef("no cutting plan can produce %d pieces of %g m from the available stock", job.Demand.Quantity, job.Demand.Length)
	default:
		return 0, fmt.Errorf("waste phase: unexpected status %v", sol.Status)
	}
}
