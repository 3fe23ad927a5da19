package milp

import (
	"fmt"
	"math"

	"github.com/irfansharif/solver"
)

// coeffScale is the fixed-point factor applied to real coefficients before
// handing the program to the integer-only CP-SAT engine. One unit equals
// 1e-6 of the input's length unit; inputs with more than six significant
// decimals lose precision at that resolution.
const coeffScale = 1e6

// domainLimit caps one-sided constraint bounds. Generous enough for scaled
// length sums, small enough to stay well inside CP-SAT's domain range.
const domainLimit = int64(1) << 41

// CPSAT solves problems with the CP-SAT engine. Real coefficients are
// scaled to fixed-point integers; the reported objective is re-evaluated
// with the original coefficients.
type CPSAT struct{}

func NewCPSAT() *CPSAT {
	return &CPSAT{}
}

func (b *CPSAT) Solve(p *Problem) (Solution, error) {
	m := solver.NewModel(p.name)

	vars := make([]solver.IntVar, len(p.varLo))
	for i := range p.varLo {
		vars[i] = m.NewIntVar(p.varLo[i], p.varHi[i], p.varNames[i])
	}

	for _, c := range p.cons {
		expr, err := scaledExpr(vars, c.Terms)
		if err != nil {
			return Solution{}, err
		}
		m.AddConstraints(solver.NewLinearConstraint(expr, solver.NewDomain(scaleBound(c.Lo), scaleBound(c.Hi))))
	}

	if p.hasObj {
		expr, err := scaledExpr(vars, p.objective)
		if err != nil {
			return Solution{}, err
		}
		m.Minimize(expr)
	}

	if ok, err := m.Validate(); !ok {
		return Solution{}, fmt.Errorf("invalid program %q: %w", p.name, err)
	}

	result := m.Solve()
	switch {
	case result.Optimal():
		values := make([]int64, len(vars))
		for i, v := range vars {
			values[i] = result.Value(v)
		}
		return Solution{
			Status:    StatusOptimal,
			Objective: p.evalObjective(values),
			values:    values,
		}, nil
	case result.Infeasible():
		return Solution{Status: StatusInfeasible}, nil
	default:
		return Solution{Status: StatusUnknown}, fmt.Errorf("solver returned a non-terminal status for %q", p.name)
	}
}

// scaledExpr converts float terms into a fixed-point integer linear
// expression.
func scaledExpr(vars []solver.IntVar, terms []Term) (solver.LinearExpr, error) {
	vs := make([]solver.IntVar, len(terms))
	cs := make([]int64, len(terms))
	for i, t := range terms {
		if int(t.Var) >= len(vars) {
			return nil, fmt.Errorf("term references unknown variable %d", t.Var)
		}
		vs[i] = vars[t.Var]
		cs[i] = int64(math.Round(t.Coeff * coeffScale))
	}
	return solver.NewLinearExpr(vs, cs, 0), nil
}

func scaleBound(v float64) int64 {
	if math.IsInf(v, 1) {
		return domainLimit
	}
	if math.IsInf(v, -1) {
		return -domainLimit
	}
	return int64(math.Round(v * coeffScale))
}
