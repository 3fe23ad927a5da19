// Package milp provides a narrow mixed-integer linear program abstraction:
// bounded integer variables, linear constraints with real coefficients, and
// a minimize objective. The formulation lives in the engine; solving is
// delegated to a Backend so the solver engine can be swapped without
// touching formulation logic.
package milp

import "math"

// Status is the terminal outcome of a solve.
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Var is a handle to an integer decision variable within one Problem.
type Var int

// Term is one coefficient*variable term of a linear expression.
type Term struct {
	Var   Var
	Coeff float64
}

// Constraint bounds a linear expression to the interval [Lo, Hi]. Use
// math.Inf for one-sided constraints.
type Constraint struct {
	Terms []Term
	Lo    float64
	Hi    float64
}

// Problem is a MILP under construction. Zero value is not usable; call
// NewProblem.
type Problem struct {
	name      string
	varLo     []int64
	varHi     []int64
	varNames  []string
	cons      []Constraint
	objective []Term
	hasObj    bool
}

func NewProblem(name string) *Problem {
	return &Problem{name: name}
}

// IntVar adds a bounded integer variable and returns its handle.
func (p *Problem) IntVar(lo, hi int64, name string) Var {
	p.varLo = append(p.varLo, lo)
	p.varHi = append(p.varHi, hi)
	p.varNames = append(p.varNames, name)
	return Var(len(p.varLo) - 1)
}

// NumVars returns the number of variables added so far.
func (p *Problem) NumVars() int {
	return len(p.varLo)
}

// AddConstraint bounds the sum of terms to [lo, hi].
func (p *Problem) AddConstraint(terms []Term, lo, hi float64) {
	p.cons = append(p.cons, Constraint{Terms: terms, Lo: lo, Hi: hi})
}

// AddLessEq constrains the sum of terms to be at most bound.
func (p *Problem) AddLessEq(terms []Term, bound float64) {
	p.AddConstraint(terms, math.Inf(-1), bound)
}

// AddGreaterEq constrains the sum of terms to be at least bound.
func (p *Problem) AddGreaterEq(terms []Term, bound float64) {
	p.AddConstraint(terms, bound, math.Inf(1))
}

// AddEq constrains the sum of terms to equal value exactly.
func (p *Problem) AddEq(terms []Term, value float64) {
	p.AddConstraint(terms, value, value)
}

// Minimize sets the objective. Calling it again replaces the previous one.
func (p *Problem) Minimize(terms []Term) {
	p.objective = terms
	p.hasObj = true
}

// Solution holds the terminal status and, when optimal, the variable
// assignment and objective value. The objective is evaluated with the
// original real coefficients, not the backend's internal representation.
type Solution struct {
	Status    Status
	Objective float64
	values    []int64
}

// Value returns the assigned value of v. Only meaningful for StatusOptimal.
func (s Solution) Value(v Var) int64 {
	if int(v) >= len(s.values) {
		return 0
	}
	return s.values[v]
}

// Backend solves a fully built Problem. Implementations need not be safe
// for concurrent use; callers use one Problem per request.
type Backend interface {
	Solve(p *Problem) (Solution, error)
}

// evalObjective computes the objective from an assignment using the
// original float coefficients.
func (p *Problem) evalObjective(values []int64) float64 {
	var total float64
	for _, t := range p.objective {
		total += t.Coeff * float64(values[t.Var])
	}
	return total
}
