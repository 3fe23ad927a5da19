package engine

import "fmt"

// InfeasibleError reports that the input is well-formed but no cutting plan
// satisfies the capacity and exact-demand constraints. Distinct from a
// validation error: the shape of the input is fine, only the arithmetic
// fails. Never retried.
type InfeasibleError struct {
	Msg string
}

func (e *InfeasibleError) Error() string {
	return e.Msg
}

func infeasiblef(format string, args ...any) error {
	return &InfeasibleError{Msg: fmt.Sprintf(format, args...)}
}

// InternalError reports an inconsistency between the two solve phases: the
// fairness program proved infeasible at a waste level the first phase
// proved achievable. This indicates a defect in constraint construction,
// not bad user input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return e.Msg
}
