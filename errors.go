package zeitplan

import "fmt"

// InvariantViolation signals a structural problem with input data caught
// at a validating boundary: a reversed interval passed to NewStrict, or a
// duplicate id discovered while building a Schedule.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invalid data: %s", e.Detail)
}

// PigeonholeInfeasible is returned by the precheck (C5) when the sum of
// requested meeting durations provably exceeds the available time units,
// proving no assignment can exist without running the solver at all.
type PigeonholeInfeasible struct {
	Pigeons int64
	Holes   int64
}

func (e *PigeonholeInfeasible) Error() string {
	return fmt.Sprintf("cannot schedule %d units of meetings into %d available units", e.Pigeons, e.Holes)
}

// NoSolution is returned by the solver (C6) when its search is exhausted
// with no budget in effect. It is authoritative: the search explored every
// branch of the current meeting ordering, and feasibility does not depend
// on ordering, so no assignment exists.
type NoSolution struct{}

func (e *NoSolution) Error() string {
	return "no feasible schedule exists"
}

// NoSolutionWithinBudget is returned when a solver's iteration budget was
// exhausted before the search concluded either way. Unlike NoSolution,
// this is advisory only - a different ordering, a larger budget, or a
// parallel search might still find an assignment.
type NoSolutionWithinBudget struct {
	Budget int
}

func (e *NoSolutionWithinBudget) Error() string {
	return fmt.Sprintf("no solution found within %d attempts", e.Budget)
}

// interrupted is an internal sentinel a worker returns when it observes
// should_stop raised by a sibling before finishing its own search. It is
// never returned from Schedule - the orchestrator either promotes the
// winning worker's real result or, if every worker was interrupted with
// nothing in hand, treats it as no additional information.
type interrupted struct{}

func (e *interrupted) Error() string {
	return "search interrupted by a sibling worker"
}
