package zeitplan

import "sort"

// solverMeeting is one meeting's state inside the backtracking search: its
// id, its duration, and its candidate start-length windows in the fixed
// order the search will try them in.
type solverMeeting struct {
	id         string
	duration   Unit
	candidates []Interval
}

// occupiedSet is the solver's "time occupied" structure: a sorted,
// disjoint run of intervals keyed by OverlapCompare, supporting the two
// operations the search needs - "is this candidate already taken?" and
// "free the interval I just placed." Lookups are O(log n) binary searches;
// insert and remove then shift the slice's tail. spec.md §9 allows this
// exact representation when an ordered-map type with a pluggable
// comparator isn't available: none of the examples this module is built
// from ship one, so a sorted slice with binary-search insert/remove
// stands in for the balanced tree the spec describes.
type occupiedSet struct {
	intervals []Interval
	ids       []string
}

// find returns the index at which iv would sit, and whether an
// overlap-equal interval already occupies that index.
func (o *occupiedSet) find(iv Interval) (int, bool) {
	lo, hi := 0, len(o.intervals)
	for lo < hi {
		mid := (lo + hi) / 2
		switch OverlapCompare(iv, o.intervals[mid]) {
		case 0:
			return mid, true
		case -1:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return lo, false
}

func (o *occupiedSet) contains(iv Interval) bool {
	_, found := o.find(iv)
	return found
}

func (o *occupiedSet) insert(iv Interval, id string) {
	idx, _ := o.find(iv)
	o.intervals = append(o.intervals, Interval{})
	copy(o.intervals[idx+1:], o.intervals[idx:])
	o.intervals[idx] = iv

	o.ids = append(o.ids, "")
	copy(o.ids[idx+1:], o.ids[idx:])
	o.ids[idx] = id
}

func (o *occupiedSet) remove(iv Interval) {
	idx, found := o.find(iv)
	if !found {
		return
	}
	o.intervals = append(o.intervals[:idx], o.intervals[idx+1:]...)
	o.ids = append(o.ids[:idx], o.ids[idx+1:]...)
}

// sortMostConstrained orders meetings by number of candidate windows
// ascending (the most-constrained-variable heuristic from spec.md §4.6),
// breaking ties by shorter duration first. This only affects search
// speed, never whether a solution exists.
func sortMostConstrained(ms []solverMeeting) {
	sort.SliceStable(ms, func(i, j int) bool {
		if len(ms[i].candidates) != len(ms[j].candidates) {
			return len(ms[i].candidates) < len(ms[j].candidates)
		}
		return ms[i].duration < ms[j].duration
	})
}

// solveResult is the backtracking search's outcome on success: the
// winning assignment, one placement per meeting in search order.
type solveResult struct {
	placements []MeetingPlacement
}

// solve runs the depth-first backtracking search described in spec.md
// §4.6 against ms, which must already be sorted (sortMostConstrained) and
// have its candidates materialized. budget, if non-nil, caps the number
// of attempted extensions; stopFn, if non-nil, is polled once per
// iteration so a parallel caller (C7) can cancel a losing worker.
func solve(ms []solverMeeting, budget *int, stopFn func() bool) (solveResult, error) {
	n := len(ms)
	cursor := make([]int, n)
	var trail []Interval
	occupied := occupiedSet{
		intervals: make([]Interval, 0, n),
		ids:       make([]string, 0, n),
	}

	nth := 1
	attempts := 0

	for {
		if nth > n {
			placements := make([]MeetingPlacement, len(trail))
			for i, iv := range trail {
				placements[i] = MeetingPlacement{ID: ms[i].id, Time: iv}
			}
			return solveResult{placements: placements}, nil
		}
		if nth == 0 {
			return solveResult{}, &NoSolution{}
		}
		if budget != nil && attempts == *budget {
			return solveResult{}, &NoSolutionWithinBudget{Budget: *budget}
		}
		if stopFn != nil && stopFn() {
			return solveResult{}, &interrupted{}
		}

		mi := nth - 1
		m := ms[mi]
		placed := false

		for idx := cursor[mi]; idx < len(m.candidates); idx++ {
			candidate := m.candidates[idx]
			if occupied.contains(candidate) {
				continue
			}
			cursor[mi] = idx
			occupied.insert(candidate, m.id)
			trail = append(trail, candidate)
			nth++
			placed = true
			break
		}

		if !placed {
			cursor[mi] = 0
			if mi > 0 {
				cursor[mi-1]++
				last := trail[len(trail)-1]
				trail = trail[:len(trail)-1]
				occupied.remove(last)
			}
			nth--
		}

		attempts++
	}
}
