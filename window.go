package zeitplan

import "iter"

// Windows lazily enumerates every length-d contiguous sub-interval of xs:
// for each [s,e] in xs, every [s+k, s+k+d-1] while s+k+d-1 <= e. xs is
// assumed already merged (sorted, disjoint) - pass it through Merge first
// if that is not already guaranteed.
//
// The result is a Go 1.23 range-over-func iterator rather than a
// materialized slice, so a caller that only wants the first few windows,
// or that wants to restart the enumeration, never pays for the full
// cross-product up front.
func Windows(xs []Interval, d Unit) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if d <= 0 {
			return
		}
		for _, iv := range xs {
			start := iv.start
			for {
				last, ok := addUnits(start, d-1)
				if !ok || last > iv.end {
					break
				}
				if !yield(Interval{start, last}) {
					return
				}
				next, ok := addOne(start)
				if !ok {
					break
				}
				start = next
			}
		}
	}
}

// addUnits adds n (which may be 0) to start, reporting whether the result
// stayed within the domain.
func addUnits(start, n Unit) (Unit, bool) {
	if n < 0 {
		return start, false
	}
	if int64(start)+int64(n) > int64(maxUnit) {
		return 0, false
	}
	return start + n, true
}

// collectWindows materializes Windows(xs, d) into an indexable slice. The
// solver needs random access by cursor index, which an iter.Seq cannot
// offer directly - this is the one place the lazy windows are realized.
func collectWindows(xs []Interval, d Unit) []Interval {
	out := make([]Interval, 0)
	for iv := range Windows(xs, d) {
		out = append(out, iv)
	}
	return out
}
