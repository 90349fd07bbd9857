package zeitplan

import "math"

// CountUnits sums End-Start+1 across a merged list of intervals - the
// total number of grid units ("holes") the list offers. xs is assumed
// already merged; pass it through Merge first if that is not guaranteed.
//
// The second return value is false if the sum would overflow int64. Per
// spec.md §9, a saturated count is treated as "more pigeons can fit here
// than any plausible instance will ever ask for" rather than as an error:
// callers comparing a pigeon count against this result should treat a
// saturated holes count as passing the pigeonhole check.
func CountUnits(xs []Interval) (int64, bool) {
	var total int64
	for _, iv := range xs {
		length := int64(iv.end) - int64(iv.start) + 1
		if total > math.MaxInt64-length {
			return math.MaxInt64, false
		}
		total += length
	}
	return total, true
}
