package zeitplan

// Blocks computes merge(avail) minus merge(blocked): the sorted disjoint
// set of points that are in some avail interval and in no blocked
// interval. Both inputs may be unsorted and may overlap internally;
// Blocks merges each before subtracting.
func Blocks(avail, blocked []Interval) []Interval {
	a := Merge(avail)
	if len(a) == 0 {
		return nil
	}
	b := Merge(blocked)
	if len(b) == 0 {
		return a
	}

	out := make([]Interval, 0, len(a)+len(b))
	bi := 0

	for _, av := range a {
		start := av.start
		end := av.end
		exhausted := false

		// Skip blocked intervals that end before this avail interval
		// begins; they cannot affect it or any later (sorted) avail
		// interval's start, so bi only ever advances.
		for bi < len(b) && b[bi].end < start {
			bi++
		}

		j := bi
		for j < len(b) && b[j].start <= end && !exhausted {
			if b[j].start > start {
				out = append(out, Interval{start, b[j].start - 1})
			}
			next, ok := addOne(b[j].end)
			if !ok {
				// The blocking interval runs to the top of the domain;
				// nothing after it can remain available.
				exhausted = true
				break
			}
			start = next
			if start > end {
				exhausted = true
				break
			}
			j++
		}

		if !exhausted && start <= end {
			out = append(out, Interval{start, end})
		}

		// Only intervals fully consumed (b[j].end < the next avail
		// interval's start) should advance bi permanently; a blocked
		// interval extending past this avail interval may still overlap
		// the next one.
		bi = j
	}

	return out
}
