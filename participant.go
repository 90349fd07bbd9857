package zeitplan

// Participant is a person whose blocked time ranges constrain which slots
// a meeting they attend may be scheduled into. Participant is immutable
// once constructed; Blocked may be unsorted and may contain overlaps -
// every operation that reads it normalizes on use.
type Participant struct {
	ID      string
	Blocked []Interval
}

// Availability returns global with this participant's blocked ranges
// subtracted out - the ranges during which the participant is free.
func (p Participant) Availability(global []Interval) []Interval {
	if len(global) == 0 {
		return nil
	}
	if len(p.Blocked) == 0 {
		return Merge(global)
	}
	return Blocks(global, p.Blocked)
}
