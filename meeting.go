package zeitplan

// Meeting is a meeting request: an id, a required duration in grid
// units, and the union of its participants' blocked time ranges. Meeting
// is immutable once constructed.
type Meeting struct {
	ID       string
	Duration Unit
	Blocked  []Interval
}

// NewMeeting builds a Meeting from its participants, eagerly collapsing
// their blocked ranges into the meeting's own Blocked list. Eager
// collapse is one of two strategies the original implementation used
// inconsistently (spec.md §9); this module always computes it up front so
// that a Meeting, once built, needs no reference back to its
// participants.
func NewMeeting(id string, duration Unit, participants []Participant) Meeting {
	var blocked []Interval
	for _, p := range participants {
		blocked = append(blocked, p.Blocked...)
	}
	return Meeting{ID: id, Duration: duration, Blocked: Merge(blocked)}
}

// NewMeetingChecked is NewMeeting with the input-boundary validation
// spec.md §9 asks for: it rejects a participant list with duplicate ids
// or an oversized blocked-range list (input.rs's Input::validate/sort)
// before folding the participants into a Meeting.
func NewMeetingChecked(id string, duration Unit, participants []Participant, opts ...Option) (Meeting, error) {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}
	if err := validateParticipants(participants, cfg); err != nil {
		return Meeting{}, err
	}
	return NewMeeting(id, duration, participants), nil
}

// Availability returns the sub-ranges of global that are long enough to
// hold this meeting and free of every participant's blocked time. A
// meeting with no participants is blocked by nothing and so is available
// across the whole (duration-filtered) global set.
func (m Meeting) Availability(global []Interval) []Interval {
	if len(global) == 0 {
		return nil
	}

	var free []Interval
	if len(m.Blocked) == 0 {
		free = Merge(global)
	} else {
		free = Blocks(global, m.Blocked)
	}

	filtered := free[:0:0]
	for _, iv := range free {
		if iv.Len() >= m.Duration {
			filtered = append(filtered, iv)
		}
	}
	return filtered
}
