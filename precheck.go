package zeitplan

import "fmt"

// defaultMaxAvailabilityRanges, defaultMaxParticipants and
// defaultMaxMeetings mirror the size ceilings the original implementation
// enforced at its input boundary (original_source/zeitplan-libs/src/input.rs).
// They exist to reject obviously-oversized instances cheaply, before any
// interval algebra runs; a zero value disables the corresponding ceiling.
const (
	defaultMaxAvailabilityRanges = 168
	defaultMaxParticipants       = 100
	defaultMaxMeetings           = 336
)

// validateStructure checks the structural invariants spec.md §4.5 and §9
// require at the input boundary: every meeting has duration >= 1, and no
// two meetings share an id. Participant ids are not checked here, since a
// Meeting keeps no participant list (see validateParticipants). Interval invariants (start <= end) are enforced by
// construction - every Interval in this package was built through New or
// NewStrict - so there is nothing further to check there.
func validateStructure(meetings []Meeting, cfg *config) error {
	if cfg.maxMeetings > 0 && len(meetings) > cfg.maxMeetings {
		return &InvariantViolation{
			Detail: fmt.Sprintf("too many meetings: got %d, limit is %d", len(meetings), cfg.maxMeetings),
		}
	}

	seen := make(map[string]struct{}, len(meetings))
	for _, m := range meetings {
		if m.Duration < 1 {
			return &InvariantViolation{
				Detail: fmt.Sprintf("meeting %q has duration %d, must be >= 1", m.ID, m.Duration),
			}
		}
		if _, dup := seen[m.ID]; dup {
			return &InvariantViolation{
				Detail: fmt.Sprintf("duplicate meeting id %q", m.ID),
			}
		}
		seen[m.ID] = struct{}{}

		if cfg.maxAvailabilityRanges > 0 && len(m.Blocked) > cfg.maxAvailabilityRanges {
			return &InvariantViolation{
				Detail: fmt.Sprintf("meeting %q has %d blocked ranges, limit is %d", m.ID, len(m.Blocked), cfg.maxAvailabilityRanges),
			}
		}
	}

	return nil
}

// validateParticipants enforces the participant-count and per-participant
// blocked-range ceilings and rejects duplicate participant ids, mirroring
// input.rs's Input::validate/sort.
func validateParticipants(participants []Participant, cfg *config) error {
	if cfg.maxParticipants > 0 && len(participants) > cfg.maxParticipants {
		return &InvariantViolation{
			Detail: fmt.Sprintf("too many participants: got %d, limit is %d", len(participants), cfg.maxParticipants),
		}
	}

	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p.ID]; dup {
			return &InvariantViolation{Detail: fmt.Sprintf("duplicate participant id %q", p.ID)}
		}
		seen[p.ID] = struct{}{}

		if cfg.maxAvailabilityRanges > 0 && len(p.Blocked) > cfg.maxAvailabilityRanges {
			return &InvariantViolation{
				Detail: fmt.Sprintf("participant %q has %d blocked ranges, limit is %d", p.ID, len(p.Blocked), cfg.maxAvailabilityRanges),
			}
		}
	}

	return nil
}

// validateAvailabilitySize enforces the global-availability ceiling
// mirroring input.rs's Input::validate (at most 168 available-time
// ranges by default).
func validateAvailabilitySize(availability []Interval, cfg *config) error {
	if cfg.maxAvailabilityRanges > 0 && len(availability) > cfg.maxAvailabilityRanges {
		return &InvariantViolation{
			Detail: fmt.Sprintf("too many availability ranges: got %d, limit is %d", len(availability), cfg.maxAvailabilityRanges),
		}
	}
	return nil
}

// pigeonholeCheck implements spec.md §4.5: sum each non-empty
// availability's duration as a pigeon count, sum the merged union of all
// availabilities as a hole count, and fail fast if more pigeons are asked
// for than holes exist. It never produces a false "infeasible" - a
// saturated hole count (CountUnits's second return false) is treated as
// "effectively unbounded holes" and always passes, per spec.md §9's
// resolution of that ambiguity.
func pigeonholeCheck(meetings []Meeting, availability map[string][]Interval) (pigeons, holes int64, err error) {
	var allFree []Interval
	for _, m := range meetings {
		free := availability[m.ID]
		if len(free) == 0 {
			continue
		}
		pigeons += int64(m.Duration)
		allFree = append(allFree, free...)
	}

	merged := Merge(allFree)
	units, ok := CountUnits(merged)
	if !ok {
		// Saturated: treat as infinite holes, i.e. always feasible on
		// this axis.
		return pigeons, units, nil
	}
	holes = units

	if pigeons > holes {
		return pigeons, holes, &PigeonholeInfeasible{Pigeons: pigeons, Holes: holes}
	}
	return pigeons, holes, nil
}
