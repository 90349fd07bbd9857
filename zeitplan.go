package zeitplan

import (
	"context"
	"log/slog"
	"sort"
)

// MeetingPlacement is one meeting's outcome: the slot it was assigned.
type MeetingPlacement struct {
	ID   string
	Time Interval
}

// Input is everything Schedule needs: the meetings to place and the
// global set of allowed time ranges they may be placed into.
type Input struct {
	Meetings     []Meeting
	Availability []Interval
}

// Schedule assigns every meeting in input a slot inside input.Availability
// that avoids that meeting's blocked time and every other meeting's
// chosen slot. It runs, in order: structural validation, the per-meeting
// availability computation (C3/C4, already folded into input.Meetings by
// NewMeeting), the pigeonhole precheck (C5), and the backtracking search
// (C6), optionally raced against shuffled-order workers (C7, via
// WithParallel).
//
// On success it returns one MeetingPlacement per scheduled meeting. In
// ModeRelaxed (see WithMode), meetings left with no availability at all
// are omitted from the result and returned instead in unplaced, rather
// than failing the whole call.
func Schedule(input Input, opts ...Option) (placements []MeetingPlacement, unplaced []string, err error) {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}
	log := cfg.log()

	if err := validateStructure(input.Meetings, cfg); err != nil {
		return nil, nil, err
	}
	if err := validateAvailabilitySize(input.Availability, cfg); err != nil {
		return nil, nil, err
	}

	global := Merge(input.Availability)
	meetingAvailability := make(map[string][]Interval, len(input.Meetings))
	for _, m := range input.Meetings {
		meetingAvailability[m.ID] = m.Availability(global)
	}

	var active []Meeting
	for _, m := range input.Meetings {
		if len(meetingAvailability[m.ID]) == 0 {
			switch cfg.mode {
			case ModeRelaxed:
				unplaced = append(unplaced, m.ID)
				continue
			default:
				return nil, nil, &NoSolution{}
			}
		}
		active = append(active, m)
	}

	pigeons, holes, err := pigeonholeCheck(active, meetingAvailability)
	log.Debug("zeitplan: precheck", "pigeons", pigeons, "holes", holes, "meetings", len(active))
	if err != nil {
		return nil, nil, err
	}

	ms := make([]solverMeeting, len(active))
	for i, m := range active {
		ms[i] = solverMeeting{
			id:         m.ID,
			duration:   m.Duration,
			candidates: collectWindows(meetingAvailability[m.ID], m.Duration),
		}
	}
	sortMostConstrained(ms)
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("zeitplan: meeting order", "trace", traceSolverMeetings(ms))
	}

	var result solveResult
	if cfg.parallelEnabled && cfg.shuffleWorkers > 0 {
		result, err = raceWorkers(ms, cfg)
	} else {
		result, err = solve(ms, cfg.budget, nil)
	}
	if err != nil {
		log.Info("zeitplan: search failed", "error", err)
		return nil, nil, err
	}

	log.Info("zeitplan: scheduled", "meetings", len(result.placements), "unplaced", len(unplaced))
	placements = result.placements
	sort.Slice(placements, func(i, j int) bool {
		return LexCompare(placements[i].Time, placements[j].Time) < 0
	})
	return placements, unplaced, nil
}

// AvailabilityOfParticipant is the pure helper spec.md §6 names: the
// ranges during which participant is free, given the global allowed set.
// It is exported for callers (such as a UI) that want to show a
// participant's availability without running the full scheduler.
func AvailabilityOfParticipant(participant Participant, globalAvailability []Interval) []Interval {
	return participant.Availability(globalAvailability)
}

// AvailabilityOfMeeting is the pure helper spec.md §6 names: the ranges
// long enough and free enough to hold meeting, given the global allowed
// set. It is exported for callers building a UI around the scheduler.
func AvailabilityOfMeeting(meeting Meeting, globalAvailability []Interval) []Interval {
	return meeting.Availability(globalAvailability)
}
