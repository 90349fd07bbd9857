package zeitplan

import (
	"io"
	"log/slog"
)

// Mode controls what Schedule does with a meeting whose availability
// (after C4's duration filter) is empty. spec.md §4.6 and §9 note the
// original implementation was inconsistent on this point across versions
// and asks a reimplementation to pick one behavior and expose the choice.
type Mode int

const (
	// ModeStrict (the default) treats an empty-availability meeting as an
	// immediate NoSolution - the instance as a whole cannot be satisfied.
	ModeStrict Mode = iota
	// ModeRelaxed drops an empty-availability meeting from the search and
	// reports its id in Schedule's unplaced return value instead.
	ModeRelaxed
)

// DefaultShuffleWorkers is the recommended number of additional randomly-
// ordered workers for C7 to race alongside the deterministic primary,
// matching spec.md §4.7. Pass it to WithParallel to use it; without
// WithParallel no extra workers run.
const DefaultShuffleWorkers = 45

// config collects every tunable Schedule accepts. It is built up by
// Option values in the teacher's own functional-options idiom
// (github.com/JensRantil/meeting-scheduler's Config func(*Scheduler)).
type config struct {
	mode Mode

	budget          *int
	shuffleWorkers  int
	parallelEnabled bool

	maxAvailabilityRanges int
	maxParticipants       int
	maxMeetings           int

	logger *slog.Logger
}

func newConfig() *config {
	return &config{
		mode:                  ModeStrict,
		shuffleWorkers:        DefaultShuffleWorkers,
		maxAvailabilityRanges: defaultMaxAvailabilityRanges,
		maxParticipants:       defaultMaxParticipants,
		maxMeetings:           defaultMaxMeetings,
	}
}

// Option configures a call to Schedule.
type Option func(*config)

// WithMode selects strict or relaxed handling of empty-availability
// meetings (see Mode).
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithBudget caps every solver worker at b attempted extensions
// (spec.md's execution_limit / per_thread knob). Without this option the
// search runs to exhaustion.
func WithBudget(b int) Option {
	return func(c *config) { c.budget = &b }
}

// WithParallel enables C7: the deterministic search races against
// additional randomly-ordered workers. k is spec.md's num_shuffles and
// always replaces the configured worker count; pass DefaultShuffleWorkers
// for the recommended count, or 0 to disable the extra workers while
// still naming the option.
func WithParallel(k int) Option {
	return func(c *config) {
		c.parallelEnabled = true
		c.shuffleWorkers = k
	}
}

// WithLogger attaches optional structured logging of precheck counts and
// search outcome. A nil logger (the default) produces no output - logging
// is purely observational here, never part of correctness.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMaxAvailabilityRanges overrides the ceiling on how many blocked or
// global availability ranges a single participant/meeting/schedule may
// carry. n <= 0 disables the ceiling.
func WithMaxAvailabilityRanges(n int) Option {
	return func(c *config) { c.maxAvailabilityRanges = n }
}

// WithMaxParticipants overrides the ceiling on participant count. n <= 0
// disables the ceiling.
func WithMaxParticipants(n int) Option {
	return func(c *config) { c.maxParticipants = n }
}

// WithMaxMeetings overrides the ceiling on meeting count. n <= 0 disables
// the ceiling.
func WithMaxMeetings(n int) Option {
	return func(c *config) { c.maxMeetings = n }
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return discardLogger
	}
	return c.logger
}

// discardLogger is the no-op backend for config.log() when the caller
// didn't provide one - logging is purely observational here, never part
// of correctness, so a silent default keeps Schedule usable standalone.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
