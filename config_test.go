package zeitplan

import (
	"log/slog"
	"os"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := newConfig()
	if cfg.mode != ModeStrict {
		t.Errorf("default mode = %v, want ModeStrict", cfg.mode)
	}
	if cfg.shuffleWorkers != DefaultShuffleWorkers {
		t.Errorf("default shuffleWorkers = %d, want %d", cfg.shuffleWorkers, DefaultShuffleWorkers)
	}
	if cfg.parallelEnabled {
		t.Error("parallel search should be disabled by default")
	}
	if cfg.budget != nil {
		t.Error("default budget should be unset")
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	cfg := newConfig()
	opts := []Option{
		WithMode(ModeRelaxed),
		WithBudget(10),
		WithParallel(7),
		WithMaxAvailabilityRanges(5),
		WithMaxParticipants(6),
		WithMaxMeetings(8),
	}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.mode != ModeRelaxed {
		t.Errorf("mode = %v, want ModeRelaxed", cfg.mode)
	}
	if cfg.budget == nil || *cfg.budget != 10 {
		t.Errorf("budget = %v, want 10", cfg.budget)
	}
	if !cfg.parallelEnabled || cfg.shuffleWorkers != 7 {
		t.Errorf("parallel config = (%v, %d), want (true, 7)", cfg.parallelEnabled, cfg.shuffleWorkers)
	}
	if cfg.maxAvailabilityRanges != 5 || cfg.maxParticipants != 6 || cfg.maxMeetings != 8 {
		t.Errorf("unexpected ceilings: %+v", cfg)
	}
}

func TestConfigLogFallsBackToDiscardLogger(t *testing.T) {
	cfg := newConfig()
	if cfg.log() != discardLogger {
		t.Error("expected the discard logger when none is configured")
	}

	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	WithLogger(custom)(cfg)
	if cfg.log() != custom {
		t.Error("expected the configured logger to be returned")
	}
}
