package zeitplan

import (
	"strings"
	"testing"
)

func TestTraceSolverMeetingsRendersEachMeeting(t *testing.T) {
	ms := []solverMeeting{
		{id: "A", duration: 1, candidates: ivs(0, 0, 1, 1)},
		{id: "B", duration: 2, candidates: ivs(5, 6)},
	}
	out := traceSolverMeetings(ms)
	if !strings.Contains(out, "A") || !strings.Contains(out, "B") {
		t.Errorf("trace output missing a meeting id: %s", out)
	}
}
