package zeitplan

import "github.com/k0kubun/pp"

// traceSolverMeetings renders a solver's meeting order and candidate
// counts for debugging - never called from the production search path,
// only from tests and the optional debug logging in Schedule when a
// logger at Debug level is attached. Mirrors the teacher's own use of
// pp.Sprint to render scheduling output in test failure messages
// (github.com/JensRantil/meeting-scheduler's lib_test.go).
func traceSolverMeetings(ms []solverMeeting) string {
	type traced struct {
		ID         string
		Duration   Unit
		Candidates int
	}
	rows := make([]traced, len(ms))
	for i, m := range ms {
		rows[i] = traced{ID: m.id, Duration: m.duration, Candidates: len(m.candidates)}
	}
	return pp.Sprint(rows)
}
