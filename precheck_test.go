package zeitplan

import "testing"

func TestValidateStructureRejectsZeroDuration(t *testing.T) {
	cfg := newConfig()
	meetings := []Meeting{{ID: "a", Duration: 0}}
	if err := validateStructure(meetings, cfg); err == nil {
		t.Error("expected an error for a zero-duration meeting")
	}
}

func TestValidateStructureRejectsDuplicateMeetingID(t *testing.T) {
	cfg := newConfig()
	meetings := []Meeting{{ID: "a", Duration: 1}, {ID: "a", Duration: 1}}
	if err := validateStructure(meetings, cfg); err == nil {
		t.Error("expected an error for a duplicate meeting id")
	}
}

func TestValidateStructureEnforcesMaxMeetings(t *testing.T) {
	cfg := newConfig()
	cfg.maxMeetings = 1
	meetings := []Meeting{{ID: "a", Duration: 1}, {ID: "b", Duration: 1}}
	if err := validateStructure(meetings, cfg); err == nil {
		t.Error("expected an error for exceeding the meeting ceiling")
	}
}

func TestValidateStructureAcceptsValidMeetings(t *testing.T) {
	cfg := newConfig()
	meetings := []Meeting{{ID: "a", Duration: 1}, {ID: "b", Duration: 2}}
	if err := validateStructure(meetings, cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateParticipantsRejectsDuplicateID(t *testing.T) {
	cfg := newConfig()
	participants := []Participant{{ID: "p"}, {ID: "p"}}
	if err := validateParticipants(participants, cfg); err == nil {
		t.Error("expected an error for duplicate participant id")
	}
}

func TestValidateParticipantsEnforcesMaxParticipants(t *testing.T) {
	cfg := newConfig()
	cfg.maxParticipants = 1
	participants := []Participant{{ID: "a"}, {ID: "b"}}
	if err := validateParticipants(participants, cfg); err == nil {
		t.Error("expected an error for exceeding the participant ceiling")
	}
}

func TestValidateAvailabilitySizeEnforcesCeiling(t *testing.T) {
	cfg := newConfig()
	cfg.maxAvailabilityRanges = 1
	availability := ivs(0, 1, 2, 3)
	if err := validateAvailabilitySize(availability, cfg); err == nil {
		t.Error("expected an error for exceeding the availability-range ceiling")
	}
}

func TestPigeonholeCheckPassesWhenHolesSuffice(t *testing.T) {
	meetings := []Meeting{{ID: "a", Duration: 2}, {ID: "b", Duration: 1}}
	availability := map[string][]Interval{
		"a": ivs(0, 2),
		"b": ivs(0, 1),
	}
	pigeons, holes, err := pigeonholeCheck(meetings, availability)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pigeons != 3 || holes != 3 {
		t.Errorf("pigeons=%d holes=%d, want 3, 3", pigeons, holes)
	}
}

func TestPigeonholeCheckFailsWhenPigeonsExceedHoles(t *testing.T) {
	meetings := []Meeting{{ID: "a", Duration: 2}, {ID: "b", Duration: 1}}
	availability := map[string][]Interval{
		"a": ivs(0, 1),
		"b": ivs(0, 1),
	}
	meetings[0].Duration = 3
	_, _, err := pigeonholeCheck(meetings, availability)
	var infeasible *PigeonholeInfeasible
	if err == nil {
		t.Fatal("expected a PigeonholeInfeasible error")
	}
	if !isPigeonholeInfeasible(err, &infeasible) {
		t.Errorf("expected *PigeonholeInfeasible, got %T", err)
	}
}

func TestPigeonholeCheckIgnoresMeetingsWithNoAvailability(t *testing.T) {
	meetings := []Meeting{{ID: "a", Duration: 5}}
	availability := map[string][]Interval{"a": nil}
	pigeons, holes, err := pigeonholeCheck(meetings, availability)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pigeons != 0 || holes != 0 {
		t.Errorf("pigeons=%d holes=%d, want 0, 0", pigeons, holes)
	}
}

func isPigeonholeInfeasible(err error, target **PigeonholeInfeasible) bool {
	if pi, ok := err.(*PigeonholeInfeasible); ok {
		*target = pi
		return true
	}
	return false
}
