package domain

import "testing"

// allowedTransitions mirrors the transition table. Any ordered pair not
// listed here must be rejected, including self-transitions.
var allowedTransitions = map[Status]map[Status]bool{
	StatusDraft:      {StatusInProgress: true, StatusInReview: true, StatusAbandoned: true},
	StatusInProgress: {StatusInReview: true, StatusPaused: true, StatusDone: true, StatusAbandoned: true},
	StatusInReview:   {StatusInProgress: true, StatusDone: true, StatusAbandoned: true},
	StatusPaused:     {StatusInProgress: true, StatusAbandoned: true},
	StatusDone:       {},
	StatusAbandoned:  {},
}

func TestStatus_CanTransitionTo_AllPairs(t *testing.T) {
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			want := allowedTransitions[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatus_CanTransitionTo_NoSelfTransitions(t *testing.T) {
	for _, s := range AllStatuses() {
		if s.CanTransitionTo(s) {
			t.Errorf("%s should not transition to itself", s)
		}
	}
}

func TestStatus_CanTransitionTo_UnknownStatus(t *testing.T) {
	unknown := Status("unknown")
	for _, s := range AllStatuses() {
		if unknown.CanTransitionTo(s) {
			t.Errorf("unknown status should not transition to %s", s)
		}
		if s.CanTransitionTo(unknown) {
			t.Errorf("%s should not transition to an unknown status", s)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusDraft, false},
		{StatusInProgress, false},
		{StatusInReview, false},
		{StatusPaused, false},
		{StatusDone, true},
		{StatusAbandoned, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
		})
	}
}

func TestStatus_TerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, from := range AllStatuses() {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range AllStatuses() {
			if from.CanTransitionTo(to) {
				t.Errorf("terminal status %s should not transition to %s", from, to)
			}
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusDraft, true},
		{StatusInProgress, true},
		{StatusInReview, true},
		{StatusPaused, true},
		{StatusDone, true},
		{StatusAbandoned, true},
		{Status("todo"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status  Status
		display string
	}{
		{StatusDraft, "Draft"},
		{StatusInProgress, "In Progress"},
		{StatusInReview, "In Review"},
		{StatusPaused, "Paused"},
		{StatusDone, "Done"},
		{StatusAbandoned, "Abandoned"},
		{Status("unknown"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Display(); got != tt.display {
				t.Errorf("Display() = %v, want %v", got, tt.display)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("in_review")
	if err != nil {
		t.Fatalf("ParseStatus(in_review) returned error: %v", err)
	}
	if st != StatusInReview {
		t.Errorf("ParseStatus(in_review) = %v, want %v", st, StatusInReview)
	}

	if _, err := ParseStatus("reviewing"); err == nil {
		t.Error("ParseStatus(reviewing) should fail")
	}
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 6 {
		t.Fatalf("AllStatuses() returned %d statuses, want 6", len(statuses))
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("AllStatuses() contains invalid status %s", s)
		}
	}
}
