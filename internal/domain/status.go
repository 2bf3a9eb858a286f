package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusDraft      Status = "draft"       // Created from an issue, no work started
	StatusInProgress Status = "in_progress" // Work underway
	StatusInReview   Status = "in_review"   // Pull request open, awaiting review
	StatusPaused     Status = "paused"      // Work suspended
	StatusDone       Status = "done"        // Completed (terminal)
	StatusAbandoned  Status = "abandoned"   // Given up (terminal)
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusInProgress,
		StatusInReview,
		StatusPaused,
		StatusDone,
		StatusAbandoned,
	}
}

// transitions defines the allowed status transitions.
// Flow: draft → in_progress → in_review → done
//
//	↑ ↓        ↑ ↓
//	paused     └ in_progress (rework)
//
// Every non-terminal status can be abandoned.
var transitions = map[Status][]Status{
	StatusDraft:      {StatusInProgress, StatusInReview, StatusAbandoned},
	StatusInProgress: {StatusInReview, StatusPaused, StatusDone, StatusAbandoned},
	StatusInReview:   {StatusInProgress, StatusDone, StatusAbandoned},
	StatusPaused:     {StatusInProgress, StatusAbandoned},
	StatusDone:       {},
	StatusAbandoned:  {},
}

// CanTransitionTo returns true if the status can transition to the target status.
// Self-transitions are never allowed, terminal states have no outgoing edges,
// and unknown statuses cannot transition anywhere.
func (s Status) CanTransitionTo(target Status) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusAbandoned
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusInReview, StatusPaused, StatusDone, StatusAbandoned:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusInProgress:
		return "In Progress"
	case StatusInReview:
		return "In Review"
	case StatusPaused:
		return "Paused"
	case StatusDone:
		return "Done"
	case StatusAbandoned:
		return "Abandoned"
	default:
		return string(s)
	}
}

// ParseStatus converts a string into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
