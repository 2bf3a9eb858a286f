// Package domain contains core business entities and interfaces.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID is the opaque 128-bit identifier of a task. IDs are generated at
// creation and never reused.
type TaskID = uuid.UUID

// NewTaskID generates a fresh random TaskID.
func NewTaskID() TaskID {
	return uuid.New()
}

// ParseTaskID parses a TaskID from its string form.
func ParseTaskID(s string) (TaskID, error) {
	return uuid.Parse(s)
}

// Task is the aggregate root of the lifecycle engine. It is created from an
// external issue reference and optionally linked to a branch and a pull
// request over its lifetime. The origin never changes; branch and pull
// request each move only from unset to set; status moves only along the
// transition table in status.go.
type Task struct {
	Created     time.Time       `json:"created"`               // Creation time
	Updated     time.Time       `json:"updated"`               // Last successful mutation, never decreases
	Branch      *BranchRef      `json:"branch,omitempty"`      // Linked branch (nil = not linked)
	PullRequest *PullRequestRef `json:"pullRequest,omitempty"` // Linked PR (nil = not linked)
	Title       string          `json:"title,omitempty"`       // Title (optional)
	Description string          `json:"description,omitempty"` // Description (optional)
	Status      Status          `json:"status"`                // Current status
	Origin      IssueRef        `json:"origin"`                // Issue the task was created from
	ID          TaskID          `json:"id"`                    // Task ID
}

// NewTask builds a draft task from its origin issue.
func NewTask(id TaskID, origin IssueRef, title, description string, now time.Time) *Task {
	return &Task{
		ID:          id,
		Origin:      origin,
		Title:       title,
		Description: description,
		Status:      StatusDraft,
		Created:     now,
		Updated:     now,
	}
}

// touch advances the mutation timestamp. A clock running behind the last
// recorded mutation must not move Updated backwards.
func (t *Task) touch(now time.Time) {
	if now.Before(t.Updated) {
		return
	}
	t.Updated = now
}

// TransitionTo moves the task to the target status if the transition table
// allows it. A rejected call leaves the task unchanged.
func (t *Task) TransitionTo(target Status, now time.Time) error {
	if !t.Status.CanTransitionTo(target) {
		return &InvalidTransitionError{TaskID: t.ID, From: t.Status, To: target}
	}
	t.Status = target
	t.touch(now)
	return nil
}

// AssociateBranch links a branch to the task. At most one branch is active
// per task; a second association is rejected and the original is retained.
// Linking a branch does not change the status.
func (t *Task) AssociateBranch(ref BranchRef, now time.Time) error {
	if t.Branch != nil {
		return ErrBranchAssociated
	}
	t.Branch = &ref
	t.touch(now)
	return nil
}

// AssociatePullRequest links a pull request to the task and moves it to
// in_review. The transition is checked before any field changes, so a
// rejected call (already linked, or terminal status) leaves the task
// unchanged.
func (t *Task) AssociatePullRequest(ref PullRequestRef, now time.Time) error {
	if t.PullRequest != nil {
		return ErrPullRequestAssociated
	}
	if !t.Status.CanTransitionTo(StatusInReview) {
		return &InvalidTransitionError{TaskID: t.ID, From: t.Status, To: StatusInReview}
	}
	t.PullRequest = &ref
	t.Status = StatusInReview
	t.touch(now)
	return nil
}

// Clone returns a deep copy of the task. Stores hand out clones so callers
// cannot mutate persisted state behind the aggregate's back.
func (t *Task) Clone() *Task {
	c := *t
	if t.Branch != nil {
		b := *t.Branch
		c.Branch = &b
	}
	if t.PullRequest != nil {
		p := *t.PullRequest
		c.PullRequest = &p
	}
	return &c
}
