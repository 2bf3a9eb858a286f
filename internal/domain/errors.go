package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrDuplicateOrigin       = errors.New("a task already exists for this issue")
	ErrBranchAssociated      = errors.New("task already has a branch")
	ErrPullRequestAssociated = errors.New("task already has a pull request")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidStatus         = errors.New("invalid status")

	// Reference validation errors.
	ErrInvalidProvider          = errors.New("invalid provider")
	ErrInvalidRepository        = errors.New("invalid repository (want owner/repo)")
	ErrInvalidIssueNumber       = errors.New("invalid issue number")
	ErrInvalidPullRequestNumber = errors.New("invalid pull request number")
	ErrInvalidBranchName        = errors.New("invalid branch name")
	ErrMalformedReference       = errors.New("malformed reference")
)

// InvalidTransitionError reports an illegal status transition on a task.
// It unwraps to ErrInvalidTransition so callers can match with errors.Is.
type InvalidTransitionError struct {
	TaskID TaskID
	From   Status
	To     Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("task %s: cannot transition from %s to %s", e.TaskID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ReferenceError reports which field of a reference failed validation.
// It unwraps to the field-specific sentinel (ErrInvalidProvider etc.).
type ReferenceError struct {
	Err   error  // Field-specific sentinel
	Field string // "provider", "repository", "issue", "pull_request", "branch", "reference"
	Value string // Offending input
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
