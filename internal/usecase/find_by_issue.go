package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// FindByIssueInput contains the parameters for looking up a task by its origin.
type FindByIssueInput struct {
	Origin domain.IssueRef
}

// FindByIssueOutput contains the lookup result.
type FindByIssueOutput struct {
	Task *domain.Task // nil if no task originates from the issue
}

// FindByIssue is the use case for looking up the task created from an issue.
type FindByIssue struct {
	tasks domain.TaskStore
}

// NewFindByIssue creates a new FindByIssue use case.
func NewFindByIssue(tasks domain.TaskStore) *FindByIssue {
	return &FindByIssue{tasks: tasks}
}

// Execute looks up the task by origin. At most one task can exist per issue.
func (uc *FindByIssue) Execute(ctx context.Context, in FindByIssueInput) (*FindByIssueOutput, error) {
	if err := in.Origin.Validate(); err != nil {
		return nil, err
	}

	task, err := uc.tasks.FindByOrigin(ctx, in.Origin)
	if err != nil {
		return nil, fmt.Errorf("find by origin: %w", err)
	}
	return &FindByIssueOutput{Task: task}, nil
}
