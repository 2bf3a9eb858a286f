// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// CreateFromIssueInput contains the parameters for creating a task from an issue.
type CreateFromIssueInput struct {
	Origin      domain.IssueRef // Issue the task originates from (required)
	Title       string          // Task title (optional)
	Description string          // Task description (optional)
}

// CreateFromIssueOutput contains the result of creating a task.
type CreateFromIssueOutput struct {
	Task *domain.Task // The created task
}

// CreateFromIssue is the use case for creating a task from an issue reference.
type CreateFromIssue struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateFromIssue creates a new CreateFromIssue use case.
func NewCreateFromIssue(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *CreateFromIssue {
	return &CreateFromIssue{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a draft task with a fresh ID. The store enforces that at
// most one task exists per origin issue; a collision surfaces as
// domain.ErrDuplicateOrigin.
func (uc *CreateFromIssue) Execute(ctx context.Context, in CreateFromIssueInput) (*CreateFromIssueOutput, error) {
	if err := in.Origin.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	task := domain.NewTask(domain.NewTaskID(), in.Origin, in.Title, in.Description, now)

	if err := uc.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrigin) {
			return nil, fmt.Errorf("issue %s: %w", in.Origin, domain.ErrDuplicateOrigin)
		}
		return nil, fmt.Errorf("create task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created from %s", in.Origin))
	}

	return &CreateFromIssueOutput{Task: task}, nil
}
