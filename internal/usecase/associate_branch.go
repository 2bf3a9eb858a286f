package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase/shared"
)

// AssociateBranchInput contains the parameters for linking a branch to a task.
type AssociateBranchInput struct {
	TaskID domain.TaskID
	Branch domain.BranchRef
}

// AssociateBranchOutput contains the result of linking a branch.
type AssociateBranchOutput struct {
	Task *domain.Task // The updated task
}

// AssociateBranch is the use case for linking a branch to a task.
// Many tasks may link the same branch; the one-branch-per-task rule is
// enforced by the aggregate.
type AssociateBranch struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAssociateBranch creates a new AssociateBranch use case.
func NewAssociateBranch(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *AssociateBranch {
	return &AssociateBranch{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute fetches the task, links the branch, and persists the result.
func (uc *AssociateBranch) Execute(ctx context.Context, in AssociateBranchInput) (*AssociateBranchOutput, error) {
	if err := in.Branch.Validate(); err != nil {
		return nil, err
	}

	task, err := shared.GetTask(ctx, uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if err := task.AssociateBranch(in.Branch, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("linked branch %s", in.Branch))
	}

	return &AssociateBranchOutput{Task: task}, nil
}
