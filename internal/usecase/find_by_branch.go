package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// FindByBranchInput contains the parameters for the branch reverse lookup.
type FindByBranchInput struct {
	Branch domain.BranchRef
}

// FindByBranchOutput contains the lookup result.
type FindByBranchOutput struct {
	Tasks []*domain.Task // All tasks linked to the branch, possibly empty
}

// FindByBranch is the use case for finding every task linked to a branch.
// A branch may accumulate contributions from multiple tasks.
type FindByBranch struct {
	tasks domain.TaskStore
}

// NewFindByBranch creates a new FindByBranch use case.
func NewFindByBranch(tasks domain.TaskStore) *FindByBranch {
	return &FindByBranch{tasks: tasks}
}

// Execute returns all tasks linked to the branch.
func (uc *FindByBranch) Execute(ctx context.Context, in FindByBranchInput) (*FindByBranchOutput, error) {
	if err := in.Branch.Validate(); err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.FindByBranch(ctx, in.Branch)
	if err != nil {
		return nil, fmt.Errorf("find by branch: %w", err)
	}
	return &FindByBranchOutput{Tasks: tasks}, nil
}
