package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase/shared"
)

// AssociatePullRequestInput contains the parameters for linking a pull
// request to a task.
type AssociatePullRequestInput struct {
	TaskID      domain.TaskID
	PullRequest domain.PullRequestRef
}

// AssociatePullRequestOutput contains the result of linking a pull request.
type AssociatePullRequestOutput struct {
	Task *domain.Task // The updated task
}

// AssociatePullRequest is the use case for linking a pull request to a task.
// Linking a PR is also a status transition to in_review, so it fails on
// tasks whose status cannot reach in_review.
type AssociatePullRequest struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAssociatePullRequest creates a new AssociatePullRequest use case.
func NewAssociatePullRequest(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *AssociatePullRequest {
	return &AssociatePullRequest{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute fetches the task, links the pull request, and persists the result.
func (uc *AssociatePullRequest) Execute(ctx context.Context, in AssociatePullRequestInput) (*AssociatePullRequestOutput, error) {
	if err := in.PullRequest.Validate(); err != nil {
		return nil, err
	}

	task, err := shared.GetTask(ctx, uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if err := task.AssociatePullRequest(in.PullRequest, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("linked pull request %s", in.PullRequest))
	}

	return &AssociatePullRequestOutput{Task: task}, nil
}
