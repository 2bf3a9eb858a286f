package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// FindByPullRequestInput contains the parameters for the PR reverse lookup.
type FindByPullRequestInput struct {
	PullRequest domain.PullRequestRef
}

// FindByPullRequestOutput contains the lookup result.
type FindByPullRequestOutput struct {
	Tasks []*domain.Task // All tasks linked to the pull request, possibly empty
}

// FindByPullRequest is the use case for finding every task linked to a
// pull request.
type FindByPullRequest struct {
	tasks domain.TaskStore
}

// NewFindByPullRequest creates a new FindByPullRequest use case.
func NewFindByPullRequest(tasks domain.TaskStore) *FindByPullRequest {
	return &FindByPullRequest{tasks: tasks}
}

// Execute returns all tasks linked to the pull request.
func (uc *FindByPullRequest) Execute(ctx context.Context, in FindByPullRequestInput) (*FindByPullRequestOutput, error) {
	if err := in.PullRequest.Validate(); err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.FindByPullRequest(ctx, in.PullRequest)
	if err != nil {
		return nil, fmt.Errorf("find by pull request: %w", err)
	}
	return &FindByPullRequestOutput{Tasks: tasks}, nil
}
