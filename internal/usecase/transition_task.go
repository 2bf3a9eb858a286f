package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase/shared"
)

// TransitionTaskInput contains the parameters for moving a task to a new status.
type TransitionTaskInput struct {
	TaskID domain.TaskID
	Target domain.Status
}

// TransitionTaskOutput contains the result of a status transition.
type TransitionTaskOutput struct {
	Task *domain.Task // The updated task
}

// TransitionTask is the use case for an explicit status transition request.
// Illegal transitions are rejected by the aggregate and never coerced to a
// nearby legal state.
type TransitionTask struct {
	tasks  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewTransitionTask creates a new TransitionTask use case.
func NewTransitionTask(tasks domain.TaskStore, clock domain.Clock, logger domain.Logger) *TransitionTask {
	return &TransitionTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute fetches the task, applies the transition, and persists the result.
func (uc *TransitionTask) Execute(ctx context.Context, in TransitionTaskInput) (*TransitionTaskOutput, error) {
	if !in.Target.IsValid() {
		return nil, fmt.Errorf("%q: %w", in.Target, domain.ErrInvalidStatus)
	}

	task, err := shared.GetTask(ctx, uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	from := task.Status
	if err := task.TransitionTo(in.Target, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("status %s -> %s", from, in.Target))
	}

	return &TransitionTaskOutput{Task: task}, nil
}
