package usecase

import (
	"context"

	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID domain.TaskID
}

// ShowTaskOutput contains the task snapshot.
type ShowTaskOutput struct {
	Task *domain.Task
}

// ShowTask is the use case for fetching a single task snapshot.
type ShowTask struct {
	tasks domain.TaskStore
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskStore) *ShowTask {
	return &ShowTask{tasks: tasks}
}

// Execute fetches the task or fails with domain.ErrTaskNotFound.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.GetTask(ctx, uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}
	return &ShowTaskOutput{Task: task}, nil
}
