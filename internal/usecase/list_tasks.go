package usecase

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status *domain.Status // nil = all statuses
}

// ListTasksOutput contains the list result.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskStore) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute lists tasks, optionally filtered by status.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("%q: %w", *in.Status, domain.ErrInvalidStatus)
	}

	tasks, err := uc.tasks.List(ctx, domain.TaskFilter{Status: in.Status})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
