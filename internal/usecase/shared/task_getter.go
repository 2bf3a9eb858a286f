// Package shared contains helpers used by multiple use cases.
package shared

import (
	"context"
	"fmt"

	"github.com/tasklink/tasklink/internal/domain"
)

// GetTask retrieves a task by ID and returns domain.ErrTaskNotFound if not found.
// This centralizes the common pattern of:
//
//	task, err := store.FindByID(ctx, id)
//	if err != nil { return nil, fmt.Errorf("get task: %w", err) }
//	if task == nil { return nil, domain.ErrTaskNotFound }
func GetTask(ctx context.Context, store domain.TaskStore, id domain.TaskID) (*domain.Task, error) {
	task, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
