package domain

import (
	"context"
	"time"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskStore manages task persistence. It is the subsystem's only suspension
// point, so every method takes a context.
//
// Update is a full-record replace with no version check: two callers racing
// a fetch-mutate-persist cycle on the same task will last-writer-win. This
// is a known limitation; strengthen Update with a conditional-write
// parameter before multi-writer production use.
type TaskStore interface {
	// Create persists a new task. Returns ErrDuplicateOrigin if a task with
	// the same origin already exists; the check is atomic with the insert.
	Create(ctx context.Context, task *Task) error

	// Update replaces the stored record. Returns ErrTaskNotFound if the id
	// does not exist.
	Update(ctx context.Context, task *Task) error

	// FindByID retrieves a task by ID. Returns nil if not found.
	FindByID(ctx context.Context, id TaskID) (*Task, error)

	// FindByOrigin retrieves the task created from the given issue.
	// Returns nil if not found.
	FindByOrigin(ctx context.Context, origin IssueRef) (*Task, error)

	// FindByBranch retrieves all tasks linked to the given branch,
	// ordered by creation time then id.
	FindByBranch(ctx context.Context, branch BranchRef) ([]*Task, error)

	// FindByPullRequest retrieves all tasks linked to the given pull
	// request, ordered by creation time then id.
	FindByPullRequest(ctx context.Context, pr PullRequestRef) ([]*Task, error)

	// List retrieves tasks matching the filter, ordered by creation time
	// then id.
	List(ctx context.Context, filter TaskFilter) ([]*Task, error)
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Status *Status // nil = all statuses
}

// Logger records lifecycle events for a task.
type Logger interface {
	// Info logs an informational message for a task.
	Info(id TaskID, component, msg string)

	// Error logs an error message for a task.
	Error(id TaskID, component, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
