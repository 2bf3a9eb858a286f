// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"slices"
	"time"

	"github.com/tasklink/tasklink/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward and returns the new time.
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.NowTime = m.NowTime.Add(d)
	return m.NowTime
}

// MockTaskStore is a test double for domain.TaskStore.
type MockTaskStore struct {
	Tasks     map[domain.TaskID]*domain.Task
	CreateErr error
	UpdateErr error
	FindErr   error
}

// NewMockTaskStore creates a new MockTaskStore with an initialized map.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{Tasks: make(map[domain.TaskID]*domain.Task)}
}

// Create persists a new task, enforcing origin uniqueness.
func (m *MockTaskStore) Create(_ context.Context, task *domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, t := range m.Tasks {
		if t.Origin == task.Origin {
			return domain.ErrDuplicateOrigin
		}
	}
	m.Tasks[task.ID] = task.Clone()
	return nil
}

// Update replaces a stored task.
func (m *MockTaskStore) Update(_ context.Context, task *domain.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.Tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task.Clone()
	return nil
}

// FindByID retrieves a task by ID.
func (m *MockTaskStore) FindByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task.Clone(), nil
}

// FindByOrigin retrieves the task created from the given issue.
func (m *MockTaskStore) FindByOrigin(_ context.Context, origin domain.IssueRef) (*domain.Task, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	for _, t := range m.Tasks {
		if t.Origin == origin {
			return t.Clone(), nil
		}
	}
	return nil, nil
}

// FindByBranch retrieves all tasks linked to the given branch.
func (m *MockTaskStore) FindByBranch(_ context.Context, branch domain.BranchRef) ([]*domain.Task, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if t.Branch != nil && *t.Branch == branch {
			tasks = append(tasks, t.Clone())
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

// FindByPullRequest retrieves all tasks linked to the given pull request.
func (m *MockTaskStore) FindByPullRequest(_ context.Context, pr domain.PullRequestRef) ([]*domain.Task, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if t.PullRequest != nil && *t.PullRequest == pr {
			tasks = append(tasks, t.Clone())
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

// List retrieves tasks matching the filter.
func (m *MockTaskStore) List(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var tasks []*domain.Task
	for _, t := range m.Tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		tasks = append(tasks, t.Clone())
	}
	sortTasks(tasks)
	return tasks, nil
}

// sortTasks orders by creation time, breaking ties by id for determinism.
func sortTasks(tasks []*domain.Task) {
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
}

// Initialize records the call.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}

// MockLogger is a test double for domain.Logger that records messages.
type MockLogger struct {
	Infos  []string
	Errors []string
}

// Info records an info message.
func (m *MockLogger) Info(_ domain.TaskID, component, msg string) {
	m.Infos = append(m.Infos, component+": "+msg)
}

// Error records an error message.
func (m *MockLogger) Error(_ domain.TaskID, component, msg string) {
	m.Errors = append(m.Errors, component+": "+msg)
}

// Ensure mocks implement their ports.
var (
	_ domain.TaskStore        = (*MockTaskStore)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
)
