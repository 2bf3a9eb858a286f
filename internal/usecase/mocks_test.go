package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/tasklink/tasklink/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockTaskStore is a test double for domain.TaskStore.
type mockTaskStore struct {
	tasks     map[domain.TaskID]*domain.Task
	createErr error
	updateErr error
	findErr   error
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{tasks: make(map[domain.TaskID]*domain.Task)}
}

func (m *mockTaskStore) Create(_ context.Context, task *domain.Task) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, t := range m.tasks {
		if t.Origin == task.Origin {
			return domain.ErrDuplicateOrigin
		}
	}
	m.tasks[task.ID] = task.Clone()
	return nil
}

func (m *mockTaskStore) Update(_ context.Context, task *domain.Task) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	m.tasks[task.ID] = task.Clone()
	return nil
}

func (m *mockTaskStore) FindByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, nil
	}
	return task.Clone(), nil
}

func (m *mockTaskStore) FindByOrigin(_ context.Context, origin domain.IssueRef) (*domain.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, t := range m.tasks {
		if t.Origin == origin {
			return t.Clone(), nil
		}
	}
	return nil, nil
}

func (m *mockTaskStore) FindByBranch(_ context.Context, branch domain.BranchRef) ([]*domain.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if t.Branch != nil && *t.Branch == branch {
			tasks = append(tasks, t.Clone())
		}
	}
	sortByCreation(tasks)
	return tasks, nil
}

func (m *mockTaskStore) FindByPullRequest(_ context.Context, pr domain.PullRequestRef) ([]*domain.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if t.PullRequest != nil && *t.PullRequest == pr {
			tasks = append(tasks, t.Clone())
		}
	}
	sortByCreation(tasks)
	return tasks, nil
}

func (m *mockTaskStore) List(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var tasks []*domain.Task
	for _, t := range m.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		tasks = append(tasks, t.Clone())
	}
	sortByCreation(tasks)
	return tasks, nil
}

func sortByCreation(tasks []*domain.Task) {
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}

// Shared fixtures.
var (
	testOrigin = domain.IssueRef{Provider: domain.ProviderGitHub, Repo: "corbusier/core", Number: 200}
	testBranch = domain.BranchRef{Provider: domain.ProviderGitHub, Repo: "corbusier/core", Name: "feature/x"}
	testPR     = domain.PullRequestRef{Provider: domain.ProviderGitHub, Repo: "corbusier/core", Number: 42}
	testTime   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func seedTask(store *mockTaskStore, origin domain.IssueRef, status domain.Status) *domain.Task {
	task := domain.NewTask(domain.NewTaskID(), origin, "seeded", "", testTime)
	task.Status = status
	store.tasks[task.ID] = task
	return task
}
