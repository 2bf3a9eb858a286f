// Package memstore provides an in-memory implementation of domain.TaskStore.
// It is used for tests and the throwaway "memory" backend; a mutex guards
// the backing maps so the store is safe under concurrent callers.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/tasklink/tasklink/internal/domain"
)

// Store implements domain.TaskStore using in-process maps.
type Store struct {
	mu      sync.RWMutex
	tasks   map[domain.TaskID]*domain.Task
	origins map[domain.IssueRef]domain.TaskID
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		tasks:   make(map[domain.TaskID]*domain.Task),
		origins: make(map[domain.IssueRef]domain.TaskID),
	}
}

// Initialize is a no-op for the in-memory store.
func (s *Store) Initialize() error {
	return nil
}

// Create persists a new task. The origin index makes the uniqueness check
// atomic with the insert.
func (s *Store) Create(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.origins[task.Origin]; ok {
		return domain.ErrDuplicateOrigin
	}
	s.tasks[task.ID] = task.Clone()
	s.origins[task.Origin] = task.ID
	return nil
}

// Update replaces the stored record.
func (s *Store) Update(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.tasks[task.ID]
	if !ok {
		return domain.ErrTaskNotFound
	}
	// Full-record replace; keep the origin index consistent even though the
	// aggregate never changes its origin.
	if old.Origin != task.Origin {
		if id, taken := s.origins[task.Origin]; taken && id != task.ID {
			return domain.ErrDuplicateOrigin
		}
		delete(s.origins, old.Origin)
		s.origins[task.Origin] = task.ID
	}
	s.tasks[task.ID] = task.Clone()
	return nil
}

// FindByID retrieves a task by ID. Returns nil if not found.
func (s *Store) FindByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return task.Clone(), nil
}

// FindByOrigin retrieves the task created from the given issue.
func (s *Store) FindByOrigin(_ context.Context, origin domain.IssueRef) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.origins[origin]
	if !ok {
		return nil, nil
	}
	return s.tasks[id].Clone(), nil
}

// FindByBranch retrieves all tasks linked to the given branch.
func (s *Store) FindByBranch(_ context.Context, branch domain.BranchRef) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range s.tasks {
		if t.Branch != nil && *t.Branch == branch {
			tasks = append(tasks, t.Clone())
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

// FindByPullRequest retrieves all tasks linked to the given pull request.
func (s *Store) FindByPullRequest(_ context.Context, pr domain.PullRequestRef) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range s.tasks {
		if t.PullRequest != nil && *t.PullRequest == pr {
			tasks = append(tasks, t.Clone())
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

// List retrieves tasks matching the filter.
func (s *Store) List(_ context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*domain.Task
	for _, t := range s.tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		tasks = append(tasks, t.Clone())
	}
	sortTasks(tasks)
	return tasks, nil
}

// sortTasks orders by creation time, breaking ties by id for a
// deterministic listing.
func sortTasks(tasks []*domain.Task) {
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if c := a.Created.Compare(b.Created); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
}

// Ensure Store implements the ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
