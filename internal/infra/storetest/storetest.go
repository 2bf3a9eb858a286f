// Package storetest provides a contract test suite that every
// domain.TaskStore implementation must pass. The service is written against
// the port and must behave identically over the in-memory and sqlite
// adapters, so both run this one suite.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklink/tasklink/internal/domain"
)

// Factory builds a fresh, initialized, empty store for one subtest.
type Factory func(t *testing.T) domain.TaskStore

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTask(t *testing.T, issue int64, created time.Time) *domain.Task {
	t.Helper()
	origin, err := domain.NewIssueRef("github", "corbusier/core", issue)
	require.NoError(t, err)
	return domain.NewTask(domain.NewTaskID(), origin, "task", "", created)
}

// Run exercises the TaskStore contract against the given factory.
func Run(t *testing.T, factory Factory) {
	ctx := context.Background()

	t.Run("CreateAndFindByID", func(t *testing.T) {
		store := factory(t)
		task := newTask(t, 200, baseTime)
		require.NoError(t, store.Create(ctx, task))

		got, err := store.FindByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, task.ID, got.ID)
		assert.Equal(t, task.Origin, got.Origin)
		assert.Equal(t, domain.StatusDraft, got.Status)
		assert.True(t, got.Created.Equal(task.Created))
		assert.True(t, got.Updated.Equal(task.Updated))
		assert.Nil(t, got.Branch)
		assert.Nil(t, got.PullRequest)
	})

	t.Run("FindByIDMiss", func(t *testing.T) {
		store := factory(t)
		got, err := store.FindByID(ctx, domain.NewTaskID())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("DuplicateOrigin", func(t *testing.T) {
		store := factory(t)
		first := newTask(t, 200, baseTime)
		require.NoError(t, store.Create(ctx, first))

		second := newTask(t, 200, baseTime.Add(time.Minute))
		err := store.Create(ctx, second)
		require.ErrorIs(t, err, domain.ErrDuplicateOrigin)

		// The first record must be untouched.
		got, err := store.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("FindByOrigin", func(t *testing.T) {
		store := factory(t)
		task := newTask(t, 200, baseTime)
		require.NoError(t, store.Create(ctx, task))

		got, err := store.FindByOrigin(ctx, task.Origin)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, task.ID, got.ID)

		other, err := domain.NewIssueRef("github", "corbusier/core", 999)
		require.NoError(t, err)
		got, err = store.FindByOrigin(ctx, other)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UpdatePersistsMutations", func(t *testing.T) {
		store := factory(t)
		task := newTask(t, 200, baseTime)
		require.NoError(t, store.Create(ctx, task))

		branch, err := domain.NewBranchRef("github", "corbusier/core", "feature/x")
		require.NoError(t, err)
		require.NoError(t, task.AssociateBranch(branch, baseTime.Add(time.Minute)))
		require.NoError(t, task.TransitionTo(domain.StatusInProgress, baseTime.Add(2*time.Minute)))
		require.NoError(t, store.Update(ctx, task))

		got, err := store.FindByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.StatusInProgress, got.Status)
		require.NotNil(t, got.Branch)
		assert.Equal(t, branch, *got.Branch)
		assert.True(t, got.Updated.Equal(baseTime.Add(2*time.Minute)))
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		store := factory(t)
		task := newTask(t, 200, baseTime)
		err := store.Update(ctx, task)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("FindByBranchManyToMany", func(t *testing.T) {
		store := factory(t)
		branch, err := domain.NewBranchRef("github", "corbusier/core", "feature/x")
		require.NoError(t, err)

		var ids []domain.TaskID
		for i := int64(1); i <= 3; i++ {
			task := newTask(t, i, baseTime.Add(time.Duration(i)*time.Minute))
			if i < 3 { // third task stays unlinked
				require.NoError(t, task.AssociateBranch(branch, task.Created))
			}
			require.NoError(t, store.Create(ctx, task))
			ids = append(ids, task.ID)
		}

		got, err := store.FindByBranch(ctx, branch)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ids[0], got[0].ID, "ordered by creation time")
		assert.Equal(t, ids[1], got[1].ID)

		other, err := domain.NewBranchRef("github", "corbusier/core", "feature/other")
		require.NoError(t, err)
		got, err = store.FindByBranch(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("FindByPullRequest", func(t *testing.T) {
		store := factory(t)
		pr, err := domain.NewPullRequestRef("github", "corbusier/core", 42)
		require.NoError(t, err)

		for i := int64(1); i <= 2; i++ {
			task := newTask(t, i, baseTime.Add(time.Duration(i)*time.Minute))
			require.NoError(t, task.AssociatePullRequest(pr, task.Created.Add(time.Second)))
			require.NoError(t, store.Create(ctx, task))
		}

		got, err := store.FindByPullRequest(ctx, pr)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		for _, task := range got {
			require.NotNil(t, task.PullRequest)
			assert.Equal(t, pr, *task.PullRequest)
			assert.Equal(t, domain.StatusInReview, task.Status)
		}
	})

	t.Run("ListWithStatusFilter", func(t *testing.T) {
		store := factory(t)
		draft := newTask(t, 1, baseTime)
		require.NoError(t, store.Create(ctx, draft))

		started := newTask(t, 2, baseTime.Add(time.Minute))
		require.NoError(t, started.TransitionTo(domain.StatusInProgress, started.Created))
		require.NoError(t, store.Create(ctx, started))

		all, err := store.List(ctx, domain.TaskFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, draft.ID, all[0].ID)

		inProgress := domain.StatusInProgress
		filtered, err := store.List(ctx, domain.TaskFilter{Status: &inProgress})
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, started.ID, filtered[0].ID)
	})

	t.Run("ReturnedTasksDoNotAliasStoredState", func(t *testing.T) {
		store := factory(t)
		task := newTask(t, 200, baseTime)
		require.NoError(t, store.Create(ctx, task))

		got, err := store.FindByID(ctx, task.ID)
		require.NoError(t, err)
		got.Status = domain.StatusAbandoned
		got.Title = "mutated"

		again, err := store.FindByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, again.Status)
		assert.Equal(t, "task", again.Title)
	})
}
