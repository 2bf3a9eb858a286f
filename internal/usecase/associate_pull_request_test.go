package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklink/tasklink/internal/domain"
)

func TestAssociatePullRequest_Execute_DraftMovesToInReview(t *testing.T) {
	store := newMockTaskStore()
	task := seedTask(store, testOrigin, domain.StatusDraft)
	clock := &mockClock{now: testTime.Add(time.Minute)}
	uc := NewAssociatePullRequest(store, clock, nil)

	out, err := uc.Execute(context.Background(), AssociatePullRequestInput{
		TaskID:      task.ID,
		PullRequest: testPR,
	})

	require.NoError(t, err)
	require.NotNil(t, out.Task.PullRequest)
	assert.Equal(t, testPR, *out.Task.PullRequest)
	assert.Equal(t, domain.StatusInReview, out.Task.Status)

	stored := store.tasks[task.ID]
	assert.Equal(t, domain.StatusInReview, stored.Status)
}

func TestAssociatePullRequest_Execute_TerminalTask(t *testing.T) {
	store := newMockTaskStore()
	task := seedTask(store, testOrigin, domain.StatusDone)
	uc := NewAssociatePullRequest(store, &mockClock{now: testTime.Add(time.Minute)}, nil)

	_, err := uc.Execute(context.Background(), AssociatePullRequestInput{
		TaskID:      task.ID,
		PullRequest: testPR,
	})

	var itErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &itErr)
	assert.Equal(t, domain.StatusDone, itErr.From)
	assert.Equal(t, domain.StatusInReview, itErr.To)
	assert.Equal(t, task.ID, itErr.TaskID)

	stored := store.tasks[task.ID]
	assert.Nil(t, stored.PullRequest, "pull request must remain unset")
	assert.Equal(t, domain.StatusDone, stored.Status)
}

func TestAssociatePullRequest_Execute_AlreadyAssociated(t *testing.T) {
	store := newMockTaskStore()
	task := seedTask(store, testOrigin, domain.StatusDraft)
	uc := NewAssociatePullRequest(store, &mockClock{now: testTime.Add(time.Minute)}, nil)

	_, err := uc.Execute(context.Background(), AssociatePullRequestInput{TaskID: task.ID, PullRequest: testPR})
	require.NoError(t, err)

	other := domain.PullRequestRef{Provider: domain.ProviderGitHub, Repo: "corbusier/core", Number: 43}
	_, err = uc.Execute(context.Background(), AssociatePullRequestInput{TaskID: task.ID, PullRequest: other})
	require.ErrorIs(t, err, domain.ErrPullRequestAssociated)

	stored := store.tasks[task.ID]
	assert.Equal(t, testPR, *stored.PullRequest)
}

func TestAssociatePullRequest_Execute_NotFound(t *testing.T) {
	store := newMockTaskStore()
	uc := NewAssociatePullRequest(store, &mockClock{now: testTime}, nil)

	_, err := uc.Execute(context.Background(), AssociatePullRequestInput{
		TaskID:      domain.NewTaskID(),
		PullRequest: testPR,
	})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAssociatePullRequest_Execute_UpdateError(t *testing.T) {
	store := newMockTaskStore()
	task := seedTask(store, testOrigin, domain.StatusDraft)
	store.updateErr = errors.New("write failed")
	uc := NewAssociatePullRequest(store, &mockClock{now: testTime.Add(time.Minute)}, nil)

	_, err := uc.Execute(context.Background(), AssociatePullRequestInput{TaskID: task.ID, PullRequest: testPR})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed")

	stored := store.tasks[task.ID]
	assert.Nil(t, stored.PullRequest, "failed update must not leak into the store")
}
