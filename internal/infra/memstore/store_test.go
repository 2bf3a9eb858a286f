package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/infra/storetest"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) domain.TaskStore {
		return New()
	})
}

// Concurrent creates against one origin: exactly one may win.
func TestStore_ConcurrentCreateSameOrigin(t *testing.T) {
	store := New()
	origin, err := domain.NewIssueRef("github", "corbusier/core", 200)
	require.NoError(t, err)

	const workers = 16
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task := domain.NewTask(domain.NewTaskID(), origin, "", "", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
			errs[i] = store.Create(context.Background(), task)
		}(i)
	}
	wg.Wait()

	var wins int
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, domain.ErrDuplicateOrigin)
		}
	}
	require.Equal(t, 1, wins)
}
