package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/infra/memstore"
	"github.com/tasklink/tasklink/internal/testutil"
	"github.com/tasklink/tasklink/internal/usecase"
)

func TestNew_DefaultSQLiteStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workspace := t.TempDir()

	c, err := New(workspace)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, workspace, c.Config.Workspace)
	assert.Equal(t, domain.DataDir(workspace), c.Config.DataDir)
	assert.Equal(t, domain.DBPath(workspace), c.Config.StorePath)
	require.NotNil(t, c.Tasks)
	require.NotNil(t, c.StoreInitializer)

	// The store is usable after Initialize.
	require.NoError(t, c.StoreInitializer.Initialize())
	tasks, err := c.Tasks.List(context.Background(), domain.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestNew_MemoryStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workspace := t.TempDir()
	dataDir := domain.DataDir(workspace)
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	cfg := "[tasks]\nstore = \"memory\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(cfg), 0o644))

	c, err := New(workspace)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, ok := c.Tasks.(*memstore.Store)
	assert.True(t, ok)
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workspace := t.TempDir()
	dataDir := domain.DataDir(workspace)
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	cfg := "[tasks]\nstore = \"postgres\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(cfg), 0o644))

	_, err := New(workspace)
	require.Error(t, err)
}

func TestNewWithDeps_WiresUseCases(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := NewWithDeps(
		Config{},
		store,
		&testutil.MockStoreInitializer{},
		&testutil.MockClock{NowTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		&testutil.MockLogger{},
	)

	origin, err := domain.NewIssueRef("github", "acme/api", 42)
	require.NoError(t, err)

	uc := c.CreateFromIssueUseCase()
	out, err := uc.Execute(context.Background(), usecase.CreateFromIssueInput{Origin: origin})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, out.Task.Status)
	assert.Len(t, store.Tasks, 1)
}
