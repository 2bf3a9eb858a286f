package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInitializer struct {
	calls int
	err   error
}

func (s *stubInitializer) Initialize() error {
	s.calls++
	return s.err
}

func TestInitWorkspace_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), ".tasklink")
	init := &stubInitializer{}
	uc := NewInitWorkspace(init)

	out, err := uc.Execute(context.Background(), InitWorkspaceInput{DataDir: dataDir})

	require.NoError(t, err)
	assert.Equal(t, dataDir, out.DataDir)
	assert.False(t, out.AlreadyInitialized)
	assert.Equal(t, 1, init.calls)

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitWorkspace_Idempotent(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), ".tasklink")
	require.NoError(t, os.MkdirAll(dataDir, 0o750))
	uc := NewInitWorkspace(&stubInitializer{})

	out, err := uc.Execute(context.Background(), InitWorkspaceInput{DataDir: dataDir})

	require.NoError(t, err)
	assert.True(t, out.AlreadyInitialized)
}

func TestInitWorkspace_StoreError(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), ".tasklink")
	uc := NewInitWorkspace(&stubInitializer{err: errors.New("disk full")})

	_, err := uc.Execute(context.Background(), InitWorkspaceInput{DataDir: dataDir})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize task store")
}
