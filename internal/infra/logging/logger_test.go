package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklink/tasklink/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	id := domain.NewTaskID()
	logger.Info(id, "task", "test message")

	globalContent, err := os.ReadFile(filepath.Join(dataDir, "logs", "tasklink.log"))
	require.NoError(t, err)
	assert.Contains(t, string(globalContent), "[INFO]")
	assert.Contains(t, string(globalContent), fmt.Sprintf("[task-%s]", id))
	assert.Contains(t, string(globalContent), "[task]")
	assert.Contains(t, string(globalContent), "test message")

	taskContent, err := os.ReadFile(filepath.Join(dataDir, "logs", fmt.Sprintf("task-%s.log", id)))
	require.NoError(t, err)
	assert.Contains(t, string(taskContent), "[INFO]")
	assert.Contains(t, string(taskContent), "test message")
}

func TestLogger_GlobalLogOnly(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// A zero task ID logs to the global file only.
	logger.Info(domain.TaskID{}, "system", "global message")

	content, err := os.ReadFile(filepath.Join(dataDir, "logs", "tasklink.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[global]")
	assert.Contains(t, string(content), "global message")

	entries, err := os.ReadDir(filepath.Join(dataDir, "logs"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelError)
	defer func() { _ = logger.Close() }()

	logger.Info(domain.TaskID{}, "system", "filtered out")
	logger.Error(domain.TaskID{}, "system", "kept")

	content, err := os.ReadFile(filepath.Join(dataDir, "logs", "tasklink.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "filtered out")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Must not panic or create files anywhere.
	logger.Info(domain.NewTaskID(), "task", "dropped")
	logger.Error(domain.TaskID{}, "system", "dropped")
}
