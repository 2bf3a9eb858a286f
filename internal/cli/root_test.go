package cli

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklink/tasklink/internal/testutil"
)

func TestNewRootCommand_RegistersCommands(t *testing.T) {
	root := NewRootCommand(newTestContainer(testutil.NewMockTaskStore()), "test")

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"init", "task", "by-issue", "by-branch", "by-pr", "board"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(newTestContainer(testutil.NewMockTaskStore()), "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestBoardCommand_RunsProgram(t *testing.T) {
	orig := runProgramFunc
	defer func() { runProgramFunc = orig }()

	var ran bool
	runProgramFunc = func(_ tea.Model) error {
		ran = true
		return nil
	}

	cmd := newBoardCommand(newTestContainer(testutil.NewMockTaskStore()))
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestInitCommand(t *testing.T) {
	store := testutil.NewMockTaskStore()
	container := newTestContainer(store)
	container.Config.DataDir = t.TempDir() + "/.tasklink"

	cmd := newInitCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Initialized tasklink")
}
