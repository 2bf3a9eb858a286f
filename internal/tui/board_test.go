package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklink/tasklink/internal/domain"
)

func boardTask(t *testing.T, issue int64, title string) *domain.Task {
	t.Helper()
	origin, err := domain.NewIssueRef("github", "acme/api", issue)
	require.NoError(t, err)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.NewTask(domain.NewTaskID(), origin, title, "", now)
}

func staticLoader(tasks []*domain.Task, err error) TaskLoader {
	return func(_ context.Context) ([]*domain.Task, error) {
		return tasks, err
	}
}

// sized returns the model after an initial window size message.
func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func TestModel_Init_LoadsTasks(t *testing.T) {
	task := boardTask(t, 42, "Fix login")
	m := NewModel(staticLoader([]*domain.Task{task}, nil))

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(tasksLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.tasks, 1)
}

func TestModel_View_ShowsTasks(t *testing.T) {
	task := boardTask(t, 42, "Fix login")
	m := sized(NewModel(staticLoader([]*domain.Task{task}, nil)))

	updated, _ := m.Update(tasksLoadedMsg{tasks: []*domain.Task{task}})
	view := updated.(Model).View()

	assert.Contains(t, view, "Fix login")
	assert.Contains(t, view, "github:acme/api:42")
}

func TestModel_View_FallsBackToOrigin(t *testing.T) {
	task := boardTask(t, 42, "")
	m := sized(NewModel(staticLoader([]*domain.Task{task}, nil)))

	updated, _ := m.Update(tasksLoadedMsg{tasks: []*domain.Task{task}})
	view := updated.(Model).View()

	assert.Contains(t, view, "github:acme/api:42")
}

func TestModel_LoadFailure(t *testing.T) {
	m := sized(NewModel(staticLoader(nil, errors.New("db locked"))))

	updated, _ := m.Update(loadFailedMsg{err: errors.New("db locked")})
	view := updated.(Model).View()

	assert.Contains(t, view, "db locked")
	assert.Contains(t, view, "r to retry")
}

func TestModel_QuitKey(t *testing.T) {
	m := sized(NewModel(staticLoader(nil, nil)))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ReloadKey(t *testing.T) {
	task := boardTask(t, 7, "Reloaded")
	m := sized(NewModel(staticLoader([]*domain.Task{task}, nil)))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(tasksLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.tasks, 1)
}
