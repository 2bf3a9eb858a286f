package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tasklink/tasklink/internal/domain"
)

// TaskLoader fetches the tasks shown on the board.
type TaskLoader func(ctx context.Context) ([]*domain.Task, error)

// Messages.
type tasksLoadedMsg struct {
	tasks []*domain.Task
}

type loadFailedMsg struct {
	err error
}

// keyMap defines the board key bindings.
type keyMap struct {
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

type taskDelegate struct {
	styles Styles
}

func (d taskDelegate) Height() int  { return 2 }
func (d taskDelegate) Spacing() int { return 1 }

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicator := " "
	titleStyle := d.styles.Normal
	if selected {
		indicator = ">"
		titleStyle = d.styles.Selected
	}

	title := task.Title
	if title == "" {
		title = task.Origin.Canonical()
	}
	badge := d.styles.Status(task.Status).Render(fmt.Sprintf("%-11s", task.Status.Display()))

	links := task.Origin.Canonical()
	if task.Branch != nil {
		links += "  " + task.Branch.Canonical()
	}
	if task.PullRequest != nil {
		links += "  " + task.PullRequest.Canonical()
	}

	fmt.Fprintf(w, "%s %s %s\n", indicator, badge, titleStyle.Render(singleLine(title)))
	fmt.Fprintf(w, "  %s", d.styles.Muted.Render(links))
}

// singleLine replaces newlines with spaces for one-line display.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// Model is the board's bubbletea model. The board is read-only; mutations go
// through the CLI.
type Model struct {
	list   list.Model
	loader TaskLoader
	styles Styles
	keys   keyMap
	err    error
}

// NewModel creates a board model backed by the given loader.
func NewModel(loader TaskLoader) Model {
	styles := DefaultStyles()

	l := list.New(nil, taskDelegate{styles: styles}, 0, 0)
	l.Title = "tasklink board"
	l.Styles.Title = styles.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return Model{
		list:   l,
		loader: loader,
		styles: styles,
		keys:   defaultKeyMap(),
	}
}

// Init loads the initial task list.
func (m Model) Init() tea.Cmd {
	return m.loadTasks()
}

func (m Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.loader(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// Update handles board events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tasksLoadedMsg:
		m.err = nil
		items := make([]list.Item, len(msg.tasks))
		for i, t := range msg.tasks {
			items[i] = taskItem{task: t}
		}
		return m, m.list.SetItems(items)

	case loadFailedMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		// Let the list handle keys while filtering
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			return m, m.loadTasks()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the board.
func (m Model) View() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("load tasks: %v", m.err)) + "\n" +
			m.styles.Muted.Render("r to retry, q to quit")
	}
	return m.list.View()
}
