package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tasklink/tasklink/internal/app"
	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/tui"
	"github.com/tasklink/tasklink/internal/usecase"
)

// runProgramFunc runs a bubbletea program, mockable in tests.
var runProgramFunc = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// newBoardCommand creates the board command for the interactive task board.
func newBoardCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive task board",
		Long: `Open a read-only interactive board of all tasks.

Keys: arrow keys move, / filters, r reloads, q quits.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			loader := func(ctx context.Context) ([]*domain.Task, error) {
				out, err := uc.Execute(ctx, usecase.ListTasksInput{})
				if err != nil {
					return nil, err
				}
				return out.Tasks, nil
			}
			return runProgramFunc(tui.NewModel(loader))
		},
	}
}
