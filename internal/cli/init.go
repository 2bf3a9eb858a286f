package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasklink/tasklink/internal/app"
	"github.com/tasklink/tasklink/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the workspace for tasklink",
		Long: `Initialize a workspace for tasklink.

This command creates the .tasklink/ directory with:
- tasklink.db: the task store
- logs/: directory for log files

Running init on an initialized workspace is safe; the store schema is
checked and repaired if needed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitWorkspaceUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitWorkspaceInput{
				DataDir: c.Config.DataDir,
			})
			if err != nil {
				return err
			}

			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tasklink already initialized in %s\n", out.DataDir)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized tasklink in %s\n", out.DataDir)
			return nil
		},
	}
}
