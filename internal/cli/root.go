// Package cli provides the command-line interface for tasklink.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tasklink/tasklink/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupQuery = "query"
)

// NewRootCommand creates the root command for tasklink.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasklink",
		Short: "Issue-driven task lifecycle tracking",
		Long: `tasklink tracks work items created from external issue references.

Each task originates from exactly one issue, moves through a fixed
status lifecycle (draft, in_progress, in_review, paused, done,
abandoned), and may be linked to a branch and a pull request.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupQuery, Title: "Queries:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupTask

	byIssueCmd := newByIssueCommand(c)
	byIssueCmd.GroupID = groupQuery

	byBranchCmd := newByBranchCommand(c)
	byBranchCmd.GroupID = groupQuery

	byPRCmd := newByPRCommand(c)
	byPRCmd.GroupID = groupQuery

	boardCmd := newBoardCommand(c)
	boardCmd.GroupID = groupQuery

	root.AddCommand(
		initCmd,
		taskCmd,
		byIssueCmd,
		byBranchCmd,
		byPRCmd,
		boardCmd,
	)

	return root
}
