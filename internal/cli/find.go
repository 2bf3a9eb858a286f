package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tasklink/tasklink/internal/app"
	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase"
)

// newByIssueCommand creates the by-issue lookup command.
func newByIssueCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "by-issue <issue-ref>",
		Short: "Find the task created from an issue",
		Long: `Find the task created from an issue reference.

The reference uses the canonical form provider:owner/repo:number,
for example github:acme/api:42. At most one task exists per issue.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := domain.ParseIssueRef(args[0])
			if err != nil {
				return err
			}

			uc := c.FindByIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FindByIssueInput{Origin: origin})
			if err != nil {
				return err
			}

			if out.Task == nil {
				return fmt.Errorf("no task found for issue %s", origin.Canonical())
			}
			printTaskList(cmd.OutOrStdout(), []*domain.Task{out.Task})
			return nil
		},
	}
}

// newByBranchCommand creates the by-branch lookup command.
func newByBranchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "by-branch <branch-ref>",
		Short: "Find all tasks linked to a branch",
		Long: `Find all tasks linked to a branch reference.

The reference uses the canonical form provider:owner/repo:name,
for example github:acme/api:feature/login. A branch may be linked
from any number of tasks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch, err := domain.ParseBranchRef(args[0])
			if err != nil {
				return err
			}

			uc := c.FindByBranchUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FindByBranchInput{Branch: branch})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}
}

// newByPRCommand creates the by-pr lookup command.
func newByPRCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "by-pr <pr-ref>",
		Short: "Find all tasks linked to a pull request",
		Long: `Find all tasks linked to a pull request reference.

The reference uses the canonical form provider:owner/repo:number,
for example github:acme/api:95.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pr, err := domain.ParsePullRequestRef(args[0])
			if err != nil {
				return err
			}

			uc := c.FindByPullRequestUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FindByPullRequestInput{PullRequest: pr})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}
}
