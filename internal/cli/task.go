package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tasklink/tasklink/internal/app"
	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/usecase"
)

// newTaskCommand groups the task management subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskCreateCommand(c),
		newTaskShowCommand(c),
		newTaskListCommand(c),
		newTaskMoveCommand(c),
		newTaskLinkBranchCommand(c),
		newTaskLinkPRCommand(c),
	)

	return cmd
}

// newTaskCreateCommand creates the task create command.
func newTaskCreateCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Provider string
		Repo     string
		Issue    int64
		Title    string
		Body     string
	}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task from an issue",
		Long: `Create a task from an external issue reference.

The task starts in status 'draft'. Each issue can back at most one
task; creating a second task from the same issue fails.

Examples:
  # Create a task from a GitHub issue
  tasklink task create --provider github --repo acme/api --issue 42

  # Create with a title and description
  tasklink task create --provider gitlab --repo acme/api --issue 7 \
    --title "Fix login" --body "Session cookie is dropped on redirect."`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			origin, err := domain.NewIssueRef(opts.Provider, opts.Repo, opts.Issue)
			if err != nil {
				return err
			}

			uc := c.CreateFromIssueUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateFromIssueInput{
				Origin:      origin,
				Title:       opts.Title,
				Description: opts.Body,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s from %s\n", out.Task.ID, out.Task.Origin.Canonical())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Provider, "provider", "", "Issue provider: github or gitlab (required)")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository as owner/name (required)")
	cmd.Flags().Int64Var(&opts.Issue, "issue", 0, "Issue number (required)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&opts.Body, "body", "", "Task description")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("issue")

	return cmd
}

// newTaskShowCommand creates the task show command.
func newTaskShowCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			return printTaskDetail(cmd.OutOrStdout(), out.Task, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, or yaml")

	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display a list of tasks ordered by creation time.

Examples:
  # List all tasks
  tasklink task list

  # List tasks in review
  tasklink task list --status in_review`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{}
			if statusFilter != "" {
				status, err := domain.ParseStatus(statusFilter)
				if err != nil {
					return err
				}
				input.Status = &status
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Filter by status")

	return cmd
}

// newTaskMoveCommand creates the task move command.
func newTaskMoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another status",
		Long: `Move a task to another status.

Only transitions allowed by the lifecycle are accepted; an illegal
transition fails and leaves the task unchanged. Statuses 'done' and
'abandoned' are terminal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}
			target, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			uc := c.TransitionTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.TransitionTaskInput{
				TaskID: id,
				Target: target,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", out.Task.ID, out.Task.Status)
			return nil
		},
	}
}

// newTaskLinkBranchCommand creates the task link-branch command.
func newTaskLinkBranchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "link-branch <id> <branch-ref>",
		Short: "Link a branch to a task",
		Long: `Link a branch to a task.

The branch reference uses the canonical form provider:owner/repo:name,
for example github:acme/api:feature/login. A task links at most one
branch; linking does not change the task status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}
			branch, err := domain.ParseBranchRef(args[1])
			if err != nil {
				return err
			}

			uc := c.AssociateBranchUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AssociateBranchInput{
				TaskID: id,
				Branch: branch,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to task %s\n", branch.Canonical(), out.Task.ID)
			return nil
		},
	}
}

// newTaskLinkPRCommand creates the task link-pr command.
func newTaskLinkPRCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "link-pr <id> <pr-ref>",
		Short: "Link a pull request to a task",
		Long: `Link a pull request to a task and move it to in_review.

The pull request reference uses the canonical form
provider:owner/repo:number, for example github:acme/api:95. Linking
fails on tasks that cannot move to in_review from their current
status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q: %w", args[0], err)
			}
			pr, err := domain.ParsePullRequestRef(args[1])
			if err != nil {
				return err
			}

			uc := c.AssociatePullRequestUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AssociatePullRequestInput{
				TaskID:      id,
				PullRequest: pr,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to task %s (now %s)\n", pr.Canonical(), out.Task.ID, out.Task.Status)
			return nil
		},
	}
}

// taskView is the serialization shape for task output. Refs are flattened to
// their canonical strings.
type taskView struct {
	ID          string `json:"id" yaml:"id"`
	Origin      string `json:"origin" yaml:"origin"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      string `json:"status" yaml:"status"`
	Branch      string `json:"branch,omitempty" yaml:"branch,omitempty"`
	PullRequest string `json:"pullRequest,omitempty" yaml:"pullRequest,omitempty"`
	Created     string `json:"created" yaml:"created"`
	Updated     string `json:"updated" yaml:"updated"`
}

func newTaskView(t *domain.Task) taskView {
	v := taskView{
		ID:          t.ID.String(),
		Origin:      t.Origin.Canonical(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Created:     t.Created.Format(time.RFC3339),
		Updated:     t.Updated.Format(time.RFC3339),
	}
	if t.Branch != nil {
		v.Branch = t.Branch.Canonical()
	}
	if t.PullRequest != nil {
		v.PullRequest = t.PullRequest.Canonical()
	}
	return v
}

// printTaskDetail prints one task in the requested format.
func printTaskDetail(w io.Writer, t *domain.Task, format string) error {
	v := newTaskView(t)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(v)
	case "table":
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendRow(table.Row{"ID", v.ID})
		tw.AppendRow(table.Row{"Origin", v.Origin})
		tw.AppendRow(table.Row{"Status", v.Status})
		tw.AppendRow(table.Row{"Title", v.Title})
		tw.AppendRow(table.Row{"Branch", orDash(v.Branch)})
		tw.AppendRow(table.Row{"Pull Request", orDash(v.PullRequest)})
		tw.AppendRow(table.Row{"Created", v.Created})
		tw.AppendRow(table.Row{"Updated", v.Updated})
		tw.Render()
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// printTaskList prints tasks as a table.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Origin", "Status", "Branch", "PR", "Title"})
	for _, t := range tasks {
		branch := ""
		if t.Branch != nil {
			branch = t.Branch.Canonical()
		}
		pr := ""
		if t.PullRequest != nil {
			pr = t.PullRequest.Canonical()
		}
		tw.AppendRow(table.Row{t.ID, t.Origin.Canonical(), t.Status, orDash(branch), orDash(pr), t.Title})
	}
	tw.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
