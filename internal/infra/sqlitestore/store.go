// Package sqlitestore provides a durable implementation of domain.TaskStore
// backed by SQLite (modernc.org/sqlite, cgo-free).
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tasklink/tasklink/internal/domain"
)

// timeLayout is RFC 3339 with fixed nanosecond width. All timestamps are
// stored in UTC, so lexical order equals chronological order and ORDER BY
// on the column is correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const taskColumns = `id, origin_provider, origin_repo, origin_issue,
	branch_ref, pull_request_ref, title, description, status, created_at, updated_at`

// Store implements domain.TaskStore using a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at the given path.
// Call Initialize before first use to apply migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Initialize applies pending schema migrations.
func (s *Store) Initialize() error {
	if err := migrate(s.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create persists a new task. The unique origin index rejects a second task
// for the same issue atomically with the insert.
func (s *Store) Create(ctx context.Context, task *domain.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID.String(),
		string(task.Origin.Provider), task.Origin.Repo, task.Origin.Number,
		refString(task.Branch), prString(task.PullRequest),
		task.Title, task.Description, string(task.Status),
		formatTime(task.Created), formatTime(task.Updated),
	)
	if err != nil {
		if isOriginConflict(err) {
			return domain.ErrDuplicateOrigin
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Update replaces the stored record.
func (s *Store) Update(ctx context.Context, task *domain.Task) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET
			origin_provider = ?, origin_repo = ?, origin_issue = ?,
			branch_ref = ?, pull_request_ref = ?,
			title = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		string(task.Origin.Provider), task.Origin.Repo, task.Origin.Number,
		refString(task.Branch), prString(task.PullRequest),
		task.Title, task.Description, string(task.Status),
		formatTime(task.Updated),
		task.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// FindByID retrieves a task by ID. Returns nil if not found.
func (s *Store) FindByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	return s.queryOne(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String())
}

// FindByOrigin retrieves the task created from the given issue.
func (s *Store) FindByOrigin(ctx context.Context, origin domain.IssueRef) (*domain.Task, error) {
	return s.queryOne(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE origin_provider = ? AND origin_repo = ? AND origin_issue = ?`,
		string(origin.Provider), origin.Repo, origin.Number)
}

// FindByBranch retrieves all tasks linked to the given branch.
func (s *Store) FindByBranch(ctx context.Context, branch domain.BranchRef) ([]*domain.Task, error) {
	return s.queryMany(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE branch_ref = ? ORDER BY created_at, id`, branch.Canonical())
}

// FindByPullRequest retrieves all tasks linked to the given pull request.
func (s *Store) FindByPullRequest(ctx context.Context, pr domain.PullRequestRef) ([]*domain.Task, error) {
	return s.queryMany(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE pull_request_ref = ? ORDER BY created_at, id`, pr.Canonical())
}

// List retrieves tasks matching the filter.
func (s *Store) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	if filter.Status != nil {
		return s.queryMany(ctx, `
			SELECT `+taskColumns+` FROM tasks
			WHERE status = ? ORDER BY created_at, id`, string(*filter.Status))
	}
	return s.queryMany(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at, id`)
}

func (s *Store) queryOne(ctx context.Context, query string, args ...any) (*domain.Task, error) {
	task, err := scanTask(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

func (s *Store) queryMany(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var (
		idStr, provider, repo      string
		issue                      int64
		branchRef, prRef           sql.NullString
		title, description, status string
		createdStr, updatedStr     string
	)
	if err := row.Scan(&idStr, &provider, &repo, &issue,
		&branchRef, &prRef, &title, &description, &status,
		&createdStr, &updatedStr); err != nil {
		return nil, err
	}

	id, err := domain.ParseTaskID(idStr)
	if err != nil {
		return nil, fmt.Errorf("task id %q: %w", idStr, err)
	}
	created, err := parseTime(createdStr)
	if err != nil {
		return nil, err
	}
	updated, err := parseTime(updatedStr)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          id,
		Origin:      domain.IssueRef{Provider: domain.Provider(provider), Repo: repo, Number: issue},
		Title:       title,
		Description: description,
		Status:      domain.Status(status),
		Created:     created,
		Updated:     updated,
	}
	if branchRef.Valid {
		ref, err := domain.ParseBranchRef(branchRef.String)
		if err != nil {
			return nil, fmt.Errorf("branch ref %q: %w", branchRef.String, err)
		}
		task.Branch = &ref
	}
	if prRef.Valid {
		ref, err := domain.ParsePullRequestRef(prRef.String)
		if err != nil {
			return nil, fmt.Errorf("pull request ref %q: %w", prRef.String, err)
		}
		task.PullRequest = &ref
	}
	return task, nil
}

// isOriginConflict reports whether the error is a violation of the unique
// origin index.
func isOriginConflict(err error) bool {
	return err != nil && strings.Contains(err.Error(), "tasks.origin_")
}

func refString(ref *domain.BranchRef) any {
	if ref == nil {
		return nil
	}
	return ref.Canonical()
}

func prString(ref *domain.PullRequestRef) any {
	if ref == nil {
		return nil
	}
	return ref.Canonical()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return t, nil
}

// Ensure Store implements the ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
