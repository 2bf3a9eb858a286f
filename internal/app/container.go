// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/tasklink/tasklink/internal/domain"
	"github.com/tasklink/tasklink/internal/infra/config"
	"github.com/tasklink/tasklink/internal/infra/logging"
	"github.com/tasklink/tasklink/internal/infra/memstore"
	"github.com/tasklink/tasklink/internal/infra/sqlitestore"
	"github.com/tasklink/tasklink/internal/usecase"
)

// Config holds the application configuration paths.
type Config struct {
	Workspace string // Root directory of the workspace
	DataDir   string // Path to the .tasklink directory
	StorePath string // Path to the sqlite database
}

// newConfig creates a Config for a workspace root, honoring the db path
// override from the app config.
func newConfig(workspace string, appConfig *domain.Config) Config {
	storePath := appConfig.Tasks.Path
	if storePath == "" {
		storePath = domain.DBPath(workspace)
	}
	return Config{
		Workspace: workspace,
		DataDir:   domain.DataDir(workspace),
		StorePath: storePath,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskStore
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Logger           domain.Logger

	// Configuration
	Config Config

	closers []func() error
}

// New creates a new Container rooted at the given workspace directory.
func New(workspace string) (*Container, error) {
	dataDir := domain.DataDir(workspace)

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg := newConfig(workspace, appConfig)

	c := &Container{
		Clock:  domain.RealClock{},
		Config: cfg,
	}

	switch appConfig.Tasks.Store {
	case domain.StoreMemory:
		store := memstore.New()
		c.Tasks = store
		c.StoreInitializer = store
	default:
		store, err := sqlitestore.Open(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		c.Tasks = store
		c.StoreInitializer = store
		c.closers = append(c.closers, store.Close)
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	c.Logger = logger
	c.closers = append(c.closers, logger.Close)

	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskStore, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		Config:           cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	var lastErr error
	for _, close := range c.closers {
		if err := close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// UseCase factory methods

// InitWorkspaceUseCase returns a new InitWorkspace use case.
func (c *Container) InitWorkspaceUseCase() *usecase.InitWorkspace {
	return usecase.NewInitWorkspace(c.StoreInitializer)
}

// CreateFromIssueUseCase returns a new CreateFromIssue use case.
func (c *Container) CreateFromIssueUseCase() *usecase.CreateFromIssue {
	return usecase.NewCreateFromIssue(c.Tasks, c.Clock, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// TransitionTaskUseCase returns a new TransitionTask use case.
func (c *Container) TransitionTaskUseCase() *usecase.TransitionTask {
	return usecase.NewTransitionTask(c.Tasks, c.Clock, c.Logger)
}

// AssociateBranchUseCase returns a new AssociateBranch use case.
func (c *Container) AssociateBranchUseCase() *usecase.AssociateBranch {
	return usecase.NewAssociateBranch(c.Tasks, c.Clock, c.Logger)
}

// AssociatePullRequestUseCase returns a new AssociatePullRequest use case.
func (c *Container) AssociatePullRequestUseCase() *usecase.AssociatePullRequest {
	return usecase.NewAssociatePullRequest(c.Tasks, c.Clock, c.Logger)
}

// FindByIssueUseCase returns a new FindByIssue use case.
func (c *Container) FindByIssueUseCase() *usecase.FindByIssue {
	return usecase.NewFindByIssue(c.Tasks)
}

// FindByBranchUseCase returns a new FindByBranch use case.
func (c *Container) FindByBranchUseCase() *usecase.FindByBranch {
	return usecase.NewFindByBranch(c.Tasks)
}

// FindByPullRequestUseCase returns a new FindByPullRequest use case.
func (c *Container) FindByPullRequestUseCase() *usecase.FindByPullRequest {
	return usecase.NewFindByPullRequest(c.Tasks)
}
