package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/tasklink/tasklink/internal/domain"
)

// InitWorkspaceInput contains the input parameters for InitWorkspace.
type InitWorkspaceInput struct {
	DataDir string // Path to the .tasklink directory
}

// InitWorkspaceOutput contains the output from InitWorkspace.
type InitWorkspaceOutput struct {
	DataDir            string // Path to the created data directory
	AlreadyInitialized bool   // True if the data directory already existed
}

// InitWorkspace prepares a workspace for tracking tasks.
type InitWorkspace struct {
	storeInit domain.StoreInitializer
}

// NewInitWorkspace creates a new InitWorkspace use case.
func NewInitWorkspace(storeInit domain.StoreInitializer) *InitWorkspace {
	return &InitWorkspace{storeInit: storeInit}
}

// Execute creates the .tasklink directory and initializes the task store.
// Running it on an initialized workspace is a no-op apart from store schema
// repair.
func (uc *InitWorkspace) Execute(_ context.Context, in InitWorkspaceInput) (*InitWorkspaceOutput, error) {
	alreadyInitialized := false
	if info, err := os.Stat(in.DataDir); err == nil && info.IsDir() {
		alreadyInitialized = true
	}

	if err := os.MkdirAll(in.DataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize task store: %w", err)
	}

	return &InitWorkspaceOutput{
		DataDir:            in.DataDir,
		AlreadyInitialized: alreadyInitialized,
	}, nil
}
