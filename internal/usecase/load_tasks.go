package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kipp/internal/domain"
)

// LoadTasksInput contains the parameters for loading a task list.
type LoadTasksInput struct {
	Path string // Source file (empty = default path)
}

// LoadTasksOutput contains the result of loading.
type LoadTasksOutput struct {
	Path  string // File read
	Count int    // Number of tasks loaded
}

// LoadTasks is the use case for replacing the active list with one read
// from a file.
type LoadTasks struct {
	holder      domain.TaskListHolder
	store       domain.TaskListStore
	logger      domain.Logger
	defaultPath string
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(holder domain.TaskListHolder, store domain.TaskListStore, defaultPath string, logger domain.Logger) *LoadTasks {
	return &LoadTasks{
		holder:      holder,
		store:       store,
		defaultPath: defaultPath,
		logger:      logger,
	}
}

// Execute reads the file and swaps in its list. On failure the active list
// is left unchanged.
func (uc *LoadTasks) Execute(_ context.Context, in LoadTasksInput) (*LoadTasksOutput, error) {
	path, err := resolveStoragePath(in.Path, uc.defaultPath)
	if err != nil {
		return nil, err
	}

	rec, err := uc.store.Load(path)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("storage", fmt.Sprintf("load failed: %v", err))
		}
		return nil, fmt.Errorf("load task list: %w", err)
	}

	loaded, err := rec.TaskList()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("storage", fmt.Sprintf("load failed: %v", err))
		}
		return nil, fmt.Errorf("load task list: %w", err)
	}

	uc.holder.ReplaceTaskList(loaded)

	if uc.logger != nil {
		uc.logger.Info("storage", fmt.Sprintf("loaded %d tasks from %s", loaded.Len(), path))
	}

	return &LoadTasksOutput{Path: path, Count: loaded.Len()}, nil
}
