package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kipp/internal/domain"
)

// SaveTasksInput contains the parameters for saving the task list.
type SaveTasksInput struct {
	Path string // Target file (empty = default path)
}

// SaveTasksOutput contains the result of saving.
type SaveTasksOutput struct {
	Path  string // File written
	Count int    // Number of tasks written
}

// SaveTasks is the use case for writing the active list to a file.
type SaveTasks struct {
	holder      domain.TaskListHolder
	store       domain.TaskListStore
	logger      domain.Logger
	defaultPath string
}

// NewSaveTasks creates a new SaveTasks use case.
func NewSaveTasks(holder domain.TaskListHolder, store domain.TaskListStore, defaultPath string, logger domain.Logger) *SaveTasks {
	return &SaveTasks{
		holder:      holder,
		store:       store,
		defaultPath: defaultPath,
		logger:      logger,
	}
}

// Execute writes the active list.
func (uc *SaveTasks) Execute(_ context.Context, in SaveTasksInput) (*SaveTasksOutput, error) {
	path, err := resolveStoragePath(in.Path, uc.defaultPath)
	if err != nil {
		return nil, err
	}

	list := uc.holder.TaskList()
	if err := uc.store.Save(path, list.Record()); err != nil {
		if uc.logger != nil {
			uc.logger.Error("storage", fmt.Sprintf("save failed: %v", err))
		}
		return nil, fmt.Errorf("save task list: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("storage", fmt.Sprintf("saved %d tasks to %s", list.Len(), path))
	}

	return &SaveTasksOutput{Path: path, Count: list.Len()}, nil
}
