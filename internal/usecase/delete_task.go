package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kipp/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Number int // 1-based task number
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task      *domain.Task // The removed task
	Remaining int          // Number of tasks left
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	holder domain.TaskListHolder
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(holder domain.TaskListHolder, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		holder: holder,
		logger: logger,
	}
}

// Execute removes the numbered task. Later tasks move up by one.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	list := uc.holder.TaskList()
	idx, ok := list.ValidNumber(in.Number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTaskNumber, in.Number)
	}

	removed := list.Delete(idx)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted task %d: %q", in.Number, removed.Name()))
	}

	return &DeleteTaskOutput{Task: removed, Remaining: list.Len()}, nil
}
