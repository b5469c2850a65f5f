// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/kipp/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Due   domain.Date // Deadline only
	Start domain.Date // Event only
	End   domain.Date // Event only
	Kind  domain.Kind // Task variant (required)
	Name  string      // Task description (required)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  *domain.Task // The appended task
	Count int          // Number of tasks after the add
}

// AddTask is the use case for appending a task to the active list.
type AddTask struct {
	holder domain.TaskListHolder
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(holder domain.TaskListHolder, logger domain.Logger) *AddTask {
	return &AddTask{
		holder: holder,
		logger: logger,
	}
}

// Execute builds the task described by in and appends it.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	var task *domain.Task
	switch in.Kind {
	case domain.KindToDo:
		task = domain.NewToDo(name)
	case domain.KindDeadline:
		task = domain.NewDeadline(name, in.Due)
	case domain.KindEvent:
		task = domain.NewEvent(name, in.Start, in.End)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, in.Kind)
	}

	list := uc.holder.TaskList()
	list.Add(task)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added %s: %q", in.Kind, name))
	}

	return &AddTaskOutput{Task: task, Count: list.Len()}, nil
}
