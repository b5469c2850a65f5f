package usecase

import (
	"context"

	"github.com/runoshun/kipp/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Rendered string // Numbered listing (EmptyListText if empty)
	Count    int    // Number of tasks
}

// ListTasks is the use case for rendering the active list.
type ListTasks struct {
	holder domain.TaskListHolder
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(holder domain.TaskListHolder) *ListTasks {
	return &ListTasks{holder: holder}
}

// Execute renders every task with its number.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	list := uc.holder.TaskList()
	return &ListTasksOutput{
		Rendered: list.Render(),
		Count:    list.Len(),
	}, nil
}
