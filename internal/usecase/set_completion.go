package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/kipp/internal/domain"
)

// SetCompletionInput contains the parameters for marking a task.
type SetCompletionInput struct {
	Number    int  // 1-based task number
	Completed bool // Target state
}

// SetCompletionOutput contains the result of marking a task.
type SetCompletionOutput struct {
	Task    *domain.Task // The marked task
	Changed bool         // False if the task was already in the target state
}

// SetCompletion is the use case for marking a task completed or incomplete.
type SetCompletion struct {
	holder domain.TaskListHolder
	logger domain.Logger
	policy domain.RepeatPolicy
}

// NewSetCompletion creates a new SetCompletion use case.
// policy decides whether marking a task into its current state is an error.
func NewSetCompletion(holder domain.TaskListHolder, policy domain.RepeatPolicy, logger domain.Logger) *SetCompletion {
	return &SetCompletion{
		holder: holder,
		policy: policy,
		logger: logger,
	}
}

// Execute sets the completion state of the numbered task.
func (uc *SetCompletion) Execute(_ context.Context, in SetCompletionInput) (*SetCompletionOutput, error) {
	list := uc.holder.TaskList()
	idx, ok := list.ValidNumber(in.Number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidTaskNumber, in.Number)
	}

	task := list.Get(idx)
	if task.Completed() == in.Completed {
		if uc.policy == domain.RepeatAllow {
			return &SetCompletionOutput{Task: task}, nil
		}
		if in.Completed {
			return nil, fmt.Errorf("task %d: %w", in.Number, domain.ErrAlreadyCompleted)
		}
		return nil, fmt.Errorf("task %d: %w", in.Number, domain.ErrAlreadyIncomplete)
	}

	if in.Completed {
		list.SetComplete(idx)
	} else {
		list.SetIncomplete(idx)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("task %d completed=%t: %q", in.Number, in.Completed, task.Name()))
	}

	return &SetCompletionOutput{Task: task, Changed: true}, nil
}
