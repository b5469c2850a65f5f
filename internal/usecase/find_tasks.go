package usecase

import (
	"context"
	"strings"

	"github.com/runoshun/kipp/internal/domain"
)

// FindTasksInput contains the parameters for searching tasks.
type FindTasksInput struct {
	Keyword string // Substring to look for in task names (required)
}

// FindTasksOutput contains the matching tasks.
type FindTasksOutput struct {
	Rendered string // Matches with their list numbers (empty if none)
	Indices  []int  // 0-based indices of matches
}

// FindTasks is the use case for searching task names.
type FindTasks struct {
	holder domain.TaskListHolder
}

// NewFindTasks creates a new FindTasks use case.
func NewFindTasks(holder domain.TaskListHolder) *FindTasks {
	return &FindTasks{holder: holder}
}

// Execute returns tasks whose name contains the keyword.
func (uc *FindTasks) Execute(_ context.Context, in FindTasksInput) (*FindTasksOutput, error) {
	keyword := strings.TrimSpace(in.Keyword)
	if keyword == "" {
		return nil, domain.ErrEmptyKeyword
	}

	list := uc.holder.TaskList()
	indices := list.Find(keyword)
	out := &FindTasksOutput{Indices: indices}
	if len(indices) > 0 {
		out.Rendered = list.RenderSubset(indices)
	}
	return out, nil
}
