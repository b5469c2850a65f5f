package domain

import (
	"fmt"
	"strings"
)

// EmptyListText is rendered for a list with no tasks.
const EmptyListText = "No tasks to display."

// TaskList is an ordered collection of tasks.
// Insertion order is display and addressing order. Indices passed to
// accessors are 0-based and must be in range; callers validate user input
// before calling (see ValidNumber).
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates an empty task list.
func NewTaskList(tasks ...*Task) *TaskList {
	return &TaskList{tasks: append([]*Task{}, tasks...)}
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Add appends a task.
func (l *TaskList) Add(task *Task) {
	l.tasks = append(l.tasks, task)
}

// Get returns the task at idx.
func (l *TaskList) Get(idx int) *Task {
	l.mustIndex(idx)
	return l.tasks[idx]
}

// Delete removes and returns the task at idx. Later tasks shift down by one.
func (l *TaskList) Delete(idx int) *Task {
	l.mustIndex(idx)
	removed := l.tasks[idx]
	l.tasks = append(l.tasks[:idx], l.tasks[idx+1:]...)
	return removed
}

// SetComplete marks the task at idx as done.
func (l *TaskList) SetComplete(idx int) {
	l.Get(idx).Complete()
}

// SetIncomplete marks the task at idx as not done.
func (l *TaskList) SetIncomplete(idx int) {
	l.Get(idx).Reopen()
}

// ValidNumber converts a 1-based task number into a 0-based index.
// It reports false if the number does not address a task.
func (l *TaskList) ValidNumber(number int) (int, bool) {
	idx := number - 1
	if idx < 0 || idx >= l.Len() {
		return 0, false
	}
	return idx, true
}

// Find returns the 0-based indices of tasks whose name contains keyword.
func (l *TaskList) Find(keyword string) []int {
	var matches []int
	for i, t := range l.tasks {
		if t.Matches(keyword) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Render returns the numbered listing, one task per line, without a
// trailing newline. An empty list renders EmptyListText.
func (l *TaskList) Render() string {
	if l.Len() == 0 {
		return EmptyListText
	}
	indices := make([]int, l.Len())
	for i := range indices {
		indices[i] = i
	}
	return l.RenderSubset(indices)
}

// RenderSubset renders the tasks at the given indices, keeping their
// list numbers.
func (l *TaskList) RenderSubset(indices []int) string {
	lines := make([]string, 0, len(indices))
	for _, idx := range indices {
		lines = append(lines, fmt.Sprintf("%d. %s", idx+1, l.Get(idx)))
	}
	return strings.Join(lines, "\n")
}

// Equal reports whether both lists hold equal tasks in the same order.
func (l *TaskList) Equal(other *TaskList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Len() != other.Len() {
		return false
	}
	for i := range l.tasks {
		if !l.tasks[i].Equal(other.tasks[i]) {
			return false
		}
	}
	return true
}

func (l *TaskList) mustIndex(idx int) {
	if idx < 0 || idx >= l.Len() {
		panic(fmt.Sprintf("task index %d out of range [0, %d)", idx, l.Len()))
	}
}
