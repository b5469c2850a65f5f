// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a task.
type Kind string

// Task kinds.
const (
	KindToDo     Kind = "todo"     // Plain task
	KindDeadline Kind = "deadline" // Task due by a date
	KindEvent    Kind = "event"    // Task spanning a date range
)

// Symbol returns the single-letter tag shown in task listings.
func (k Kind) Symbol() string {
	switch k {
	case KindToDo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// Task is a single trackable item.
// Kind, name and dates are fixed at construction; completion only changes
// through Complete and Reopen. See TaskRecord for the stored form.
// Fields are ordered to minimize memory padding.
type Task struct {
	due       Date // Deadline only
	start     Date // Event only
	end       Date // Event only
	kind      Kind
	name      string
	completed bool
}

// NewToDo creates an incomplete todo task.
func NewToDo(name string) *Task {
	return &Task{kind: KindToDo, name: name}
}

// NewDeadline creates an incomplete task due on the given date.
func NewDeadline(name string, due Date) *Task {
	return &Task{kind: KindDeadline, name: name, due: due}
}

// NewEvent creates an incomplete task running from start to end.
func NewEvent(name string, start, end Date) *Task {
	return &Task{kind: KindEvent, name: name, start: start, end: end}
}

// Kind returns the task variant.
func (t *Task) Kind() Kind { return t.kind }

// Name returns the task description.
func (t *Task) Name() string { return t.name }

// Completed reports whether the task is done.
func (t *Task) Completed() bool { return t.completed }

// Due returns the deadline date; zero for other kinds.
func (t *Task) Due() Date { return t.due }

// Start returns the first day of an event; zero for other kinds.
func (t *Task) Start() Date { return t.start }

// End returns the last day of an event; zero for other kinds.
func (t *Task) End() Date { return t.end }

// Complete marks the task as done.
func (t *Task) Complete() {
	t.completed = true
}

// Reopen marks the task as not done.
func (t *Task) Reopen() {
	t.completed = false
}

// Details returns the kind-specific suffix shown in parentheses,
// or an empty string for kinds without one.
func (t *Task) Details() string {
	switch t.kind {
	case KindDeadline:
		return "by: " + t.due.String()
	case KindEvent:
		return fmt.Sprintf("from: %s to: %s", t.start, t.end)
	case KindToDo:
		return ""
	default:
		return ""
	}
}

// String renders the task as "[T][x] name (details)".
func (t *Task) String() string {
	mark := " "
	if t.completed {
		mark = "x"
	}
	s := fmt.Sprintf("[%s][%s] %s", t.kind.Symbol(), mark, t.name)
	if details := t.Details(); details != "" {
		s += " (" + details + ")"
	}
	return s
}

// Equal reports whether two tasks describe the same item.
// Completion state is ignored.
func (t *Task) Equal(other *Task) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind || t.name != other.name {
		return false
	}
	switch t.kind {
	case KindDeadline:
		return t.due.Equal(other.due)
	case KindEvent:
		return t.start.Equal(other.start) && t.end.Equal(other.end)
	case KindToDo:
		return true
	default:
		return true
	}
}

// Matches reports whether the task name contains keyword.
func (t *Task) Matches(keyword string) bool {
	return strings.Contains(t.name, keyword)
}
