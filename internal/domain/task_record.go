package domain

import "fmt"

// TaskRecord is the stored form of a Task.
// Fields are ordered to minimize memory padding.
type TaskRecord struct {
	Due       *Date  `json:"due,omitempty" yaml:"due,omitempty" toml:"due,omitempty"`       // Deadline only
	Start     *Date  `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"` // Event only
	End       *Date  `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`       // Event only
	Kind      Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Name      string `json:"name" yaml:"name" toml:"name"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}

// TaskListRecord is the stored form of a TaskList.
type TaskListRecord struct {
	Tasks []TaskRecord `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Record returns the stored form of t.
func (t *Task) Record() TaskRecord {
	r := TaskRecord{Kind: t.kind, Name: t.name, Completed: t.completed}
	switch t.kind {
	case KindDeadline:
		due := t.due
		r.Due = &due
	case KindEvent:
		start, end := t.start, t.end
		r.Start, r.End = &start, &end
	case KindToDo:
	}
	return r
}

// Task rebuilds the task r describes. A record missing its name or the
// dates its kind requires yields ErrCorruptTaskList.
func (r TaskRecord) Task() (*Task, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: blank name", ErrCorruptTaskList)
	}

	var t *Task
	switch r.Kind {
	case KindToDo:
		t = NewToDo(r.Name)
	case KindDeadline:
		if r.Due == nil {
			return nil, fmt.Errorf("%w: deadline %q has no due date", ErrCorruptTaskList, r.Name)
		}
		t = NewDeadline(r.Name, *r.Due)
	case KindEvent:
		if r.Start == nil || r.End == nil {
			return nil, fmt.Errorf("%w: event %q needs start and end", ErrCorruptTaskList, r.Name)
		}
		t = NewEvent(r.Name, *r.Start, *r.End)
	default:
		return nil, fmt.Errorf("%w: %w %q", ErrCorruptTaskList, ErrUnknownKind, r.Kind)
	}

	if r.Completed {
		t.Complete()
	}
	return t, nil
}

// Record returns the stored form of l.
func (l *TaskList) Record() TaskListRecord {
	records := make([]TaskRecord, 0, len(l.tasks))
	for _, t := range l.tasks {
		records = append(records, t.Record())
	}
	return TaskListRecord{Tasks: records}
}

// TaskList rebuilds the list r describes. It fails on the first unusable
// task.
func (r TaskListRecord) TaskList() (*TaskList, error) {
	list := NewTaskList()
	for i, rec := range r.Tasks {
		t, err := rec.Task()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		list.Add(t)
	}
	return list, nil
}
