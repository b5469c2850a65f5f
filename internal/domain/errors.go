package domain

import "errors"

// Input errors. These describe malformed user input and are reported back
// to the user together with a usage example.
var (
	ErrEmptyName         = errors.New("task description cannot be empty")
	ErrEmptyKeyword      = errors.New("keyword cannot be empty")
	ErrMissingDelimiter  = errors.New("missing argument delimiter")
	ErrInvalidDate       = errors.New("invalid date (expected yyyy-mm-dd)")
	ErrInvalidTaskNumber = errors.New("invalid task number")
	ErrAlreadyCompleted  = errors.New("task already marked completed")
	ErrAlreadyIncomplete = errors.New("task already marked incomplete")
	ErrInvalidPath       = errors.New("invalid file path")
	ErrUnknownKind       = errors.New("unknown task kind")
)

// ErrCorruptTaskList is returned when a stored list holds an unusable task.
var ErrCorruptTaskList = errors.New("stored task list is corrupt")

// Configuration errors.
var (
	ErrConfigExists  = errors.New("config file already exists")
	ErrInvalidPolicy = errors.New("invalid completion policy")
)
