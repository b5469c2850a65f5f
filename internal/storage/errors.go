package storage

import "errors"

// Storage errors, wrapped in *Error.
var (
	ErrEmpty              = errors.New("file is empty")
	ErrKindMismatch       = errors.New("stored value has a different kind")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrIsDirectory        = errors.New("path is a directory")
)

// Error records a failed storage operation and the file involved.
type Error struct {
	Err  error
	Op   string // "create", "save" or "load"
	Path string
}

func (e *Error) Error() string {
	return "storage: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
