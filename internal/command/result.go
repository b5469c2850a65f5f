// Package command implements the text command engine: commands bound to
// handler functions, a typed three-way result, and an ordered registry that
// dispatches raw input lines.
package command

import (
	"fmt"
	"strings"
)

// ResultKind tags the outcome of a command handler.
type ResultKind int

// Result kinds.
const (
	KindSuccess    ResultKind = iota // Command did what was asked
	KindUsageError                   // Input was malformed; show a usage example
	KindUnexpected                   // Something outside the user's control failed
)

// String returns a human-readable name for the kind.
func (k ResultKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindUsageError:
		return "usage error"
	case KindUnexpected:
		return "unexpected error"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of a handler: a kind and exactly one text payload.
// The zero value is not a valid Result; use Success, UsageError or
// UnexpectedError.
type Result struct {
	text string
	kind ResultKind
}

// Success returns a successful result. text must not be blank.
func Success(text string) Result {
	return newResult(KindSuccess, text)
}

// UsageError returns a result for malformed input. text must not be blank.
func UsageError(text string) Result {
	return newResult(KindUsageError, text)
}

// UnexpectedError returns a result for a failure the user did not cause.
// text must not be blank.
func UnexpectedError(text string) Result {
	return newResult(KindUnexpected, text)
}

func newResult(kind ResultKind, text string) Result {
	if strings.TrimSpace(text) == "" {
		panic(fmt.Sprintf("command: %s result requires a non-blank message", kind))
	}
	return Result{kind: kind, text: text}
}

// Kind returns the result kind.
func (r Result) Kind() ResultKind { return r.kind }

// Text returns the payload: the response on success, the message otherwise.
func (r Result) Text() string { return r.text }

// IsSuccess reports whether the command succeeded.
func (r Result) IsSuccess() bool { return r.kind == KindSuccess }

// IsUsageError reports whether the input was malformed.
func (r Result) IsUsageError() bool { return r.kind == KindUsageError }

// IsUnexpectedError reports whether the command failed for another reason.
func (r Result) IsUnexpectedError() bool { return r.kind == KindUnexpected }
