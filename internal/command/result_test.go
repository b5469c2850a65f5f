package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Constructors(t *testing.T) {
	tests := []struct {
		name       string
		res        Result
		kind       ResultKind
		success    bool
		usage      bool
		unexpected bool
	}{
		{"success", Success("done"), KindSuccess, true, false, false},
		{"usage error", UsageError("bad input"), KindUsageError, false, true, false},
		{"unexpected error", UnexpectedError("disk full"), KindUnexpected, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.res.Kind())
			assert.Equal(t, tt.success, tt.res.IsSuccess())
			assert.Equal(t, tt.usage, tt.res.IsUsageError())
			assert.Equal(t, tt.unexpected, tt.res.IsUnexpectedError())
			assert.NotEmpty(t, tt.res.Text())
		})
	}
}

func TestResult_BlankPayloadPanics(t *testing.T) {
	assert.Panics(t, func() { Success("") })
	assert.Panics(t, func() { UsageError("   ") })
	assert.Panics(t, func() { UnexpectedError("\n") })
}

func TestResultKind_String(t *testing.T) {
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "usage error", KindUsageError.String())
	assert.Equal(t, "unexpected error", KindUnexpected.String())
	assert.Equal(t, "ResultKind(9)", ResultKind(9).String())
}
