package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/kipp/internal/app"
	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchChatTUIFunc
	defer func() {
		launchChatTUIFunc = originalFunc
	}()

	called := false
	launchChatTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchChatTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchChatTUIFunc
	defer func() {
		launchChatTUIFunc = originalFunc
	}()

	called := false
	launchChatTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchChatTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, buf.String(), "Chat Commands:")
	assert.Contains(t, buf.String(), "--plain")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	originalFunc := launchChatTUIFunc
	defer func() {
		launchChatTUIFunc = originalFunc
	}()
	launchChatTUIFunc = func(*app.Container) error { return nil }

	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown section: theme"}
	c := app.NewWithDeps(app.Config{}, cfg, testutil.NewMockTaskListStore(), nil)

	root := NewRootCommand(c, "test-version")
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetArgs([]string{})
	require.NoError(t, root.Execute())

	assert.Equal(t, "Warning: unknown section: theme\n", stderr.String())
}

func TestNewRootCommand_PlainWithoutContainer(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"--plain"})

	err := root.Execute()

	assert.ErrorIs(t, err, errNoContainer)
}
