package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/kipp/internal/app"
	"github.com/runoshun/kipp/internal/chat"
	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatTestContainer creates a container whose task list lives in a temp dir.
func newChatTestContainer(t *testing.T) (*app.Container, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kipp.json")
	cfg := domain.NewDefaultConfig()
	cfg.Storage.Path = path
	return app.NewWithDeps(app.Config{}, cfg, storage.New[domain.TaskListRecord](app.TaskListKind), nil), path
}

func TestRootCommand_Plain_Transcript(t *testing.T) {
	t.Setenv(app.UsernameEnv, "cooper")
	c, path := newChatTestContainer(t)

	root := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	root.SetIn(strings.NewReader("todo buy milk\nlist\nbye\nlist\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"--plain"})
	require.NoError(t, root.Execute())

	want := strings.Join([]string{
		chat.Logo,
		"[KIPP]",
		chat.SelfIntroduction(),
		"---",
		"[cooper]",
		"---",
		"[KIPP]",
		"Roger that, I've added the following task to your list:",
		"[T][ ] buy milk",
		"Note, you have 1 tasks in your list.",
		"---",
		"[cooper]",
		"---",
		"[KIPP]",
		"1. [T][ ] buy milk",
		"---",
		"[cooper]",
		"---",
		"[KIPP]",
		chat.SignOut,
		"---",
		"[KIPP]",
		"I've saved your task list to " + path + ".",
		"---",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())

	// Saved on the way out
	restored := c.NewSession()
	require.NoError(t, restored.Load(t.Context()))
	assert.Equal(t, "1. [T][ ] buy milk", restored.Dispatch("list"))
	assert.FileExists(t, path)
}

func TestRootCommand_Plain_EndOfInputSaves(t *testing.T) {
	c, _ := newChatTestContainer(t)

	root := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	root.SetIn(strings.NewReader("todo walk dog"))
	root.SetOut(&out)
	root.SetArgs([]string{"--plain"})
	require.NoError(t, root.Execute())

	restored := c.NewSession()
	require.NoError(t, restored.Load(t.Context()))
	assert.Equal(t, "1. [T][ ] walk dog", restored.Dispatch("list"))
}

func TestRootCommand_Plain_RestoresSavedList(t *testing.T) {
	c, _ := newChatTestContainer(t)
	seed := c.NewSession()
	seed.Dispatch("event launch /from 2024-03-04 /to 2024-03-05")
	require.NoError(t, seed.Save(t.Context()))

	root := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	root.SetIn(strings.NewReader("list\nbye\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"--plain"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "1. [E][ ] launch (from: Mar 4 2024 to: Mar 5 2024)")
}

func TestRootCommand_Plain_ReportsSaveFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := domain.NewDefaultConfig()
	cfg.Storage.Path = dir
	c := app.NewWithDeps(app.Config{}, cfg, storage.New[domain.TaskListRecord](app.TaskListKind), nil)

	root := NewRootCommand(c, "test-version")
	var out bytes.Buffer
	root.SetIn(strings.NewReader("todo buy milk\nbye\n"))
	root.SetOut(&out)
	root.SetArgs([]string{"--plain"})
	require.NoError(t, root.Execute())

	want := "[KIPP]\nSomething went wrong, I couldn't save your task list to " + dir + ". I'm leaving it as is.\n---\n"
	assert.True(t, strings.HasSuffix(out.String(), want), out.String())
}
