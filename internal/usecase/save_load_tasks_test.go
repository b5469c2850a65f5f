package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/kipp/internal/domain"
	"github.com/runoshun/kipp/internal/storage"
	"github.com/runoshun/kipp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTasks_Execute_DefaultPath(t *testing.T) {
	holder := testutil.NewHolder(domain.NewToDo("buy milk"))
	store := testutil.NewMockTaskListStore()
	uc := NewSaveTasks(holder, store, "kipp.json", nil)

	out, err := uc.Execute(context.Background(), SaveTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, "kipp.json", out.Path)
	assert.Equal(t, 1, out.Count)
	saved, err := store.Files["kipp.json"].TaskList()
	require.NoError(t, err)
	assert.True(t, holder.List.Equal(saved))
}

func TestSaveTasks_Execute_InvalidPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		defaultPath string
	}{
		{"directory", "backups/", "kipp.json"},
		{"nul byte", "a\x00b", "kipp.json"},
		{"no default", "  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskListStore()
			uc := NewSaveTasks(testutil.NewHolder(), store, tt.defaultPath, nil)

			_, err := uc.Execute(context.Background(), SaveTasksInput{Path: tt.path})

			assert.ErrorIs(t, err, domain.ErrInvalidPath)
			assert.Equal(t, 0, store.Saves)
		})
	}
}

func TestSaveTasks_Execute_StoreError(t *testing.T) {
	store := testutil.NewMockTaskListStore()
	store.SaveErr = errors.New("disk full")
	logger := &testutil.MockLogger{}
	uc := NewSaveTasks(testutil.NewHolder(), store, "kipp.json", logger)

	_, err := uc.Execute(context.Background(), SaveTasksInput{})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidPath)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "ERROR", logger.Entries[0].Level)
}

func TestLoadTasks_Execute_ReplacesList(t *testing.T) {
	holder := testutil.NewHolder(domain.NewToDo("old"))
	store := testutil.NewMockTaskListStore()
	store.Files["saved.json"] = domain.NewTaskList(domain.NewToDo("a"), domain.NewToDo("b")).Record()
	uc := NewLoadTasks(holder, store, "kipp.json", nil)

	out, err := uc.Execute(context.Background(), LoadTasksInput{Path: "saved.json"})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "saved.json", out.Path)
	assert.Equal(t, "1. [T][ ] a\n2. [T][ ] b", holder.List.Render())
}

func TestLoadTasks_Execute_FailureKeepsList(t *testing.T) {
	original := domain.NewTaskList(domain.NewToDo("keep me"))
	holder := &testutil.Holder{List: original}
	store := testutil.NewMockTaskListStore()
	store.LoadErr = errors.New("boom")
	uc := NewLoadTasks(holder, store, "kipp.json", nil)

	_, err := uc.Execute(context.Background(), LoadTasksInput{})

	require.Error(t, err)
	assert.Same(t, original, holder.List)
}

func TestLoadTasks_Execute_CorruptTask(t *testing.T) {
	holder := testutil.NewHolder(domain.NewToDo("keep me"))
	store := testutil.NewMockTaskListStore()
	store.Files["kipp.json"] = domain.TaskListRecord{Tasks: []domain.TaskRecord{{Kind: domain.KindDeadline, Name: "no date"}}}
	uc := NewLoadTasks(holder, store, "kipp.json", nil)

	_, err := uc.Execute(context.Background(), LoadTasksInput{})

	assert.ErrorIs(t, err, domain.ErrCorruptTaskList)
	assert.Equal(t, "1. [T][ ] keep me", holder.List.Render())
}

func TestSaveLoadTasks_WithFileStore(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kipp"+ext)
			store := storage.New[domain.TaskListRecord]("tasklist")

			saved := domain.NewTaskList(
				domain.NewToDo("buy milk"),
				domain.NewDeadline("submit report", day(2024, 1, 1)),
				domain.NewEvent("conference", day(2024, 3, 4), day(2024, 3, 5)),
			)
			saved.SetComplete(1)
			holder := &testutil.Holder{List: saved}

			_, err := NewSaveTasks(holder, store, path, nil).Execute(context.Background(), SaveTasksInput{})
			require.NoError(t, err)

			holder.List = domain.NewTaskList()
			_, err = NewLoadTasks(holder, store, path, nil).Execute(context.Background(), LoadTasksInput{})
			require.NoError(t, err)

			assert.True(t, saved.Equal(holder.List))
			assert.Equal(t, saved.Render(), holder.List.Render())
		})
	}
}

func TestLoadTasks_WithFileStore_ForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"kind":"notes","version":1,"data":"hi"}`), 0o600))
	holder := testutil.NewHolder(domain.NewToDo("keep me"))
	uc := NewLoadTasks(holder, storage.New[domain.TaskListRecord]("tasklist"), path, nil)

	_, err := uc.Execute(context.Background(), LoadTasksInput{})

	assert.ErrorIs(t, err, storage.ErrKindMismatch)
	assert.Equal(t, "1. [T][ ] keep me", holder.List.Render())
}
