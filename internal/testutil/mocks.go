// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"

	"github.com/runoshun/kipp/internal/domain"
)

// Holder is a test double for domain.TaskListHolder.
type Holder struct {
	List *domain.TaskList
}

// NewHolder creates a Holder seeded with tasks.
func NewHolder(tasks ...*domain.Task) *Holder {
	return &Holder{List: domain.NewTaskList(tasks...)}
}

// TaskList returns the held list.
func (h *Holder) TaskList() *domain.TaskList {
	return h.List
}

// ReplaceTaskList swaps the held list.
func (h *Holder) ReplaceTaskList(list *domain.TaskList) {
	h.List = list
}

// MockTaskListStore is a test double for domain.TaskListStore.
// Fields are ordered to minimize memory padding.
type MockTaskListStore struct {
	Files   map[string]domain.TaskListRecord
	SaveErr error
	LoadErr error
	Saves   int
	Loads   int
}

// NewMockTaskListStore creates a new MockTaskListStore with an initialized map.
func NewMockTaskListStore() *MockTaskListStore {
	return &MockTaskListStore{Files: make(map[string]domain.TaskListRecord)}
}

// Save records list under path.
func (m *MockTaskListStore) Save(path string, list domain.TaskListRecord) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Files[path] = domain.TaskListRecord{Tasks: append([]domain.TaskRecord(nil), list.Tasks...)}
	return nil
}

// Load returns the list recorded under path.
func (m *MockTaskListStore) Load(path string) (domain.TaskListRecord, error) {
	m.Loads++
	if m.LoadErr != nil {
		return domain.TaskListRecord{}, m.LoadErr
	}
	list, ok := m.Files[path]
	if !ok {
		return domain.TaskListRecord{}, fmt.Errorf("no file at %s", path)
	}
	return list, nil
}

// Entry is a single log line captured by MockLogger.
type Entry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []Entry
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, Entry{Level: level, Category: category, Msg: msg})
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	InitConfig       *domain.Config
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/work/.kipp.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/kipp/config.toml",
			Exists: false,
		},
	}
}

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns configured error.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

var (
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
	_ domain.ConfigManager  = (*MockConfigManager)(nil)
	_ domain.TaskListHolder = (*Holder)(nil)
	_ domain.TaskListStore  = (*MockTaskListStore)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)
