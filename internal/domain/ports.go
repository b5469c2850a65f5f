package domain

// TaskListStore persists the stored form of a whole task list to a named file.
type TaskListStore interface {
	// Save writes the list to path, replacing previous contents.
	Save(path string, list TaskListRecord) error

	// Load reads a list previously written by Save.
	Load(path string) (TaskListRecord, error)
}

// TaskListHolder owns the active task list of a session.
// Load replaces the list wholesale, so use cases resolve it on every call.
type TaskListHolder interface {
	// TaskList returns the active list.
	TaskList() *TaskList

	// ReplaceTaskList swaps in a freshly loaded list.
	ReplaceTaskList(list *TaskList)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the working directory config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig creates the global config file from the template.
	InitGlobalConfig(cfg *Config) error

	// InitLocalConfig creates the working directory config file from the template.
	InitLocalConfig(cfg *Config) error
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // Path to the config file
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// Logger writes categorized log entries.
// Categories are short labels such as "task", "storage" or "command".
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
