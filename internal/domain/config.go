package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultUserName = "Dr. Mann"
)

// RepeatPolicy decides what happens when a task is marked into the state it
// is already in.
type RepeatPolicy string

// Repeat policies.
const (
	RepeatReject RepeatPolicy = "reject" // Report a usage error and leave the task as is
	RepeatAllow  RepeatPolicy = "allow"  // Treat the request as a successful no-op
)

// IsValid returns true if the policy is known.
func (p RepeatPolicy) IsValid() bool {
	return p == RepeatReject || p == RepeatAllow
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings   []string         `toml:"-"`
	User       UserConfig       `toml:"user"`
	Storage    StorageConfig    `toml:"storage"`
	Log        LogConfig        `toml:"log"`
	Completion CompletionConfig `toml:"completion"`
}

// UserConfig holds settings from the [user] section.
type UserConfig struct {
	Name string `toml:"name,omitempty"` // Name shown on the user's badge
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Path string `toml:"path,omitempty"` // Default file used by save/load
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Directory holding logs/kipp.log (empty = disabled)
}

// CompletionConfig holds settings from the [completion] section.
type CompletionConfig struct {
	OnRepeat RepeatPolicy `toml:"on_repeat,omitempty"` // reject (default) or allow
}

// LoadConfigOptions selects which config files are read.
type LoadConfigOptions struct {
	IgnoreGlobal bool // Skip the global config file
	IgnoreLocal  bool // Skip the working directory config file
}

// NewDefaultConfig returns a config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: DefaultStoreFile,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Completion: CompletionConfig{
			OnRepeat: RepeatReject,
		},
	}
}

// Validate checks enumerated values and returns the first problem found.
func (c *Config) Validate() error {
	if !c.Completion.OnRepeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, c.Completion.OnRepeat)
	}
	return nil
}

// RenderConfigTemplate renders the commented config template seeded with
// values from cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
