package domain

import "path/filepath"

// File and directory names.
const (
	AppName          = "kipp"
	ConfigFileName   = "config.toml"
	LocalConfigName  = ".kipp.toml"
	DefaultStoreFile = "kipp.json"
	logFileName      = "kipp.log"
)

// GlobalConfigDir returns the global config directory under configHome
// (typically ~/.config).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// LogPath returns the log file path under dataDir.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", logFileName)
}
