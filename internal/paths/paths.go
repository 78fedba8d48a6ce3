package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "launchkit"

// AppDataDir returns the application data directory for config, history
// and logs. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the TOML config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.toml")
}

// HistoryDBPath returns the path to the launch-history database.
func HistoryDBPath() string {
	return filepath.Join(AppDataDir(), "history.db")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "lk.log")
}
