package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName = ".notepad"
	homeEnvVar = "NOTEPAD_HOME"
)

// DataDir returns the base data directory. NOTEPAD_HOME overrides the
// default of ~/.notepad.
func DataDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(homeEnvVar)); override != "" {
		return filepath.Clean(override), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	return dataPath("config.toml")
}

// LogPath returns the default log file used while the terminal UI runs.
func LogPath() (string, error) {
	return dataPath("notepad.log")
}

// DraftsPath returns the default bbolt file holding unsaved edit buffers.
func DraftsPath() (string, error) {
	return dataPath("drafts.db")
}

func dataPath(name string) (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, name), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return dataPath(path)
}
