// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global Code Tray directory.
	GlobalDirName = ".codetray"

	// HomeEnv overrides the global directory when set.
	HomeEnv = "CODETRAY_HOME"
)

// File names
const (
	DaemonFileName   = "daemon.yaml"
	StoreFileName    = "store.yaml"
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global Code Tray directory (~/.codetray/).
func GlobalDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	return globalFile(DaemonFileName)
}

// GlobalStoreFile returns the path to the store.yaml file.
func GlobalStoreFile() (string, error) {
	return globalFile(StoreFileName)
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	return globalFile(SettingsFileName)
}

func globalFile(name string) (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// EnsureGlobalDir creates the global Code Tray directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
