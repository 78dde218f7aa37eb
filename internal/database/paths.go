package database

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	AppDirName       = ".route-descriptor"
	SQLiteDBFileName = "graph.db"
)

// GetAppDir returns ~/.route-descriptor, creating it if needed
func GetAppDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	appDir := filepath.Join(homeDir, AppDirName)
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create app directory: %w", err)
	}

	return appDir, nil
}

// GetDBPath returns ~/.route-descriptor/graph.db
func GetDBPath() (string, error) {
	appDir, err := GetAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, SQLiteDBFileName), nil
}
