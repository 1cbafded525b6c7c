package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GetWrappedHome returns the ccwrapped home directory.
// Priority order:
//  1. CCWRAPPED_HOME environment variable (if set)
//  2. ~/.ccwrapped
func GetWrappedHome() (string, error) {
	if home := os.Getenv("CCWRAPPED_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".ccwrapped"), nil
}

// ResolveClaudeDir returns the assistant data directory.
// Priority order:
//  1. configured (flag or config file), with ~ expanded
//  2. CLAUDE_CONFIG_DIR environment variable
//  3. ~/.claude
func ResolveClaudeDir(configured string) (string, error) {
	if configured != "" {
		return ExpandHome(configured)
	}
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return ExpandHome(dir)
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".claude"), nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}
	if path == "~" {
		return userHome, nil
	}
	return filepath.Join(userHome, path[2:]), nil
}
