// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory
const AppName = "pdfsearch"

// GetConfigDir returns the pdfsearch configuration directory.
// PDFSEARCH_CONFIG_DIR overrides the platform user config directory
// ($XDG_CONFIG_HOME or ~/.config on Unix, %AppData% on Windows).
func GetConfigDir() string {
	if dir := os.Getenv("PDFSEARCH_CONFIG_DIR"); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return ""
		}
		return filepath.Join(home, "."+AppName)
	}
	return filepath.Join(base, AppName)
}

// GetConfigFile returns the path to the user config file, or "" when no
// config directory can be determined
func GetConfigFile() string {
	dir := GetConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// ValidatePath validates a path for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return nil
	}

	if runtime.GOOS == "windows" {
		return validateWindowsPath(path)
	}
	return validateUnixPath(path)
}

func validateWindowsPath(path string) error {
	invalidChars := []rune{'<', '>', '"', '|', '?', '*', 0}
	for i, char := range path {
		// a colon is only legal as the drive separator (C:)
		if char == ':' && i != 1 {
			return &PathValidationError{Path: path, Reason: "contains invalid character: :"}
		}
		for _, invalid := range invalidChars {
			if char == invalid {
				return &PathValidationError{Path: path, Reason: "contains invalid character: " + string(char)}
			}
		}
	}

	if len(path) > 32767 {
		return &PathValidationError{
			Path:   path,
			Reason: "path exceeds maximum length of 32,767 characters",
		}
	}
	return nil
}

func validateUnixPath(path string) error {
	for _, char := range path {
		if char == 0 {
			return &PathValidationError{Path: path, Reason: "contains null byte"}
		}
	}
	return nil
}

// PathValidationError represents a path validation error
type PathValidationError struct {
	Path   string
	Reason string
}

func (e *PathValidationError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Reason
}
