// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PDFSEARCH_CONFIG_DIR", dir)

	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigFile())
}

func TestGetConfigDir_UserConfigDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "plan9" {
		t.Skip("XDG_CONFIG_HOME only applies on Unix")
	}
	t.Setenv("PDFSEARCH_CONFIG_DIR", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	assert.Equal(t, filepath.Join(xdg, AppName), GetConfigDir())
}

func TestValidatePath(t *testing.T) {
	assert.NoError(t, ValidatePath(""))
	assert.NoError(t, ValidatePath(filepath.Join("docs", "report.pdf")))

	err := ValidatePath("bad\x00name")
	var pathErr *PathValidationError
	assert.True(t, errors.As(err, &pathErr))
	assert.Contains(t, err.Error(), "invalid path")
}
