// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	return path
}

func TestResolve_SingleFileIsNotFiltered(t *testing.T) {
	path := touch(t, t.TempDir(), "notes.txt")

	target, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, File, target.Kind)
	assert.Equal(t, []string{path}, target.Files)
}

func TestResolve_DirectoryKeepsOnlyLowercasePDF(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "b.txt")
	touch(t, dir, "c.PDF")

	target, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, Directory, target.Kind)
	assert.Equal(t, []string{filepath.Join(dir, "a.pdf")}, target.Files)
}

func TestResolve_DirectoryIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0700))
	touch(t, sub, "deep.pdf")
	touch(t, dir, "top.pdf")

	target, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "top.pdf")}, target.Files)
}

func TestResolve_DirectoryNamedLikePDFIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.pdf"), 0700))

	files, err := ListPDFs(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestResolve_SortedByName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.pdf", "a.pdf", "b.pdf"} {
		touch(t, dir, name)
	}

	files, err := ListPDFs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "c.pdf"),
	}, files)
}

func TestResolve_EmptyDirectory(t *testing.T) {
	target, err := Resolve(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, target.Files)
	assert.Empty(t, target.Files)
}

func TestResolve_MissingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := Resolve(missing)

	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "stat", pathErr.Op)
	assert.Contains(t, err.Error(), missing)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestListPDFs_SymlinkHandling(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}
	dir := t.TempDir()
	src := touch(t, t.TempDir(), "real.pdf")
	require.NoError(t, os.Symlink(src, filepath.Join(dir, "link.pdf")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.pdf")))

	files, err := ListPDFs(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link.pdf")}, files, "dangling entries are skipped silently")
}

func TestListPDFs_UnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0000))
	t.Cleanup(func() { os.Chmod(dir, 0700) })

	_, err := Resolve(dir)

	var pathErr *PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "readdir", pathErr.Op)
	assert.Contains(t, err.Error(), "failed to read directory")
}

func TestHasPDFExtension(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"report.pdf", true},
		{"archive.tar.pdf", true},
		{"..pdf", true},
		{".pdf", false},
		{"report.PDF", false},
		{"report.Pdf", false},
		{"report.pdf.bak", false},
		{"pdf", false},
		{"report.", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasPDFExtension(tc.name))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "directory", Directory.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
