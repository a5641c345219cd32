// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver classifies the input path and builds the candidate file set.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the classification of the input path
type Kind int

const (
	File Kind = iota + 1
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "unknown"
	}
}

// Target holds the classified input and the files to search
type Target struct {
	Path  string
	Kind  Kind
	Files []string
}

// PathError reports an input path that cannot be searched
type PathError struct {
	Path string
	Op   string // "stat" or "readdir"
	Err  error
}

func (e *PathError) Error() string {
	if e.Op == "readdir" {
		return fmt.Sprintf("failed to read directory '%s': %v", e.Path, e.Err)
	}
	return fmt.Sprintf("the provided path is neither a file nor a directory: %s", e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Resolve classifies path. A regular file is searched as-is whatever its
// extension; a directory contributes its direct PDF children.
func Resolve(path string) (*Target, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Op: "stat", Err: err}
	}

	switch {
	case info.Mode().IsRegular():
		return &Target{Path: path, Kind: File, Files: []string{path}}, nil
	case info.IsDir():
		files, err := ListPDFs(path)
		if err != nil {
			return nil, err
		}
		return &Target{Path: path, Kind: Directory, Files: files}, nil
	default:
		return nil, &PathError{Path: path, Op: "stat", Err: fmt.Errorf("unsupported file mode %s", info.Mode().Type())}
	}
}

// ListPDFs returns the regular files directly inside dir whose extension is
// exactly "pdf", in file name order. Entries that cannot be stat-ed are skipped.
func ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Op: "readdir", Err: err}
	}

	files := []string{}
	for _, entry := range entries {
		if !HasPDFExtension(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks so a link to a PDF counts as a regular file
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// HasPDFExtension reports whether name ends in ".pdf" after a non-empty stem.
// The comparison is case-sensitive, so "report.PDF" does not qualify.
func HasPDFExtension(name string) bool {
	stem, ok := strings.CutSuffix(name, ".pdf")
	return ok && stem != ""
}
