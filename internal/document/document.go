// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document is the boundary to the PDF parsing library. A Document is
// loaded per file, exposes its page table in document order, and extracts the
// text of one page at a time.
package document

import (
	"fmt"
)

// PageID identifies a page within the Document that produced it.
type PageID int

// PageRef pairs a 1-based page number with the identifier used to request its text
type PageRef struct {
	Number int
	ID     PageID
}

// Document is a parsed PDF owned by a single search
type Document interface {
	// Pages returns the page table in document order
	Pages() []PageRef

	// PageText extracts the text of a single page
	PageText(id PageID) (string, error)

	// Close releases the underlying file
	Close() error
}

// Loader opens documents from the filesystem
type Loader interface {
	Load(path string) (Document, error)
}

// LoaderFunc adapts a plain function to the Loader interface
type LoaderFunc func(path string) (Document, error)

// Load calls f(path)
func (f LoaderFunc) Load(path string) (Document, error) {
	return f(path)
}

// LoadError reports a file that could not be parsed as a document
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PageError reports a page whose text could not be extracted
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
