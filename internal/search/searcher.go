// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package search reports which pages of a document contain each search word.
package search

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"pdfsearch/internal/document"
	"pdfsearch/internal/observability"
)

// Match is one (word, file, page) hit
type Match struct {
	Word string
	Path string
	Page int
}

// String renders the match in the stdout line format
func (m Match) String() string {
	return fmt.Sprintf("Found '%s' in file '%s' on page %d", m.Word, m.Path, m.Page)
}

// FileResult describes the outcome of searching one file
type FileResult struct {
	Path         string
	LoadErr      error
	PagesTotal   int
	PagesSkipped int
	Matches      []Match
}

// Summary aggregates the results of a run
type Summary struct {
	FilesSearched int
	LoadFailures  int
	PagesSkipped  int
	Matches       int
}

// Searcher looks for literal words in documents
type Searcher struct {
	Loader document.Loader
	Words  []string
	Out    io.Writer // match lines
	Err    io.Writer // load failures
	Debug  *observability.DebugObserver
}

// NewSearcher creates a searcher writing matches to out and diagnostics to errOut
func NewSearcher(loader document.Loader, words []string, out, errOut io.Writer) *Searcher {
	return &Searcher{
		Loader: loader,
		Words:  words,
		Out:    out,
		Err:    errOut,
	}
}

// Run searches each file in order. A file that fails to load is reported and
// does not stop the run.
func (s *Searcher) Run(files []string) Summary {
	var summary Summary
	for _, path := range files {
		result := s.SearchFile(path)
		summary.FilesSearched++
		if result.LoadErr != nil {
			summary.LoadFailures++
		}
		summary.PagesSkipped += result.PagesSkipped
		summary.Matches += len(result.Matches)
	}

	s.Debug.LogMetric("searcher", "files_searched", summary.FilesSearched)
	s.Debug.LogMetric("searcher", "load_failures", summary.LoadFailures)
	s.Debug.LogMetric("searcher", "pages_skipped", summary.PagesSkipped)
	s.Debug.LogMetric("searcher", "matches", summary.Matches)
	return summary
}

// SearchFile loads path and writes one line per (word, page) match. When the
// document cannot be loaded the error is written to Err and the file is
// abandoned; pages whose text cannot be extracted are skipped silently.
func (s *Searcher) SearchFile(path string) FileResult {
	result := FileResult{Path: path}
	endStep := s.Debug.StartStep("searcher", "search file", path)
	finishTiming := s.Debug.Timing().StartTiming("searcher", "search_file", path)

	doc, err := s.Loader.Load(path)
	if err != nil {
		result.LoadErr = err
		fmt.Fprintf(s.Err, "Failed to load PDF file '%s': %v\n", path, loadCause(err))
		endStep(false, err.Error())
		finishTiming(observability.StandardObservabilityData{Success: false, Error: err.Error()})
		return result
	}
	defer doc.Close()

	pages := doc.Pages()
	result.PagesTotal = len(pages)
	s.Debug.LogDetail("searcher", fmt.Sprintf("%d pages", len(pages)))

	for _, page := range pages {
		text, err := doc.PageText(page.ID)
		if err != nil {
			result.PagesSkipped++
			s.Debug.LogDetail("searcher", fmt.Sprintf("skipping page %d: %v", page.Number, err))
			continue
		}

		for _, match := range MatchPage(text, s.Words, path, page.Number) {
			fmt.Fprintln(s.Out, match.String())
			result.Matches = append(result.Matches, match)
		}
	}

	endStep(true, fmt.Sprintf("%d matches, %d pages skipped", len(result.Matches), result.PagesSkipped))
	finishTiming(observability.StandardObservabilityData{
		Success:    true,
		MatchCount: len(result.Matches),
		Metadata: map[string]interface{}{
			"pages":         result.PagesTotal,
			"pages_skipped": result.PagesSkipped,
		},
	})
	return result
}

// MatchPage returns one Match per word that occurs in text, in word order.
// Words are compared byte for byte with no normalisation.
func MatchPage(text string, words []string, path string, page int) []Match {
	var matches []Match
	for _, word := range words {
		if strings.Contains(text, word) {
			matches = append(matches, Match{Word: word, Path: path, Page: page})
		}
	}
	return matches
}

// loadCause strips the LoadError wrapper since the caller already names the file
func loadCause(err error) error {
	var loadErr *document.LoadError
	if errors.As(err, &loadErr) && loadErr.Err != nil {
		return loadErr.Err
	}
	return err
}
