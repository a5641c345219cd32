// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pdfsearch/internal/config"

	"github.com/fatih/color"
)

// System renders help content for the application
type System struct {
	out    io.Writer
	colors map[string]*color.Color
}

// NewSystem creates a help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":   color.New(color.FgWhite, color.Bold),
		"header":  color.New(color.FgBlue, color.Bold),
		"item":    color.New(color.FgCyan),
		"example": color.New(color.FgMagenta),
	}
	for _, c := range colors {
		if noColor {
			c.DisableColor()
		}
	}

	return &System{out: out, colors: colors}
}

// Usage returns the one-line usage message for prog
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s <file_or_directory> <word1> [<word2> ...]", prog)
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp(prog string) {
	h.colors["title"].Fprintln(h.out, "pdfsearch - find words in PDF files")
	fmt.Fprintln(h.out, "===================================")
	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "USAGE:")
	fmt.Fprintf(h.out, "  %s [options] <file_or_directory> <word1> [<word2> ...]\n", prog)
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "  A file is searched whatever its extension. A directory contributes the")
	fmt.Fprintln(h.out, "  regular files directly inside it whose name ends in \".pdf\" (case-sensitive).")
	fmt.Fprintln(h.out, "  Words are matched as exact substrings of each page's text.")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OPTIONS:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  -config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  -profile\t<name>\tProfile name to use from config file")
	fmt.Fprintln(w, "  -list-profiles\t\tList available profiles and exit")
	fmt.Fprintln(w, "  -validate\t\tValidate each PDF's structure with pdfcpu before searching")
	fmt.Fprintln(w, "  -debug\t\tPrint a step-by-step trace to stderr")
	fmt.Fprintln(w, "  -no-color\t\tDisable colored diagnostics")
	fmt.Fprintln(w, "  -version\t\tShow version information")
	fmt.Fprintln(w, "  -help\t\tShow this help message")
	w.Flush()
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OUTPUT:")
	fmt.Fprintln(h.out, "  One line per word and page on stdout:")
	h.colors["item"].Fprintln(h.out, "    Found '<word>' in file '<path>' on page <n>")
	fmt.Fprintln(h.out, "  Files that cannot be loaded are reported on stderr and skipped.")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "EXAMPLES:")
	h.colors["example"].Fprintf(h.out, "  %s report.pdf invoice total\n", prog)
	h.colors["example"].Fprintf(h.out, "  %s -validate ./docs hello goodbye\n", prog)
	h.colors["example"].Fprintf(h.out, "  %s -profile strict ./docs \"exact phrase\"\n", prog)
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "EXIT STATUS:")
	fmt.Fprintln(h.out, "  0  search completed (with or without matches)")
	fmt.Fprintln(h.out, "  1  usage error, or the path is not a readable file or directory")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
	fmt.Fprintln(h.out, "  Project config: .pdfsearch.yaml or pdfsearch.yaml (in current directory)")
	fmt.Fprintln(h.out, "  User config:    <user config dir>/pdfsearch/config.yaml")
	fmt.Fprintln(h.out, "  Environment:    PDFSEARCH_CONFIG_DIR overrides the user config directory,")
	fmt.Fprintln(h.out, "                  PDFSEARCH_DEBUG=1 enables -debug")
}

// ShowProfiles lists the profiles defined in cfg
func (h *System) ShowProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	if len(names) == 0 {
		fmt.Fprintln(h.out, "No profiles defined")
		return
	}

	h.colors["header"].Fprintln(h.out, "Available profiles:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		profile := cfg.Profiles[name]
		fmt.Fprintf(w, "  %s\t%s\n", h.colors["item"].Sprint(name), profile.Description)
	}
	w.Flush()
}
