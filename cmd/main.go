// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pdfsearch/internal/config"
	"pdfsearch/internal/document"
	"pdfsearch/internal/help"
	"pdfsearch/internal/observability"
	"pdfsearch/internal/resolver"
	"pdfsearch/internal/search"
	"pdfsearch/internal/version"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	configFile   string
	profileName  string
	listProfiles bool
	validate     bool
	debug        bool
	noColor      bool
	showVersion  bool
	showHelp     bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	debug    bool
	noColor  bool
	validate bool
}

// UsageError reports an invocation without an input path and at least one word
type UsageError struct {
	Prog string
}

func (e *UsageError) Error() string {
	return help.Usage(e.Prog)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	prog := "pdfsearch"
	if len(args) > 0 {
		prog = args[0]
	}

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, help.Usage(prog))
		fmt.Fprintf(stderr, "Run '%s -help' for options\n", prog)
	}

	flags := &configFlags{}
	fs.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	fs.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")
	fs.BoolVar(&flags.validate, "validate", false, "Validate each PDF's structure before searching")
	fs.BoolVar(&flags.debug, "debug", false, "Print a step-by-step trace to stderr")
	fs.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")
	fs.BoolVar(&flags.showHelp, "help", false, "Show help information")

	var flagArgs []string
	if len(args) > 1 {
		flagArgs = args[1:]
	}
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			help.NewSystem(stdout, true).ShowGeneralHelp(filepath.Base(prog))
			return 0
		}
		// the flag package has already printed the error and usage
		return 1
	}

	if flags.showVersion {
		fmt.Fprintln(stdout, version.Info())
		return 0
	}

	cfg, err := config.LoadConfigOrDefault(flags.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration\n")
	}

	var activeProfile *config.Profile
	if flags.profileName != "" {
		activeProfile = cfg.GetProfile(flags.profileName)
		if activeProfile == nil {
			fmt.Fprintf(stderr, "Error: profile '%s' not found\n", flags.profileName)
			fmt.Fprintf(stderr, "Use '%s -list-profiles' to see available profiles\n", prog)
			return 1
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flags, fs)
	if !isTerminal(stderr) || os.Getenv("NO_COLOR") != "" {
		final.noColor = true
	}

	if flags.listProfiles {
		help.NewSystem(stdout, final.noColor || !isTerminal(stdout)).ShowProfiles(cfg)
		return 0
	}
	if flags.showHelp {
		help.NewSystem(stdout, final.noColor || !isTerminal(stdout)).ShowGeneralHelp(filepath.Base(prog))
		return 0
	}

	errColor := color.New(color.FgRed)
	if final.noColor {
		errColor.DisableColor()
	} else {
		errColor.EnableColor()
	}

	var debugObs *observability.DebugObserver
	if final.debug {
		debugObs = observability.NewDebugObserver(stderr)
		defer debugObs.Sync()
		debugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %q", args))
		debugObs.LogDetail("config", fmt.Sprintf("Profile: %q, validate: %v, no color: %v",
			flags.profileName, final.validate, final.noColor))
	}

	inputPath, words, err := parseInvocation(prog, fs.Args())
	if err != nil {
		errColor.Fprintln(stderr, err.Error())
		return 1
	}

	endResolve := debugObs.StartStep("resolver", "resolve input", inputPath)
	target, err := resolver.Resolve(inputPath)
	if err != nil {
		endResolve(false, err.Error())
		errColor.Fprintln(stderr, pathErrorMessage(err))
		return 1
	}
	endResolve(true, fmt.Sprintf("%s, %d candidate files", target.Kind, len(target.Files)))

	var loader document.Loader = document.NewPDFLoader()
	if final.validate {
		loader = document.NewValidatingLoader(loader)
	}

	searcher := search.NewSearcher(loader, words, stdout, errColorWriter{errColor, stderr})
	searcher.Debug = debugObs
	searcher.Run(target.Files)

	return 0
}

// parseInvocation splits the positional arguments into the input path and
// the search words, which are kept exactly as given
func parseInvocation(prog string, positional []string) (string, []string, error) {
	if len(positional) < 2 {
		return "", nil, &UsageError{Prog: prog}
	}
	return positional[0], positional[1:], nil
}

// resolveConfiguration applies config defaults, then the profile, then flags
// that were set explicitly on the command line
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags, fs *flag.FlagSet) *finalConfiguration {
	final := &finalConfiguration{}

	if cfg != nil {
		final.debug = cfg.Defaults.Debug
		final.noColor = cfg.Defaults.NoColor
		final.validate = cfg.Defaults.Validate
	}
	if activeProfile != nil {
		final.debug = final.debug || activeProfile.Debug
		final.noColor = final.noColor || activeProfile.NoColor
		final.validate = final.validate || activeProfile.Validate
	}

	if isFlagSet(fs, "debug") {
		final.debug = flags.debug
	}
	if isFlagSet(fs, "no-color") {
		final.noColor = flags.noColor
	}
	if isFlagSet(fs, "validate") {
		final.validate = flags.validate
	}

	if os.Getenv("PDFSEARCH_DEBUG") != "" {
		final.debug = true
	}
	return final
}

// pathErrorMessage renders resolver failures in the CLI's message format
func pathErrorMessage(err error) string {
	var pathErr *resolver.PathError
	if !errors.As(err, &pathErr) {
		return fmt.Sprintf("Error: %v", err)
	}
	if pathErr.Op == "readdir" {
		return fmt.Sprintf("Failed to read directory '%s': %v", pathErr.Path, pathErr.Err)
	}
	return fmt.Sprintf("The provided path is neither a file nor a directory: %s", pathErr.Path)
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// errColorWriter colors everything written through it
type errColorWriter struct {
	c *color.Color
	w io.Writer
}

func (e errColorWriter) Write(p []byte) (int, error) {
	if _, err := e.c.Fprint(e.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
