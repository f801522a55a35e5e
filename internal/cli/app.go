// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"may-cli/internal/config"
	"may-cli/internal/discovery"
	"may-cli/internal/issue"
	"may-cli/internal/script"
	"may-cli/internal/textfmt"
)

// notFoundMsg is the fixed line printed when a requested script does not
// resolve, both in manual mode and in run mode.
const notFoundMsg = "ERROR: Script not found"

type (
	// App wires the dispatcher's services. It is the composition root for
	// the CLI layer — the root command handler delegates every branch to it,
	// and tests construct it with injected writers and a stub registry.
	App struct {
		cfg        *config.Config
		resolver   *script.Resolver
		scriptsDir string
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil or
	// empty fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     *config.Config
		Registry   *script.Registry
		ScriptsDir string
		Stdout     io.Writer
		Stderr     io.Writer
	}
)

// NewApp builds an App, loading configuration and resolving the scripts
// directory for any dependency not supplied. A broken config file degrades
// to defaults with a warning rather than aborting.
func NewApp(deps Dependencies) (*App, error) {
	stdout := deps.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg := deps.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			if card, rerr := issue.Get(issue.ConfigLoadFailedId).Render("dark"); rerr == nil {
				fmt.Fprint(stderr, card)
			}
			fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, false))
			loaded = config.DefaultConfig()
		}
		cfg = loaded
	}
	if cfg.DocWidth <= 0 {
		cfg.DocWidth = config.DefaultDocWidth
	}
	if cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	scriptsDir := deps.ScriptsDir
	if scriptsDir == "" {
		dir, err := cfg.ResolveScriptsDir()
		if err != nil {
			return nil, err
		}
		scriptsDir = dir
	}

	return &App{
		cfg:        cfg,
		resolver:   script.NewResolver(scriptsDir, deps.Registry),
		scriptsDir: scriptsDir,
		stdout:     stdout,
		stderr:     stderr,
	}, nil
}

// Dispatch routes a raw argument list (program name already stripped)
// through the three dispatcher branches, evaluated in order:
//
//  1. no arguments: print the general help with the script listing;
//  2. "manual <name>" with exactly one following argument: print that
//     script's full documentation verbatim;
//  3. anything else: treat the first argument as a script name and forward
//     the rest to its entry point.
//
// Note that "manual <name> <extra>..." intentionally falls through to
// branch 3 and attempts to run a script literally named "manual".
func (a *App) Dispatch(args []string) error {
	switch {
	case len(args) == 0:
		return a.generalHelp()
	case args[0] == "manual" && len(args) == 2:
		return a.manual(args[1])
	default:
		return a.run(args[0], args[1:])
	}
}

// manual prints a script's raw documentation, or an empty line when the
// script carries none. An unresolvable name gets the fixed error line and a
// normal exit.
func (a *App) manual(name string) error {
	s, err := a.resolver.Resolve(name)
	if errors.Is(err, script.ErrNotFound) {
		fmt.Fprintln(a.stdout, notFoundMsg)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, s.Doc())
	return nil
}

// run resolves name and invokes its entry point with args. Resolution
// failure gets the fixed error line; a failure inside the script itself
// propagates untouched.
func (a *App) run(name string, args []string) error {
	s, err := a.resolver.Resolve(name)
	if errors.Is(err, script.ErrNotFound) {
		fmt.Fprintln(a.stdout, notFoundMsg)
		return nil
	}
	if err != nil {
		return err
	}
	return s.Main(args)
}

// generalHelp prints the static usage banner followed by the generated
// script listing.
func (a *App) generalHelp() error {
	listing, err := a.scriptList()
	if err != nil {
		return err
	}

	header := TitleStyle.Render("may") + SubtitleStyle.Render(" - a generic script manager")
	fmt.Fprintf(a.stdout, `%s

This tool is a generic script manager that acts as a controller of scripts of different
kinds.
 may <script name> --help	Quick help and parameters description
 may manual <script name>	Read the full manual of this script

Below, a list of the available scripts:

%s

`, header, listing)
	return nil
}

// scriptList renders one row per discoverable, loadable script: the name
// padded to the longest candidate, a tab, and the doc title wrapped at the
// configured width with continuation lines blank-padded under the title
// column. Compiled-in registry scripts join the enumerated candidates so
// built-ins show up alongside script files; a registered name that shadows
// a file appears once. Rows are plain text; their layout is part of the
// output contract.
func (a *App) scriptList() (string, error) {
	names, err := discovery.Scripts(a.scriptsDir)
	if err != nil {
		return "", err
	}
	registered := a.resolver.Registered()
	slices.Sort(registered)
	for _, name := range registered {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	maxLen := textfmt.Longest(names)

	descriptors, err := script.Collect(a.resolver, names)
	if err != nil {
		return "", err
	}
	if len(descriptors) == 0 {
		if card, rerr := issue.Get(issue.NoScriptsFoundId).Render("dark"); rerr == nil {
			fmt.Fprint(a.stderr, card)
		}
	}

	var b strings.Builder
	for _, d := range descriptors {
		for i, line := range textfmt.Wrap(d.Title, a.cfg.DocWidth) {
			name := ""
			if i == 0 {
				name = d.Name
			}
			fmt.Fprintf(&b, " %s\t%s\n", textfmt.Pad(name, maxLen), line)
		}
	}
	return b.String(), nil
}

// formatErrorForDisplay formats an error for user display, preferring the
// ActionableError presentation when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
