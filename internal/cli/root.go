// SPDX-License-Identifier: MPL-2.0

// Package cli contains the may command-line layer: the Cobra root command
// and the App composition root the dispatcher branches run through.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"may-cli/internal/script"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// newRootCmd builds the root command. Flag parsing is disabled so the raw
// argument list reaches the dispatcher verbatim; anything after "may" is a
// script name and its arguments, never a flag of may itself.
func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "may [script] [args...]",
		Short: "A generic script dispatcher",
		Long: TitleStyle.Render("may") + SubtitleStyle.Render(" - a generic script dispatcher") + `

may is a generic script manager that acts as a controller of scripts of
different kinds. Scripts are Go or shell files (or script folders) sitting
in the scripts directory; may lists them with their doc titles and forwards
invocation arguments to the chosen script's entry point.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Dispatch(args)
		},
	}
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the root command. This is
// called by main.main(). A script's non-zero exit status becomes the
// process exit code; every other error exits 1.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, false))
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		newRootCmd(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *script.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
