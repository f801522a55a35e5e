// SPDX-License-Identifier: MPL-2.0

package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// shellScript is a shell source file executed with the mvdan/sh interpreter.
// Its documentation is the leading "#" comment block of the file, with the
// comment markers stripped.
type shellScript struct {
	path string
	doc  string
}

// newShellScript reads the file at path and extracts its documentation.
func newShellScript(path string) (*shellScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return &shellScript{path: path, doc: shellDoc(string(src))}, nil
}

// shellDoc collects the leading comment block of a shell source, skipping a
// shebang line. Each comment line loses its "#" marker and one following
// space; the block ends at the first non-comment line.
func shellDoc(src string) string {
	var docLines []string
	for i, line := range strings.Split(src, "\n") {
		if i == 0 && strings.HasPrefix(line, "#!") {
			continue
		}
		if !strings.HasPrefix(line, "#") {
			break
		}
		line = strings.TrimPrefix(line, "#")
		line = strings.TrimPrefix(line, " ")
		docLines = append(docLines, line)
	}
	return strings.Join(docLines, "\n")
}

// Doc implements Script.
func (s *shellScript) Doc() string { return s.doc }

// Main implements Script. Arguments become the script's positional
// parameters; a non-zero exit status is reported as *ExitError.
func (s *shellScript) Main(args []string) error {
	src, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read script %s: %w", s.path, err)
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(string(src)), s.path)
	if err != nil {
		return fmt.Errorf("parse script %s: %w", s.path, err)
	}

	opts := []interp.RunnerOption{
		interp.Dir(filepath.Dir(s.path)),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(os.Stdin, os.Stdout, os.Stderr),
	}
	// Prepend "--" so arguments that look like shell options ("-v",
	// "--env=staging") reach the script as positional parameters.
	if len(args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, args...)...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	if err := runner.Run(context.Background(), prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return &ExitError{Code: int(status)}
		}
		return fmt.Errorf("script %s failed: %w", s.path, err)
	}
	return nil
}
