// SPDX-License-Identifier: MPL-2.0

package script

import (
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// goScript is a Go source file interpreted at runtime with yaegi. The file
// is a "package main" that may define a package-level Doc string and a
// Main(args []string) error function. Top-level code runs once at load time,
// mirroring import semantics.
type goScript struct {
	path string
	doc  string
	intp *interp.Interpreter
}

// newGoScript evaluates the file at path and captures its Doc value. A
// missing Doc symbol is an empty documentation string; an unreadable or
// invalid file is a load failure distinct from ErrNotFound.
func newGoScript(path string) (*goScript, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load interpreter stdlib: %w", err)
	}
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("evaluate script %s: %w", path, err)
	}

	doc := ""
	if v, err := i.Eval("main.Doc"); err == nil {
		s, ok := v.Interface().(string)
		if !ok {
			return nil, fmt.Errorf("script %s: Doc is %T, want string", path, v.Interface())
		}
		doc = s
	}

	return &goScript{path: path, doc: doc, intp: i}, nil
}

// Doc implements Script.
func (g *goScript) Doc() string { return g.doc }

// Main implements Script. The entry point is looked up lazily so that a
// doc-only script can still appear in the listing; invoking a script that
// defines no Main is an error that propagates.
func (g *goScript) Main(args []string) error {
	v, err := g.intp.Eval("main.Main")
	if err != nil {
		return fmt.Errorf("script %s has no Main: %w", g.path, err)
	}
	entry, ok := v.Interface().(func(args []string) error)
	if !ok {
		return fmt.Errorf("script %s: Main is %T, want func([]string) error", g.path, v.Interface())
	}
	return entry(args)
}
