// SPDX-License-Identifier: MPL-2.0

// Package script resolves string names to loadable script units and invokes
// them. A script exposes an optional documentation string and a Main entry
// point; where it comes from (compiled-in registry, interpreted Go file,
// shell file, or script folder) is hidden behind the Script interface.
package script

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a name does not correspond to any loadable script.
// It is the only resolution failure callers are expected to recover from.
var ErrNotFound = errors.New("script not found")

// Script is a loadable unit addressable by name.
type Script interface {
	// Doc returns the script's raw documentation string, empty when the
	// script carries none.
	Doc() string
	// Main runs the script's entry point with the forwarded arguments.
	Main(args []string) error
}

// ExitError signals that a script terminated with a non-zero exit status.
// The CLI layer maps it to the process exit code.
type ExitError struct {
	Code int
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Func is a compiled-in Script backed by a plain function. It is how
// built-in scripts register themselves and how tests stub loadable units.
type Func struct {
	// DocText is the raw documentation string, may be empty.
	DocText string
	// Run is the entry point. A nil Run makes Main a no-op.
	Run func(args []string) error
}

// Doc implements Script.
func (f *Func) Doc() string { return f.DocText }

// Main implements Script.
func (f *Func) Main(args []string) error {
	if f.Run == nil {
		return nil
	}
	return f.Run(args)
}

// Registry maps names to compiled-in scripts. It takes precedence over
// filesystem resolution, so a registered name shadows a script file of the
// same name.
type Registry struct {
	scripts map[string]Script
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{scripts: make(map[string]Script)}
}

// Register binds a name to a script, replacing any previous binding.
func (r *Registry) Register(name string, s Script) {
	r.scripts[name] = s
}

// Lookup returns the script registered under name, if any.
func (r *Registry) Lookup(name string) (Script, bool) {
	s, ok := r.scripts[name]
	return s, ok
}

// Names returns the registered names in unspecified order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	return names
}
