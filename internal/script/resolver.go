// SPDX-License-Identifier: MPL-2.0

package script

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Resolver turns script names into Scripts. Lookup order: the compiled-in
// registry, then "<name>.go", "<name>.sh", and finally the "<name>/"
// folder's main.go or main.sh, all relative to the scripts directory.
// Resolved scripts are cached for the life of the resolver, so repeated
// resolutions of a name reuse the already-loaded unit.
type Resolver struct {
	dir      string
	registry *Registry
	cache    map[string]Script
}

// NewResolver creates a resolver over the given scripts directory. A nil
// registry is replaced with an empty one.
func NewResolver(dir string, registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		dir:      dir,
		registry: registry,
		cache:    make(map[string]Script),
	}
}

// Registered returns the names of the compiled-in scripts, in unspecified
// order. These resolve without touching the scripts directory.
func (r *Resolver) Registered() []string {
	return r.registry.Names()
}

// Resolve returns the script for name. It reports ErrNotFound when no
// registry entry, script file, or script folder matches; any other load
// failure is returned as-is and is not cached.
func (r *Resolver) Resolve(name string) (Script, error) {
	if s, ok := r.cache[name]; ok {
		return s, nil
	}
	s, err := r.load(name)
	if err != nil {
		return nil, err
	}
	r.cache[name] = s
	return s, nil
}

func (r *Resolver) load(name string) (Script, error) {
	if s, ok := r.registry.Lookup(name); ok {
		log.Debug("resolved script from registry", "name", name)
		return s, nil
	}

	if path := filepath.Join(r.dir, name+".go"); isRegularFile(path) {
		log.Debug("resolved Go script", "name", name, "path", path)
		return newGoScript(path)
	}
	if path := filepath.Join(r.dir, name+".sh"); isRegularFile(path) {
		log.Debug("resolved shell script", "name", name, "path", path)
		return newShellScript(path)
	}

	if dir := filepath.Join(r.dir, name); isDir(dir) {
		if path := filepath.Join(dir, "main.go"); isRegularFile(path) {
			log.Debug("resolved Go script folder", "name", name, "path", path)
			return newGoScript(path)
		}
		if path := filepath.Join(dir, "main.sh"); isRegularFile(path) {
			log.Debug("resolved shell script folder", "name", name, "path", path)
			return newShellScript(path)
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
