// SPDX-License-Identifier: MPL-2.0

// Package discovery enumerates candidate script names in a scripts
// directory. It only records candidates — whether a name actually resolves
// to a loadable script is checked lazily by the resolver.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
)

const (
	// launcherName and launcherNameWindows are the dispatcher's own binary
	// names, excluded from enumeration when it sits in the scripts directory.
	launcherName        = "may"
	launcherNameWindows = "may.exe"
	// cacheDirName is the dispatcher's cache directory, never a script.
	cacheDirName = ".maycache"
)

// scriptExts are the recognized script file extensions, in resolution order.
var scriptExts = []string{".go", ".sh"}

// Scripts lists candidate script names in dir: the stem of every regular
// file with a recognized script extension, and the full name of every
// directory. The launcher's own artifacts are always excluded. Order follows
// the directory listing; loadability is not verified.
func Scripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list scripts directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name == launcherName || name == launcherNameWindows || name == cacheDirName {
			continue
		}
		if entry.IsDir() {
			names = append(names, name)
			continue
		}
		ext := filepath.Ext(name)
		if slices.Contains(scriptExts, ext) {
			names = append(names, name[:len(name)-len(ext)])
		} else {
			log.Debug("ignoring non-script file", "name", name)
		}
	}
	return names, nil
}
