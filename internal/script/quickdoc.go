// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Descriptor pairs a script name with its extracted one-line doc title.
type Descriptor struct {
	Name  string
	Title string
}

// Collect resolves each name and pairs it with its doc title. Names that
// fail to resolve with ErrNotFound are skipped silently, keeping the listing
// best-effort; any other load failure aborts the whole collection. Output
// order matches input order minus skipped entries.
func Collect(r *Resolver, names []string) ([]Descriptor, error) {
	var descriptors []Descriptor
	for _, name := range names {
		s, err := r.Resolve(name)
		if errors.Is(err, ErrNotFound) {
			log.Debug("skipping unloadable script", "name", name)
			continue
		}
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, Descriptor{
			Name:  name,
			Title: ExtractTitle(s.Doc()),
		})
	}
	return descriptors, nil
}
