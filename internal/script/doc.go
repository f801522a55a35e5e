// SPDX-License-Identifier: MPL-2.0

package script

import "strings"

// docDelimiter separates a documentation string's one-line title from the
// rest of the manual text.
const docDelimiter = "==="

// ExtractTitle returns the portion of a documentation string before the
// first "===" delimiter, with at most one leading and one trailing newline
// stripped. The input may be empty; the result may be too.
func ExtractTitle(doc string) string {
	title, _, _ := strings.Cut(doc, docDelimiter)
	if title == "" {
		return title
	}
	title = strings.TrimPrefix(title, "\n")
	title = strings.TrimSuffix(title, "\n")
	return title
}
