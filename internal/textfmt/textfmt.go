// SPDX-License-Identifier: MPL-2.0

// Package textfmt provides the plain-text layout helpers used by the help
// listing: greedy word wrapping, right padding, and column sizing.
package textfmt

import "strings"

// Wrap splits text on single spaces into lines shorter than width. A line
// accepts another word only while the candidate stays strictly below width;
// a single word at or beyond width becomes its own line, never split.
// Empty input yields exactly one empty line.
func Wrap(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if len(candidate) < width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// Pad right-pads text with spaces to width. Text already at or beyond width
// is returned unchanged, never truncated.
func Pad(text string, width int) string {
	if len(text) < width {
		return text + strings.Repeat(" ", width-len(text))
	}
	return text
}

// Longest returns the length of the longest string in names, 0 when empty.
func Longest(names []string) int {
	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	return maxLen
}
