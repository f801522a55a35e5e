// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestMarkdownMsg(t *testing.T) {
	tests := []struct {
		id   Id
		want string
	}{
		{NoScriptsFoundId, "No scripts found!"},
		{ConfigLoadFailedId, "Configuration could not be loaded!"},
	}

	for _, tt := range tests {
		issue := Get(tt.id)
		if issue == nil {
			t.Fatalf("Get(%d) = nil", tt.id)
		}
		if !strings.Contains(string(issue.MarkdownMsg()), tt.want) {
			t.Errorf("MarkdownMsg for id %d missing %q", tt.id, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	card, err := Get(NoScriptsFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(card, "No scripts found") {
		t.Errorf("rendered card missing heading:\n%s", card)
	}
	if !strings.Contains(card, "scripts_dir") {
		t.Errorf("rendered card missing suggestion body:\n%s", card)
	}
}
