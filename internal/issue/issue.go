// SPDX-License-Identifier: EPL-2.0

package issue

import "github.com/charmbracelet/glamour"

type Id int

const (
	NoScriptsFoundId Id = iota + 1
	ConfigLoadFailedId
)

type MarkdownMsg string

// Issue is a known user-facing situation with a markdown explanation that is
// rendered to the terminal.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render returns the issue's markdown rendered with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	noScriptsFoundIssue = &Issue{
		id: NoScriptsFoundId,
		mdMsg: `
# No scripts found!

The scripts directory has no loadable scripts in it.

## Things you can try
- Drop a ` + "`<name>.go`" + ` or ` + "`<name>.sh`" + ` script (or a script
  folder with a ` + "`main.go`" + `/` + "`main.sh`" + ` inside) next to the dispatcher
- Point ` + "`scripts_dir`" + ` in the config file at the directory that holds
  your scripts`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

The config file exists but could not be read or decoded, so built-in
defaults are in effect for this run.

## Things you can try
- Check the file's YAML syntax
- Move the file aside to confirm defaults work, then reintroduce keys one
  at a time`,
	}

	issues = map[Id]*Issue{
		NoScriptsFoundId:   noScriptsFoundIssue,
		ConfigLoadFailedId: configLoadFailedIssue,
	}
)

// Get returns the issue registered under id, nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}
