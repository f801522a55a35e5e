// SPDX-License-Identifier: MPL-2.0

// may is a generic script dispatcher: it discovers scripts next to itself,
// shows a generated help listing, and forwards arguments to a chosen
// script's entry point.
package main

import "may-cli/internal/cli"

func main() {
	cli.Execute()
}
