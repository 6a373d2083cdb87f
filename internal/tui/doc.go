// Package tui implements the interactive configuration browser behind
// "confspect browse": a bubbletea application with a filterable list of
// known applications and a detail view rendering each application's
// resolved configuration files.
package tui
