// Package tui renders the command line client's output.
//
// Every view is a pure function returning a string, styled with lipgloss.
// Styles degrade to plain text when stdout is not a terminal.
package tui
