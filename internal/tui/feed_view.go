// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-feed/models"
)

const (
	maxTitleWidth = 40
	timeLayout    = "2006-01-02 15:04"
)

// RenderFeed lays posts out as a table followed by their descriptions, in
// the order given.
func RenderFeed(posts []models.Post) string {
	if len(posts) == 0 {
		return renderPage("FEED", "no posts yet", "post \"<title>\" \"<description>\" to write one")
	}

	titles := make([]string, len(posts))
	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(posts)))
	titleColWidth := lipgloss.Width("Title")
	authorColWidth := lipgloss.Width("Author")
	for i, p := range posts {
		titles[i] = fitText(p.Title, maxTitleWidth)
		titleColWidth = max(titleColWidth, lipgloss.Width(titles[i]))
		authorColWidth = max(authorColWidth, lipgloss.Width(p.Author))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s │ %s │ %s │ %s\n",
		idColWidth, "#",
		padRight("Title", titleColWidth),
		padRight("Author", authorColWidth),
		"Created")
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", titleColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", authorColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", len(timeLayout)))
	b.WriteString("\n")

	for i, p := range posts {
		fmt.Fprintf(&b, "%-*d │ %s │ %s │ %s\n",
			idColWidth, i+1,
			padRight(titles[i], titleColWidth),
			padRight(p.Author, authorColWidth),
			p.CreatedAt.Local().Format(timeLayout))
	}

	for i, p := range posts {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("%d. %s", i+1, p.Title)))
		b.WriteString("\n")
		b.WriteString(p.Description)
		b.WriteString("\n")
	}

	return renderPage(fmt.Sprintf("FEED (%d)", len(posts)), strings.TrimRight(b.String(), "\n"), "")
}

// RenderPostCreated confirms a published post.
func RenderPostCreated(post models.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", post.ID)
	fmt.Fprintf(&b, "Title: %s\n", post.Title)
	fmt.Fprintf(&b, "Author: %s\n", post.Author)
	fmt.Fprintf(&b, "Created: %s", post.CreatedAt.Local().Format(timeLayout))

	return renderPage("POST CREATED", b.String(), "")
}

// padRight pads by display width so multi-byte titles stay aligned.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
