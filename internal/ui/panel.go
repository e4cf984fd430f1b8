package ui

import (
	"fmt"
	"strings"
)

// PanelString draws a framed box around inner using the current theme.
func PanelString(inner string) string {
	return renderer.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(strings.Join(lines, "\n")))
}

// Header is the title line shown above a listing.
func Header(count int, next uint16) string {
	return fmt.Sprintf("%s  %s %d  %s %d",
		current.Title.Render("Todos"),
		current.Accent.Render("Total"), count,
		current.Muted.Render("Next priority"), next,
	)
}
