package cli

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

func ordered(s *todo.Store, order string) []todo.Entry {
	if order == "priority" {
		return s.ByPriority()
	}
	return s.Entries()
}

// listLines renders the store as panel rows. The index column is the
// entry's position in title order, the one find reports.
func listLines(s *todo.Store, order string) []string {
	t := ui.Current()
	lines := []string{ui.Header(s.Len(), s.NextIndex()), ""}

	entries := ordered(s, order)
	if len(entries) == 0 {
		return append(lines, t.Muted.Render("no todos"))
	}
	for _, e := range entries {
		idx, _ := s.Find(e.Title())
		title := e.Title()
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", idx)),
			t.Bullet,
			t.Priority.Render(fmt.Sprintf("p%-3d", e.Priority)),
			title))
	}
	return lines
}
