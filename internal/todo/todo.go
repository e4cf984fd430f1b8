// Package todo is the in-memory ordered todo store.
//
// A Store keeps its entries sorted by title so lookups are a binary search.
// Priority is a plain field on each entry; it never decides where an entry
// sits in the sequence.
package todo

import "strings"

// Todo is the value stored in an entry.
type Todo struct {
	Title string `json:"title"`
}

// Entry pairs a todo with its priority. ID is assigned at Add and stays
// with the entry through title and priority updates.
type Entry struct {
	ID       string `json:"id"`
	Priority uint16 `json:"priority"`
	Todo     Todo   `json:"todo"`
}

// Title is shorthand for e.Todo.Title.
func (e Entry) Title() string { return e.Todo.Title }

// UpdateKind selects which field Update changes.
type UpdateKind int

const (
	UpdateTitle UpdateKind = iota
	UpdatePriority
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateTitle:
		return "title"
	case UpdatePriority:
		return "priority"
	}
	return "unknown"
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}
