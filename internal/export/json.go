// Package export renders store snapshots as JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/todo"
)

// Record is the JSON shape of one entry.
type Record struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Priority uint16 `json:"priority"`
}

// Records flattens entries, keeping their order.
func Records(entries []todo.Entry) []Record {
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, Record{ID: e.ID, Title: e.Title(), Priority: e.Priority})
	}
	return out
}

// Write encodes entries to w as an indented JSON array.
func Write(w io.Writer, entries []todo.Entry) error {
	b, err := json.MarshalIndent(Records(entries), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
