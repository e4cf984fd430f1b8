package todo

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
)

func mustAdd(t *testing.T, s *Store, titles ...string) {
	t.Helper()
	for _, title := range titles {
		if _, err := s.Add(Todo{Title: title}); err != nil {
			t.Fatalf("Add(%q) failed: %v", title, err)
		}
	}
}

func titles(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title())
	}
	return out
}

func TestAddKeepsTitleOrder(t *testing.T) {
	s := New()
	mustAdd(t, s, "Play Game", "Eat Dinner", "Walk Dog", "Buy Milk")

	want := []string{"Buy Milk", "Eat Dinner", "Play Game", "Walk Dog"}
	if got := titles(s.Entries()); !slices.Equal(got, want) {
		t.Errorf("Entries: got %v, want %v", got, want)
	}
	if s.NextIndex() != 4 {
		t.Errorf("NextIndex: got %d, want 4", s.NextIndex())
	}

	e, err := s.Get("Play Game")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Priority != 0 {
		t.Errorf("Priority: got %d, want 0", e.Priority)
	}
	if e.ID == "" {
		t.Error("expected entry ID to be set")
	}
}

func TestAddRejectsInvalidTitles(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "empty", title: "", wantErr: ErrEmptyTitle},
		{name: "blank", title: "   ", wantErr: ErrEmptyTitle},
		{name: "duplicate", title: "Eat Dinner", wantErr: ErrDuplicateTitle},
		{name: "duplicate after trim", title: "  Eat Dinner ", wantErr: ErrDuplicateTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			mustAdd(t, s, "Eat Dinner")

			_, err := s.Add(Todo{Title: tt.title})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add(%q): got %v, want %v", tt.title, err, tt.wantErr)
			}
			if s.Len() != 1 {
				t.Errorf("Len: got %d, want 1", s.Len())
			}
			if s.NextIndex() != 1 {
				t.Errorf("NextIndex: got %d, want 1", s.NextIndex())
			}
		})
	}
}

func TestAddCounterExhausted(t *testing.T) {
	s := New()
	s.nextIndex = math.MaxUint16

	_, err := s.Add(Todo{Title: "One too many"})
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("got %v, want ErrOutOfRange", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
}

func TestFind(t *testing.T) {
	inserted := []string{"m", "c", "x", "a", "q", "f", "z", "b"}
	s := New()
	mustAdd(t, s, inserted...)

	entries := s.Entries()
	for _, title := range inserted {
		i, ok := s.Find(title)
		if !ok {
			t.Errorf("Find(%q): not found", title)
			continue
		}
		if entries[i].Title() != title {
			t.Errorf("Find(%q): index %d holds %q", title, i, entries[i].Title())
		}
	}

	for _, title := range []string{"", "0", "d", "n", "zz", "M"} {
		if i, ok := s.Find(title); ok {
			t.Errorf("Find(%q): got index %d, want not found", title, i)
		}
	}
}

func TestFindEmptyStore(t *testing.T) {
	s := New()
	for _, title := range []string{"", "a", "Eat Dinner"} {
		if i, ok := s.Find(title); ok || i != -1 {
			t.Errorf("Find(%q) on empty store: got (%d, %v), want (-1, false)", title, i, ok)
		}
	}
}

func TestFindSizes(t *testing.T) {
	// odd and even lengths exercise both halves of the search
	for n := 1; n <= 9; n++ {
		s := New()
		for i := 0; i < n; i++ {
			mustAdd(t, s, fmt.Sprintf("item-%02d", i*2))
		}
		for i := 0; i < n; i++ {
			if idx, ok := s.Find(fmt.Sprintf("item-%02d", i*2)); !ok || idx != i {
				t.Errorf("n=%d: Find(item-%02d): got (%d, %v), want (%d, true)", n, i*2, idx, ok, i)
			}
			if _, ok := s.Find(fmt.Sprintf("item-%02d", i*2+1)); ok {
				t.Errorf("n=%d: Find(item-%02d): want not found", n, i*2+1)
			}
		}
	}
}

func TestUpdateTitle(t *testing.T) {
	s := New()
	mustAdd(t, s, "Eat Dinner", "Play Game")
	before, _ := s.Get("Eat Dinner")

	if err := s.UpdateTitle("Eat Dinner", "Wash Dishes"); err != nil {
		t.Fatalf("UpdateTitle failed: %v", err)
	}
	if _, ok := s.Find("Eat Dinner"); ok {
		t.Error("old title still found")
	}
	after, err := s.Get("Wash Dishes")
	if err != nil {
		t.Fatalf("Get(new title) failed: %v", err)
	}
	if after.ID != before.ID || after.Priority != before.Priority {
		t.Errorf("entry identity changed: before %+v, after %+v", before, after)
	}

	want := []string{"Play Game", "Wash Dishes"}
	if got := titles(s.Entries()); !slices.Equal(got, want) {
		t.Errorf("Entries: got %v, want %v", got, want)
	}
}

func TestUpdateTitleErrors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		newTitle string
		wantErr  error
	}{
		{name: "missing target", target: "Sleep", newTitle: "Nap", wantErr: ErrNotFound},
		{name: "taken title", target: "Eat Dinner", newTitle: "Play Game", wantErr: ErrDuplicateTitle},
		{name: "blank title", target: "Eat Dinner", newTitle: " ", wantErr: ErrEmptyTitle},
		{name: "same title", target: "Eat Dinner", newTitle: "Eat Dinner", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			mustAdd(t, s, "Eat Dinner", "Play Game")

			err := s.UpdateTitle(tt.target, tt.newTitle)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}

			want := []string{"Eat Dinner", "Play Game"}
			if got := titles(s.Entries()); !slices.Equal(got, want) {
				t.Errorf("Entries: got %v, want %v", got, want)
			}
		})
	}
}

func TestUpdatePriority(t *testing.T) {
	s := New()
	mustAdd(t, s, "Eat Dinner", "Play Game", "Walk Dog")

	if err := s.UpdatePriority("Eat Dinner", 2); err != nil {
		t.Fatalf("UpdatePriority failed: %v", err)
	}
	e, err := s.Get("Eat Dinner")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Priority != 2 {
		t.Errorf("Priority: got %d, want 2", e.Priority)
	}

	// priority is a field; the sequence stays in title order
	want := []string{"Eat Dinner", "Play Game", "Walk Dog"}
	if got := titles(s.Entries()); !slices.Equal(got, want) {
		t.Errorf("Entries: got %v, want %v", got, want)
	}
}

func TestUpdatePriorityErrors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		priority uint16
		wantErr  error
	}{
		{name: "missing target", target: "Sleep", priority: 0, wantErr: ErrNotFound},
		{name: "equal to length", target: "Eat Dinner", priority: 2, wantErr: ErrOutOfRange},
		{name: "far out of range", target: "Eat Dinner", priority: math.MaxUint16, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			mustAdd(t, s, "Eat Dinner", "Play Game")

			err := s.UpdatePriority(tt.target, tt.priority)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
			e, _ := s.Get("Eat Dinner")
			if e.Priority != 0 {
				t.Errorf("Priority changed on error: got %d, want 0", e.Priority)
			}
		})
	}
}

func TestUpdateDispatch(t *testing.T) {
	s := New()
	mustAdd(t, s, "Eat Dinner", "Play Game")

	if err := s.Update(UpdatePriority, "Play Game", "ignored", 0); err != nil {
		t.Fatalf("Update(priority) failed: %v", err)
	}
	if err := s.Update(UpdateTitle, "Play Game", "Play Chess", 1); err != nil {
		t.Fatalf("Update(title) failed: %v", err)
	}
	e, err := s.Get("Play Chess")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Priority != 0 {
		t.Errorf("Priority: got %d, want 0", e.Priority)
	}
	if err := s.Update(UpdateKind(9), "Play Chess", "", 0); err == nil {
		t.Error("expected error for unknown update kind")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	mustAdd(t, s, "a", "b", "c")

	removed, err := s.Remove("b")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed.Title() != "b" {
		t.Errorf("removed: got %q, want %q", removed.Title(), "b")
	}
	if s.Len() != 2 {
		t.Errorf("Len: got %d, want 2", s.Len())
	}
	if _, ok := s.Find("b"); ok {
		t.Error("removed title still found")
	}
	if _, err := s.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove: got %v, want ErrNotFound", err)
	}
	if s.NextIndex() != 3 {
		t.Errorf("NextIndex: got %d, want 3", s.NextIndex())
	}
}

func TestRemoveFromEmptyStore(t *testing.T) {
	if _, err := New().Remove("anything"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestClear(t *testing.T) {
	s := New()
	mustAdd(t, s, "a", "b")
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
	if s.NextIndex() != 0 {
		t.Errorf("NextIndex: got %d, want 0", s.NextIndex())
	}
	mustAdd(t, s, "c")
	if e, _ := s.Get("c"); e.Priority != 0 {
		t.Errorf("Priority after Clear: got %d, want 0", e.Priority)
	}
}

func TestAt(t *testing.T) {
	s := New()
	mustAdd(t, s, "b", "a")

	e, err := s.At(0)
	if err != nil {
		t.Fatalf("At(0) failed: %v", err)
	}
	if e.Title() != "a" {
		t.Errorf("At(0): got %q, want %q", e.Title(), "a")
	}
	for _, i := range []int{-1, 2} {
		if _, err := s.At(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d): got %v, want ErrOutOfRange", i, err)
		}
	}
}

func TestByPriority(t *testing.T) {
	s := New()
	mustAdd(t, s, "c", "a", "b")
	// c=0 a=1 b=2
	if err := s.UpdatePriority("b", 0); err != nil {
		t.Fatal(err)
	}

	want := []string{"b", "c", "a"}
	if got := titles(s.ByPriority()); !slices.Equal(got, want) {
		t.Errorf("ByPriority: got %v, want %v", got, want)
	}
	// the backing order is untouched
	if got := titles(s.Entries()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Entries: got %v", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := New()
	mustAdd(t, s, "a")
	entries := s.Entries()
	entries[0].Todo.Title = "mutated"

	if _, ok := s.Find("a"); !ok {
		t.Error("mutating Entries result changed the store")
	}
}

func TestScenario(t *testing.T) {
	s := New()
	mustAdd(t, s, "Eat Dinner", "Play Game")

	eat, ok := s.Find("Eat Dinner")
	if !ok {
		t.Fatal("Eat Dinner not found")
	}
	play, ok := s.Find("Play Game")
	if !ok {
		t.Fatal("Play Game not found")
	}
	if eat >= play {
		t.Errorf("expected Eat Dinner (%d) before Play Game (%d)", eat, play)
	}

	if err := s.UpdatePriority("Eat Dinner", 1); err != nil {
		t.Fatalf("UpdatePriority failed: %v", err)
	}
	i, ok := s.Find("Eat Dinner")
	if !ok {
		t.Fatal("Eat Dinner not found after priority update")
	}
	e, _ := s.At(i)
	if e.Priority != 1 {
		t.Errorf("Priority: got %d, want 1", e.Priority)
	}

	if _, err := s.Remove("Eat Dinner"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := titles(s.Entries()); !slices.Equal(got, []string{"Play Game"}) {
		t.Errorf("Entries: got %v, want [Play Game]", got)
	}
}

func TestUpdateKindString(t *testing.T) {
	if UpdateTitle.String() != "title" || UpdatePriority.String() != "priority" {
		t.Errorf("unexpected names: %s, %s", UpdateTitle, UpdatePriority)
	}
	if UpdateKind(7).String() != "unknown" {
		t.Errorf("got %s, want unknown", UpdateKind(7))
	}
}
