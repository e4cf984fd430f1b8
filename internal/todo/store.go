package todo

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Store is an ordered collection of entries keyed by title.
// It is not safe for concurrent use.
type Store struct {
	entries   []Entry
	nextIndex uint16
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: []Entry{}}
}

// Clear drops every entry and resets the insertion counter.
func (s *Store) Clear() {
	s.entries = s.entries[:0]
	s.nextIndex = 0
}

// Len reports the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// NextIndex is the priority the next Add will assign.
func (s *Store) NextIndex() uint16 { return s.nextIndex }

// Add stores t with priority set to the insertion counter and returns the
// new entry. The entry is placed at its sorted position by title.
func (s *Store) Add(t Todo) (Entry, error) {
	title, err := normalizeTitle(t.Title)
	if err != nil {
		return Entry{}, err
	}
	if s.nextIndex == math.MaxUint16 {
		return Entry{}, fmt.Errorf("%w: insertion counter exhausted at %d", ErrOutOfRange, s.nextIndex)
	}
	i, found := s.search(title)
	if found {
		return Entry{}, fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}

	e := Entry{
		ID:       uuid.NewString(),
		Priority: s.nextIndex,
		Todo:     Todo{Title: title},
	}
	s.entries = slices.Insert(s.entries, i, e)
	s.nextIndex++
	return e, nil
}

// Find returns the index of the entry titled title.
func (s *Store) Find(title string) (int, bool) {
	i, found := s.search(title)
	if !found {
		return -1, false
	}
	return i, true
}

// search is a binary search over entries with right as an exclusive bound.
// When title is absent it returns the index where title would be inserted.
func (s *Store) search(title string) (int, bool) {
	left, right := 0, len(s.entries)
	for left < right {
		mid := left + (right-left)/2
		switch cur := s.entries[mid].Todo.Title; {
		case cur == title:
			return mid, true
		case cur < title:
			left = mid + 1
		default:
			right = mid
		}
	}
	return left, false
}

func (s *Store) lookup(title string) (int, error) {
	i, ok := s.Find(title)
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return i, nil
}

// Get returns a copy of the entry titled title.
func (s *Store) Get(title string) (Entry, error) {
	i, err := s.lookup(title)
	if err != nil {
		return Entry{}, err
	}
	return s.entries[i], nil
}

// At returns a copy of the entry at index i in title order.
func (s *Store) At(i int) (Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, fmt.Errorf("%w: index %d, have %d entries", ErrOutOfRange, i, len(s.entries))
	}
	return s.entries[i], nil
}

// Update applies a title or priority change to the entry titled target.
// newTitle is used only for UpdateTitle, newPriority only for UpdatePriority.
func (s *Store) Update(kind UpdateKind, target, newTitle string, newPriority uint16) error {
	switch kind {
	case UpdateTitle:
		return s.UpdateTitle(target, newTitle)
	case UpdatePriority:
		return s.UpdatePriority(target, newPriority)
	}
	return fmt.Errorf("unknown update kind %d", int(kind))
}

// UpdateTitle renames the entry titled target and moves it to its new
// sorted position. ID and priority are kept.
func (s *Store) UpdateTitle(target, newTitle string) error {
	i, err := s.lookup(target)
	if err != nil {
		return err
	}
	title, err := normalizeTitle(newTitle)
	if err != nil {
		return err
	}
	if title == target {
		return nil
	}
	if _, taken := s.search(title); taken {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}

	e := s.entries[i]
	e.Todo.Title = title
	s.entries = slices.Delete(s.entries, i, i+1)
	j, _ := s.search(title)
	s.entries = slices.Insert(s.entries, j, e)
	return nil
}

// UpdatePriority sets the priority field of the entry titled target.
// p must be below Len. Entries are not reordered.
func (s *Store) UpdatePriority(target string, p uint16) error {
	i, err := s.lookup(target)
	if err != nil {
		return err
	}
	if int(p) >= len(s.entries) {
		return fmt.Errorf("%w: priority %d, have %d entries", ErrOutOfRange, p, len(s.entries))
	}
	s.entries[i].Priority = p
	return nil
}

// Remove deletes the entry titled title and returns it.
func (s *Store) Remove(title string) (Entry, error) {
	i, err := s.lookup(title)
	if err != nil {
		return Entry{}, err
	}
	removed := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	return removed, nil
}

// Entries returns a copy of all entries in title order.
func (s *Store) Entries() []Entry {
	return slices.Clone(s.entries)
}

// ByPriority returns a copy of all entries ordered by priority.
// Entries sharing a priority stay in title order.
func (s *Store) ByPriority() []Entry {
	out := slices.Clone(s.entries)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Priority < out[b].Priority
	})
	return out
}
