// Package tui is the interactive list view over a todo.Store.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Order values accepted by Options.Order.
const (
	OrderTitle    = "title"
	OrderPriority = "priority"
)

// Options tune the interactive view.
type Options struct {
	Order  string // initial order: title | priority
	Logger *log.Logger
}

type mode int

const (
	browsing mode = iota
	adding
	editing
	prioritizing
)

// listItem adapts a todo.Entry to bubbles/list.Item
type listItem struct {
	entry todo.Entry
}

func (i listItem) Title() string       { return i.entry.Title() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.entry.Title() }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	badge := t.Priority.Render(fmt.Sprintf("p%-3d", it.entry.Priority))
	title := it.entry.Title()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(t.Cursor)
		title = t.Selected.Render(title)
	}
	fmt.Fprintln(w, prefix+badge+" "+title)
}

var (
	addBind      = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind     = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	priorityBind = key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority"))
	deleteBind   = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind     = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	orderBind    = key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order"))
)

// Model is the Bubble Tea model. Every change goes through the store.
type Model struct {
	store *todo.Store
	log   *log.Logger

	list  list.Model
	order string

	mode   mode
	ti     textinput.Model // shared text input (add, edit, priority)
	target string          // title being edited or reprioritized

	status    string
	statusErr bool

	// Undo support (single-level)
	undo *todo.Entry

	changes int
}

// New builds a model over s.
func New(s *todo.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	order := opts.Order
	if order != OrderPriority {
		order = OrderTitle
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	binds := func() []key.Binding {
		return []key.Binding{addBind, editBind, priorityBind, deleteBind, undoBind, orderBind}
	}
	l.AdditionalShortHelpKeys = binds
	l.AdditionalFullHelpKeys = binds

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		store: s,
		log:   logger,
		list:  l,
		order: order,
		ti:    ti,
	}
	m.refresh("")
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
// It returns how many changes were applied to the store.
func Run(s *todo.Store, opts Options) (int, error) {
	p := tea.NewProgram(New(s, opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	fm, ok := final.(Model)
	if !ok {
		return 0, nil
	}
	return fm.changes, nil
}

// refresh reloads list items from the store and keeps the cursor on the
// entry with the given ID when it is still present.
func (m *Model) refresh(keepID string) {
	entries := m.store.Entries()
	if m.order == OrderPriority {
		entries = m.store.ByPriority()
	}
	items := make([]list.Item, 0, len(entries))
	cursor := -1
	for i, e := range entries {
		items = append(items, listItem{entry: e})
		if keepID != "" && e.ID == keepID {
			cursor = i
		}
	}
	m.list.SetItems(items)
	if cursor >= 0 {
		m.list.Select(cursor)
	} else if idx := m.list.Index(); idx >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
	m.list.Title = ui.Header(m.store.Len(), m.store.NextIndex()) + "  " +
		ui.Current().Muted.Render("by "+m.order)
}

func (m *Model) selected() (todo.Entry, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return todo.Entry{}, false
	}
	return it.entry, true
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m *Model) fail(op string, err error) {
	m.log.Error("tui operation failed", "op", op, "err", err)
	m.setStatus(describe(err), true)
}

func (m *Model) applied(op, title string) {
	m.changes++
	m.log.Debug("tui operation applied", "op", op, "title", title)
}

func (m *Model) startInput(md mode, value, placeholder string) {
	m.mode = md
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Placeholder = placeholder
	m.ti.Focus()
	m.setStatus("", false)
}

func (m *Model) stopInput() {
	m.mode = browsing
	m.target = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// Update and View implement Bubble Tea's Model
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	if m.mode != browsing {
		return m.updateInput(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch kmsg.String() {
	case "q", "esc":
		if m.list.FilterState() == list.FilterApplied {
			break
		}
		return m, tea.Quit
	case "a":
		m.startInput(adding, "", "New todo title...")
		return m, nil
	case "e":
		if e, ok := m.selected(); ok {
			m.target = e.Title()
			m.startInput(editing, e.Title(), "Edit todo title...")
		}
		return m, nil
	case "p":
		if e, ok := m.selected(); ok {
			m.target = e.Title()
			m.startInput(prioritizing, strconv.Itoa(int(e.Priority)),
				fmt.Sprintf("Priority 0-%d...", m.store.Len()-1))
		}
		return m, nil
	case "d":
		if e, ok := m.selected(); ok {
			removed, err := m.store.Remove(e.Title())
			if err != nil {
				m.fail("remove", err)
				return m, nil
			}
			m.undo = &removed
			m.applied("remove", removed.Title())
			m.setStatus("removed "+removed.Title(), false)
			m.refresh("")
		}
		return m, nil
	case "u":
		if m.undo != nil {
			m.restore(*m.undo)
			m.undo = nil
		}
		return m, nil
	case "o":
		keep := ""
		if e, ok := m.selected(); ok {
			keep = e.ID
		}
		if m.order == OrderTitle {
			m.order = OrderPriority
		} else {
			m.order = OrderTitle
		}
		m.refresh(keep)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// restore re-adds a removed entry. It gets a fresh ID and counter slot;
// its old priority is reapplied when still in range.
func (m *Model) restore(e todo.Entry) {
	added, err := m.store.Add(e.Todo)
	if err != nil {
		m.fail("undo", err)
		return
	}
	if err := m.store.UpdatePriority(added.Title(), e.Priority); err != nil && !errors.Is(err, todo.ErrOutOfRange) {
		m.fail("undo", err)
		return
	}
	m.applied("undo", added.Title())
	m.setStatus("restored "+added.Title(), false)
	m.refresh(added.ID)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			m.stopInput()
			return m, nil
		case "enter":
			m.submit(strings.TrimSpace(m.ti.Value()))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// submit applies the pending input. On error the input stays open so the
// value can be corrected.
func (m *Model) submit(value string) {
	switch m.mode {
	case adding:
		e, err := m.store.Add(todo.Todo{Title: value})
		if err != nil {
			m.fail("add", err)
			return
		}
		m.applied("add", e.Title())
		m.stopInput()
		m.setStatus("added "+e.Title(), false)
		m.refresh(e.ID)

	case editing:
		e, err := m.store.Get(m.target)
		if err != nil {
			m.fail("title", err)
			m.stopInput()
			return
		}
		if err := m.store.UpdateTitle(m.target, value); err != nil {
			m.fail("title", err)
			return
		}
		m.applied("title", value)
		m.stopInput()
		m.setStatus("renamed to "+value, false)
		m.refresh(e.ID)

	case prioritizing:
		p, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			m.setStatus("priority must be a number between 0 and 65535", true)
			return
		}
		e, err := m.store.Get(m.target)
		if err != nil {
			m.fail("priority", err)
			m.stopInput()
			return
		}
		if err := m.store.UpdatePriority(m.target, uint16(p)); err != nil {
			m.fail("priority", err)
			return
		}
		m.applied("priority", m.target)
		m.stopInput()
		m.setStatus(fmt.Sprintf("%s now p%d", e.Title(), p), false)
		m.refresh(e.ID)
	}
}

func (m Model) View() string {
	content := m.list.View()
	t := ui.Current()

	if m.mode != browsing {
		title := map[mode]string{
			adding:       "Add todo",
			editing:      "Edit title",
			prioritizing: "Set priority",
		}[m.mode]
		if m.status != "" && m.statusErr {
			title += "  " + t.Error.Render(m.status)
		}
		content += "\n" + ui.PanelString(title+"\n"+m.ti.View())
	} else if m.status != "" {
		style := t.Success
		if m.statusErr {
			style = t.Error
		}
		content += "\n" + style.Render(m.status)
	}
	return ui.PanelString(content)
}

// describe turns store errors into short status lines.
func describe(err error) string {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return "no such todo"
	case errors.Is(err, todo.ErrDuplicateTitle):
		return "a todo with that title already exists"
	case errors.Is(err, todo.ErrEmptyTitle):
		return "title cannot be empty"
	}
	return err.Error()
}
