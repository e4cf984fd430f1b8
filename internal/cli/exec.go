package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// errUsage marks a malformed command line.
var errUsage = errors.New("usage")

// Interpreter applies text commands to a single store.
type Interpreter struct {
	store *todo.Store
	order string
	log   *log.Logger
}

func NewInterpreter(s *todo.Store, order string, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Interpreter{store: s, order: order, log: logger}
}

// Run executes every line of r. A failing command is reported and the next
// line still runs. It returns how many commands failed.
func (it *Interpreter) Run(r io.Reader) (int, error) {
	failed := 0
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := it.Exec(line); err != nil {
			failed++
			it.log.Error("command failed", "line", lineNo, "command", line, "err", err)
			ui.Fail(fmt.Sprintf("line %d: %s", lineNo, describe(err)))
		}
	}
	if err := sc.Err(); err != nil {
		return failed, err
	}
	return failed, nil
}

// Exec runs one command line.
func (it *Interpreter) Exec(line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		if rest == "" {
			return fmt.Errorf("%w: add <title>", errUsage)
		}
		e, err := it.store.Add(todo.Todo{Title: unquote(rest)})
		if err != nil {
			return err
		}
		it.log.Debug("applied", "op", cmd, "title", e.Title(), "priority", e.Priority)
		ui.OK(fmt.Sprintf("added %q with priority %d", e.Title(), e.Priority))

	case "find":
		if rest == "" {
			return fmt.Errorf("%w: find <title>", errUsage)
		}
		title := unquote(rest)
		i, ok := it.store.Find(title)
		if !ok {
			return fmt.Errorf("%w: %q", todo.ErrNotFound, title)
		}
		e, err := it.store.At(i)
		if err != nil {
			return err
		}
		ui.Println(fmt.Sprintf("%d\t%s\tp%d", i, e.Title(), e.Priority))

	case "title":
		target, newTitle, ok := strings.Cut(rest, "=>")
		if !ok {
			return fmt.Errorf("%w: title <title> => <new title>", errUsage)
		}
		target, newTitle = unquote(strings.TrimSpace(target)), unquote(strings.TrimSpace(newTitle))
		if err := it.store.UpdateTitle(target, newTitle); err != nil {
			return err
		}
		it.log.Debug("applied", "op", cmd, "title", target, "new_title", newTitle)
		ui.OK(fmt.Sprintf("renamed %q to %q", target, newTitle))

	case "priority":
		i := strings.LastIndex(rest, " ")
		if i < 0 {
			return fmt.Errorf("%w: priority <title> <n>", errUsage)
		}
		title, raw := unquote(strings.TrimSpace(rest[:i])), rest[i+1:]
		p, err := strconv.ParseUint(raw, 10, 16)
		if errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("%w: priority %s", todo.ErrOutOfRange, raw)
		}
		if err != nil {
			return fmt.Errorf("%w: priority must be a number, got %q", errUsage, raw)
		}
		if err := it.store.UpdatePriority(title, uint16(p)); err != nil {
			return err
		}
		it.log.Debug("applied", "op", cmd, "title", title, "priority", p)
		ui.OK(fmt.Sprintf("%q now has priority %d", title, p))

	case "rm":
		if rest == "" {
			return fmt.Errorf("%w: rm <title>", errUsage)
		}
		e, err := it.store.Remove(unquote(rest))
		if err != nil {
			return err
		}
		it.log.Debug("applied", "op", cmd, "title", e.Title())
		ui.OK(fmt.Sprintf("removed %q", e.Title()))

	case "ls":
		switch rest {
		case "":
			ui.Panel(listLines(it.store, it.order))
		case "--json":
			if err := export.Write(ui.Stdout(), ordered(it.store, it.order)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: ls [--json]", errUsage)
		}

	case "clear":
		it.store.Clear()
		it.log.Debug("applied", "op", cmd)
		ui.OK("cleared")

	case "help":
		PrintHelp()

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	return nil
}

// unquote strips one pair of surrounding double quotes, honoring Go escapes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

// describe maps store errors to the messages shown to users.
func describe(err error) string {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return "not found: " + strings.TrimPrefix(err.Error(), todo.ErrNotFound.Error()+": ")
	case errors.Is(err, todo.ErrDuplicateTitle):
		return "already exists: " + strings.TrimPrefix(err.Error(), todo.ErrDuplicateTitle.Error()+": ")
	case errors.Is(err, todo.ErrEmptyTitle):
		return "title cannot be empty"
	}
	return err.Error()
}
