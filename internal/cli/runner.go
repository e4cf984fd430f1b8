package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Options tune behavior from root flags and config.
type Options struct {
	Order  string   // listing order: title | priority
	Seed   []string // titles added before exec and ui start
	Logger *log.Logger
	Stdin  io.Reader // exec reads commands from here; os.Stdin when nil
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "demo":
		if len(a) != 0 {
			ui.Fail("usage: tada demo")
			return 2
		}
		return doDemo(opt)

	case "exec":
		if len(a) != 0 {
			ui.Fail("usage: tada exec < commands.txt")
			return 2
		}
		return doExec(opt)

	case "ui":
		if len(a) != 0 {
			ui.Fail("usage: tada ui")
			return 2
		}
		return doUI(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `tada - an in-memory ordered todo list

Usage:
  tada [flags] <subcommand>

Subcommands:
  demo               Run the sample session (add, reprioritize, remove)
  exec               Read commands from stdin and apply them to one list
  ui                 Interactive list (a add, e edit, p priority, d delete, u undo, o order)
  help               Show this help

Commands understood by exec (one per line, # starts a comment):
  add <title>                  Add a todo; its priority is the insertion counter
  find <title>                 Print the index of a todo
  title <title> => <new>       Rename a todo
  priority <title> <n>         Set priority; n must be below the number of todos
  rm <title>                   Remove a todo
  ls [--json]                  List todos
  clear                        Remove every todo and reset the counter

Flags:
  -config <path>   -theme classic|neon|mono   -color auto|always|never
  -order title|priority   -seed <title> (repeatable)
  -log-level debug|info|warn|error   -log-format text|json|logfmt

Examples:
  tada demo
  printf 'add "Buy milk"\npriority "Buy milk" 0\nls\n' | tada exec
  tada -seed "Eat Dinner" -seed "Play Game" ui
`)
}

// -------------- subcommand impls ----------------

func doDemo(opt Options) int {
	logger := opt.logger()
	s := todo.New()

	for _, title := range []string{"Eat Dinner", "Play Game"} {
		if _, err := s.Add(todo.Todo{Title: title}); err != nil {
			ui.Fail("add: " + err.Error())
			return 1
		}
		logger.Debug("demo add", "title", title)
	}
	ui.Panel(demoLines("Added", s))

	if err := s.UpdatePriority("Eat Dinner", 1); err != nil {
		ui.Fail("priority: " + err.Error())
		return 1
	}
	logger.Debug("demo priority", "title", "Eat Dinner", "priority", 1)
	ui.Panel(demoLines("Updated", s))

	if _, err := s.Remove("Eat Dinner"); err != nil {
		ui.Fail("rm: " + err.Error())
		return 1
	}
	logger.Debug("demo remove", "title", "Eat Dinner")
	ui.Panel(demoLines("Removed", s))
	return 0
}

func demoLines(heading string, s *todo.Store) []string {
	t := ui.Current()
	lines := []string{t.Title.Render(heading), ""}
	for _, e := range s.Entries() {
		lines = append(lines,
			fmt.Sprintf("%s %d", t.Muted.Render("Priority:"), e.Priority),
			fmt.Sprintf("%s %s", t.Muted.Render("Title:"), e.Title()),
			"",
		)
	}
	if s.Len() == 0 {
		lines = append(lines, t.Muted.Render("no todos"), "")
	}
	return lines[:len(lines)-1]
}

func doExec(opt Options) int {
	s, code := seededStore(opt)
	if code != 0 {
		return code
	}
	in := opt.Stdin
	if in == nil {
		in = os.Stdin
	}

	it := NewInterpreter(s, opt.Order, opt.logger())
	failed, err := it.Run(in)
	if err != nil {
		ui.Fail("read commands: " + err.Error())
		return 1
	}
	if failed > 0 {
		ui.Fail(fmt.Sprintf("%d command(s) failed", failed))
		return 1
	}
	return 0
}

func doUI(opt Options) int {
	s, code := seededStore(opt)
	if code != 0 {
		return code
	}
	changes, err := tui.Run(s, tui.Options{Order: opt.Order, Logger: opt.Logger})
	if err != nil {
		ui.Fail("ui: " + err.Error())
		return 1
	}
	opt.logger().Debug("ui closed", "changes", changes)
	if changes > 0 {
		ui.Panel(listLines(s, opt.Order))
	}
	return 0
}

// seededStore returns a store holding opt.Seed, or a non-zero exit code.
func seededStore(opt Options) (*todo.Store, int) {
	s := todo.New()
	for _, title := range opt.Seed {
		if _, err := s.Add(todo.Todo{Title: title}); err != nil {
			ui.Fail("seed: " + describe(err))
			if errors.Is(err, todo.ErrDuplicateTitle) || errors.Is(err, todo.ErrEmptyTitle) {
				return nil, 2
			}
			return nil, 1
		}
	}
	opt.logger().Debug("store seeded", "count", s.Len())
	return s, 0
}
