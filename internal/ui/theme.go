package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Priority lipgloss.Style
	Selected                                       lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, Bullet, Cursor string
}

var current Theme

// SetTheme selects classic, neon or mono. Unknown names fall back to classic.
func SetTheme(name string) {
	r := renderer
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:     "neon",
			Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")), // bright magenta
			Muted:    r.NewStyle().Faint(true),
			Accent:   r.NewStyle().Foreground(lipgloss.Color("14")),
			Success:  r.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Priority: r.NewStyle().Foreground(lipgloss.Color("11")),
			Selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("5"),

			SymOK: "✔", SymFail: "✖", Bullet: "◆", Cursor: "▸ ",
		}
	case "mono":
		r.SetColorProfile(termenv.Ascii)
		current = Theme{
			Name:     "mono",
			Title:    r.NewStyle(),
			Muted:    r.NewStyle(),
			Accent:   r.NewStyle(),
			Success:  r.NewStyle(),
			Error:    r.NewStyle(),
			Priority: r.NewStyle(),
			Selected: r.NewStyle(),

			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},

			SymOK: "ok", SymFail: "error:", Bullet: "-", Cursor: "> ",
		}
	default: // classic
		current = Theme{
			Name:     "classic",
			Title:    r.NewStyle().Bold(true),
			Muted:    r.NewStyle().Faint(true),
			Accent:   r.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  r.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Priority: r.NewStyle().Foreground(lipgloss.Color("214")),
			Selected: r.NewStyle().Bold(true).Reverse(true),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),

			SymOK: "✔", SymFail: "✖", Bullet: "•", Cursor: "> ",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }

func init() {
	SetTheme("classic")
}
