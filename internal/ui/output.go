// Package ui renders tada's terminal output with lipgloss.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	renderer  = lipgloss.NewRenderer(os.Stdout)
	colorMode = "auto"
)

// SetOutput redirects normal and error output. Color detection follows out.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
	renderer = lipgloss.NewRenderer(out)
	SetColor(colorMode)
}

// SetColor applies auto, always or never. The current theme is rebuilt so
// its styles pick up the new profile.
func SetColor(mode string) {
	colorMode = strings.ToLower(mode)
	switch colorMode {
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	default:
		renderer = lipgloss.NewRenderer(stdout)
	}
	SetTheme(current.Name)
}

// Renderer is the lipgloss renderer the theme was built with.
func Renderer() *lipgloss.Renderer { return renderer }

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Hint prints a muted follow-up line on the error stream.
func Hint(msg string) {
	fmt.Fprintln(stderr, current.Muted.Render("Hint: "+msg))
}

// Println writes a plain line to the normal output.
func Println(s string) {
	fmt.Fprintln(stdout, s)
}

// Stdout is where normal output currently goes.
func Stdout() io.Writer { return stdout }
