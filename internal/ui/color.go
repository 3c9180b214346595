package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer binds a lipgloss renderer to w. Colour is dropped for
// non-terminals, mono themes and when disabled explicitly.
func NewRenderer(w io.Writer, theme Theme, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor || theme.Mono || !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
