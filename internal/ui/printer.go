package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing output. Out gets results and domain messages,
// Err gets failures.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
	NoColor  bool

	out, err *lipgloss.Renderer
}

// NewPrinter builds a Printer for the named theme.
func NewPrinter(out, errOut io.Writer, theme string, noColor bool) *Printer {
	t := ThemeByName(theme)
	return &Printer{
		Out:     out,
		Err:     errOut,
		Theme:   t,
		NoColor: noColor,
		out:     NewRenderer(out, t, noColor),
		err:     NewRenderer(errOut, t, noColor),
	}
}

// Style returns a style bound to the stdout renderer.
func (p *Printer) Style() lipgloss.Style { return p.out.NewStyle() }

// Color returns a foreground style for c on stdout.
func (p *Printer) Color(c lipgloss.TerminalColor) lipgloss.Style {
	return p.out.NewStyle().Foreground(c)
}

// OK reports a successful mutation.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.Color(p.Theme.Success).Render(p.Theme.SymOK+" "+msg))
}

// Notice prints a plain informational message on stdout.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.Out, p.Color(p.Theme.Pending).Render(msg))
}

// Fail reports an unrecoverable error on stderr.
func (p *Printer) Fail(msg string) {
	st := p.err.NewStyle().Foreground(p.Theme.Error).Bold(true)
	fmt.Fprintln(p.Err, st.Render(p.Theme.SymFail+" "+msg))
}
