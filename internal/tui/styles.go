package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/ui"
)

type styles struct {
	title, success, pending, accent, muted, errText lipgloss.Style
	selected, done, help, frame                     lipgloss.Style
	boxChecked, boxUnchecked                        string
}

func newStyles(r *lipgloss.Renderer, t ui.Theme) styles {
	return styles{
		title:    r.NewStyle().Bold(true),
		success:  r.NewStyle().Foreground(t.Success),
		pending:  r.NewStyle().Foreground(t.Pending),
		accent:   r.NewStyle().Foreground(t.Accent),
		muted:    r.NewStyle().Faint(true),
		errText:  r.NewStyle().Foreground(t.Error).Bold(true),
		selected: r.NewStyle().Bold(true).Reverse(true),
		done:     r.NewStyle().Faint(true).Strikethrough(true),
		help:     r.NewStyle().Faint(true),
		frame: r.NewStyle().
			Border(t.Border).
			BorderForeground(t.Muted).
			Padding(0, 1),
		boxChecked:   t.BoxChecked,
		boxUnchecked: t.BoxUnchecked,
	}
}
