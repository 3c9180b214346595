// Package tui is the interactive todo list. Edits go through the model
// mutators; the caller persists the result.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// Options configure the interactive list.
type Options struct {
	Theme   ui.Theme
	NoColor bool
	Now     func() time.Time
	In      io.Reader
	Out     io.Writer
	Logger  *log.Logger
}

// listItem adapts a todo and its position to bubbles/list.Item.
type listItem struct {
	Index int
	Todo  model.Todo
}

func (i listItem) FilterValue() string { return i.Todo.Title }

type mode int

const (
	browsing mode = iota
	adding
	editing
)

// Model is the bubbletea model behind Run.
type Model struct {
	list    list.Model
	todos   model.Collection
	changed bool
	now     func() time.Time
	logger  *log.Logger
	st      styles

	mode      mode
	ti        textinput.Model // shared by add and edit
	editIndex int
	inputErr  string

	width, height int
}

// New builds the model for items.
func New(items model.Collection, opt Options) Model {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	out := opt.Out
	if out == nil {
		out = os.Stdout
	}
	st := newStyles(ui.NewRenderer(out, opt.Theme, opt.NoColor), opt.Theme)

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	doneBind := key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, doneBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		list:      l,
		todos:     items,
		now:       opt.Now,
		logger:    opt.Logger,
		st:        st,
		ti:        ti,
		editIndex: -1,
		width:     80,
		height:    24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program and returns the final collection and whether it
// differs from items.
func Run(items model.Collection, opt Options) (model.Collection, bool, error) {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.In != nil {
		popts = append(popts, tea.WithInput(opt.In))
	}
	if opt.Out != nil {
		popts = append(popts, tea.WithOutput(opt.Out))
	}
	p := tea.NewProgram(New(items, opt), popts...)
	final, err := p.Run()
	if err != nil {
		return items, false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return items, false, nil
	}
	return fm.Todos(), fm.Changed(), nil
}

// Todos returns the current collection.
func (m Model) Todos() model.Collection { return m.todos }

// Changed reports whether any mutation was applied.
func (m Model) Changed() bool { return m.changed }

func (m *Model) refresh() tea.Cmd {
	items := make([]list.Item, 0, len(m.todos))
	for i, t := range m.todos {
		items = append(items, listItem{Index: i, Todo: t})
	}
	total, done, pending := model.Stats(m.todos)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("Todos"),
		m.st.success.Render(m.st.boxChecked), done,
		m.st.pending.Render(m.st.boxUnchecked), pending,
		m.st.accent.Render("Total"), total,
	)
	return m.list.SetItems(items)
}

// selected is the collection index under the cursor, or -1.
func (m Model) selected() int {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return -1
	}
	return it.Index
}

func (m *Model) apply(op string, next model.Collection, err error) tea.Cmd {
	if err != nil {
		m.logger.Debug("tui mutation rejected", "op", op, "err", err)
		return nil
	}
	m.todos = next
	m.changed = true
	return m.refresh()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.mode != browsing {
		return m.updateInput(msg)
	}

	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch km.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case " ", "x":
			i := m.selected()
			if i < 0 {
				return m, nil
			}
			next, err := model.Complete(m.todos, i, m.now())
			return m, m.apply("done", next, err)
		case "d":
			i := m.selected()
			if i < 0 {
				return m, nil
			}
			next, err := model.Delete(m.todos, i)
			return m, m.apply("delete", next, err)
		case "a":
			m.mode = adding
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New todo title..."
			m.resize()
			return m, m.ti.Focus()
		case "e":
			i := m.selected()
			if i < 0 {
				return m, nil
			}
			m.mode = editing
			m.editIndex = i
			m.inputErr = ""
			m.ti.SetValue(m.todos[i].Title)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit todo title..."
			m.resize()
			return m, m.ti.Focus()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			title := m.ti.Value()
			if strings.TrimSpace(title) == "" {
				m.inputErr = "Title cannot be empty"
				return m, nil
			}
			var cmd tea.Cmd
			if m.mode == adding {
				cmd = m.apply("add", model.Add(m.todos, title, m.now()), nil)
			} else {
				next, err := model.Edit(m.todos, m.editIndex, title, m.now())
				cmd = m.apply("edit", next, err)
			}
			m.closeInput()
			return m, cmd
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.editIndex = -1
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != browsing {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.mode != browsing {
		title := "Add todo"
		if m.mode == editing {
			title = fmt.Sprintf("Edit todo %d", m.editIndex)
		}
		if m.inputErr != "" {
			title += ": " + m.st.errText.Render(m.inputErr)
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.ti.View())
	}
	return m.st.frame.Render(content)
}

// itemDelegate renders each todo on a single line.
type itemDelegate struct{ st styles }

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.Todo.Title
	if it.Todo.Completed {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, d.st.muted.Render(fmt.Sprintf("%2d.", it.Index)), box, text)
}
