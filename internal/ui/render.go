package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo/internal/model"
)

// Output formats accepted by List.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// EmptyMessage is shown by the table format when there is nothing to list.
const EmptyMessage = `No todos yet. Use "todo add <title>" to create one.`

// ListOptions tune List.
type ListOptions struct {
	Format string
	Group  bool // pending rows first, done rows after
}

// List renders the collection in the requested format.
func (p *Printer) List(c model.Collection, opt ListOptions) error {
	switch opt.Format {
	case FormatJSON:
		return WriteJSON(p.Out, c)
	case FormatYAML:
		return WriteYAML(p.Out, c)
	case "", FormatTable:
		p.Table(c, opt.Group)
		return nil
	}
	return fmt.Errorf("unknown format %q", opt.Format)
}

// Table prints the table view followed by the summary counts.
func (p *Printer) Table(c model.Collection, group bool) {
	if len(c) == 0 {
		p.Notice(EmptyMessage)
		return
	}
	th := p.Theme
	order := rowOrder(c, group)

	rows := make([][]string, 0, len(order))
	for _, i := range order {
		it := c[i]
		rows = append(rows, []string{
			strconv.Itoa(i),
			th.Glyph(it.Completed),
			it.Title,
			it.CreatedAt,
			it.ModifiedAt,
		})
	}

	header := p.Style().Bold(true).Foreground(th.Accent).Padding(0, 1)
	cell := p.Style().Padding(0, 1)
	t := table.New().
		Border(th.Border).
		BorderStyle(p.Color(th.Muted)).
		Headers("#", "Done", "Title", "Created", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(order) {
				return cell
			}
			done := c[order[row]].Completed
			switch {
			case col == 1 && done:
				return cell.Foreground(th.Success)
			case col == 1:
				return cell.Foreground(th.Muted)
			case col >= 3:
				return cell.Foreground(th.Muted)
			}
			return cell
		})
	fmt.Fprintln(p.Out, t.String())

	total, done, pending := model.Stats(c)
	p.Panel([]string{
		fmt.Sprintf("Total: %d  Completed: %d  Uncompleted: %d", total, done, pending),
		p.Color(th.Muted).Render(ProgressBar(done, total, 28)),
	})
}

func rowOrder(c model.Collection, group bool) []int {
	order := make([]int, 0, len(c))
	if !group {
		for i := range c {
			order = append(order, i)
		}
		return order
	}
	for _, done := range []bool{false, true} {
		for i, it := range c {
			if it.Completed == done {
				order = append(order, i)
			}
		}
	}
	return order
}

// WriteJSON writes c as indented JSON, the same encoding the store uses.
func WriteJSON(w io.Writer, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteYAML writes c as a YAML sequence.
func WriteYAML(w io.Writer, c model.Collection) error {
	if c == nil {
		c = model.Collection{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	return enc.Close()
}
