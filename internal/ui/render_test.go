package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

var now = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

func printer(theme string) (*ui.Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return ui.NewPrinter(&out, &errOut, theme, false), &out, &errOut
}

func sample() model.Collection {
	c := model.Add(nil, "write report", now)
	c = model.Add(c, "call mom", now)
	c = model.Add(c, "pay rent", now)
	c, _ = model.Complete(c, 1, now.Add(time.Hour))
	return c
}

func TestTableEmpty(t *testing.T) {
	p, out, _ := printer("classic")

	p.Table(model.Collection{}, false)

	assert.Equal(t, ui.EmptyMessage+"\n", out.String())
}

func TestTableRowsAndSummary(t *testing.T) {
	p, out, _ := printer("classic")

	p.Table(sample(), false)

	s := out.String()
	for _, want := range []string{
		"#", "Title", "Created", "Modified",
		"write report", "call mom", "pay rent",
		"2024-02-03 04:05:06", "2024-02-03 05:05:06", model.Sentinel,
		"Total: 3  Completed: 1  Uncompleted: 2",
	} {
		assert.Contains(t, s, want)
	}
	assert.Equal(t, 1, strings.Count(s, "☑"))
	assert.Equal(t, 2, strings.Count(s, "☐"))
	assert.NotContains(t, s, "\x1b[", "no colour when writing to a buffer")
	assert.Less(t, strings.Index(s, "write report"), strings.Index(s, "call mom"))
}

func TestTableGroupKeepsIndexes(t *testing.T) {
	p, out, _ := printer("mono")

	p.Table(sample(), true)

	s := out.String()
	assert.Less(t, strings.Index(s, "pay rent"), strings.Index(s, "call mom"))
	var callLine string
	for _, ln := range strings.Split(s, "\n") {
		if strings.Contains(ln, "call mom") {
			callLine = ln
		}
	}
	assert.Contains(t, callLine, "| 1 ")
	assert.Contains(t, callLine, "[x]")
}

func TestListJSON(t *testing.T) {
	p, out, _ := printer("classic")
	c := sample()

	require.NoError(t, p.List(c, ui.ListOptions{Format: ui.FormatJSON}))

	var got model.Collection
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, c, got)
}

func TestListYAML(t *testing.T) {
	p, out, _ := printer("classic")
	c := sample()

	require.NoError(t, p.List(c, ui.ListOptions{Format: ui.FormatYAML}))

	assert.Contains(t, out.String(), "- title: write report\n")
	var got model.Collection
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, c, got)
}

func TestListUnknownFormat(t *testing.T) {
	p, _, _ := printer("classic")

	assert.Error(t, p.List(sample(), ui.ListOptions{Format: "xml"}))
}

func TestMessages(t *testing.T) {
	p, out, errOut := printer("classic")

	p.OK("Todo added")
	p.Notice("heads up")
	p.Fail("boom")

	assert.Equal(t, "✔ Todo added\nheads up\n", out.String())
	assert.Equal(t, "✖ boom\n", errOut.String())
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ui.ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ui.ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ui.ProgressBar(3, 3, 10))
}

func TestNewRendererDropsColour(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.Ascii, ui.NewRenderer(&buf, ui.ThemeByName("classic"), false).ColorProfile())
	assert.Equal(t, termenv.Ascii, ui.NewRenderer(os.Stdout, ui.ThemeByName("classic"), true).ColorProfile())
	assert.Equal(t, termenv.Ascii, ui.NewRenderer(os.Stdout, ui.ThemeByName("mono"), false).ColorProfile())
}
