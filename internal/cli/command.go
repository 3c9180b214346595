package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/idilsaglam/todo/internal/ui"
)

// Command is one parsed invocation. The set of implementations is closed.
type Command interface{ command() }

// AddCmd appends a todo.
type AddCmd struct{ Title string }

// EditCmd retitles the todo at Index.
type EditCmd struct {
	Index int
	Title string
}

// DeleteCmd removes the todo at Index.
type DeleteCmd struct{ Index int }

// DoneCmd marks the todo at Index completed.
type DoneCmd struct{ Index int }

// ListCmd prints the collection.
type ListCmd struct {
	Format      string // empty means the configured default
	Group       bool
	Interactive bool
}

// ClearCmd removes every todo.
type ClearCmd struct{}

// HelpCmd prints usage.
type HelpCmd struct{}

// InvalidCmd is an unrecognized command token.
type InvalidCmd struct{ Token string }

// UsageCmd is a known command with a missing or malformed argument.
type UsageCmd struct{ Message string }

func (AddCmd) command()     {}
func (EditCmd) command()    {}
func (DeleteCmd) command()  {}
func (DoneCmd) command()    {}
func (ListCmd) command()    {}
func (ClearCmd) command()   {}
func (HelpCmd) command()    {}
func (InvalidCmd) command() {}
func (UsageCmd) command()   {}

// Parse maps a command token and its arguments to a Command.
func Parse(args []string) Command {
	if len(args) == 0 {
		return HelpCmd{}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		return HelpCmd{}

	case "add":
		title, ok := joinTitle(a)
		if !ok {
			return UsageCmd{"Title is required for adding a new todo"}
		}
		return AddCmd{Title: title}

	case "edit":
		if len(a) == 0 {
			return UsageCmd{"Todo ID is required for editing"}
		}
		i, u := parseIndex(a[0])
		if u != nil {
			return *u
		}
		title, ok := joinTitle(a[1:])
		if !ok {
			return UsageCmd{"Title is required for editing a todo"}
		}
		return EditCmd{Index: i, Title: title}

	case "delete":
		if len(a) != 1 {
			return UsageCmd{"usage: todo delete <todo_id>"}
		}
		i, u := parseIndex(a[0])
		if u != nil {
			return *u
		}
		return DeleteCmd{Index: i}

	case "done":
		if len(a) != 1 {
			return UsageCmd{"usage: todo done <todo_id>"}
		}
		i, u := parseIndex(a[0])
		if u != nil {
			return *u
		}
		return DoneCmd{Index: i}

	case "list":
		return parseList(a)

	case "clear":
		return ClearCmd{}
	}

	return InvalidCmd{Token: cmd}
}

func parseList(args []string) Command {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var c ListCmd
	fs.StringVar(&c.Format, "format", "", "")
	fs.BoolVarP(&c.Group, "group", "g", false, "")
	fs.BoolVarP(&c.Interactive, "interactive", "i", false, "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return HelpCmd{}
		}
		return UsageCmd{"list: " + err.Error()}
	}
	if fs.NArg() > 0 {
		return UsageCmd{"usage: todo list [--format table|json|yaml] [--group] [-i]"}
	}
	if c.Format != "" && !slices.Contains(ui.Formats, c.Format) {
		return UsageCmd{fmt.Sprintf("list: unknown format %q", c.Format)}
	}
	return c
}

// joinTitle joins the title words as given; ok is false when they are blank.
func joinTitle(a []string) (string, bool) {
	title := strings.Join(a, " ")
	return title, strings.TrimSpace(title) != ""
}

// parseIndex accepts any run of digits. Values past maxInt can never
// address an entry, so they saturate and are reported as not found.
func parseIndex(s string) (int, *UsageCmd) {
	n, err := strconv.ParseUint(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) || (err == nil && n > uint64(maxInt)) {
		return maxInt, nil
	}
	if err != nil {
		return 0, &UsageCmd{fmt.Sprintf("Todo ID must be a non-negative number, got %q", s)}
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)
