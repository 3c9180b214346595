package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// Store is the persistence the dispatcher brackets every command with.
type Store interface {
	Load() (model.Collection, error)
	Save(model.Collection) error
}

// Options carry everything Run needs besides the command.
type Options struct {
	Store   Store
	Printer *ui.Printer
	Logger  *log.Logger
	Now     func() time.Time
	Format  string    // default list format
	In      io.Reader // terminal input for the interactive list
}

// User-facing messages.
const (
	msgNotFound = "Todo with the specified index does not exist"
	msgAdded    = "Todo added"
	msgUpdated  = "Todo updated"
	msgDeleted  = "Todo deleted"
	msgDone     = "Todo marked as completed"
	msgCleared  = "Todos cleared"
)

// Run executes one command and returns the process exit code: 0 for
// everything except storage failures, which return 1.
func Run(cmd Command, opt Options) int {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard)
	}
	opt.Logger.Debug("dispatch", "command", fmt.Sprintf("%T", cmd))
	p := opt.Printer

	switch c := cmd.(type) {
	case HelpCmd:
		PrintHelp(p.Out)
		return 0

	case UsageCmd:
		p.Notice(c.Message)
		return 0

	case InvalidCmd:
		p.Notice(fmt.Sprintf("Invalid command %q. Run \"todo help\" for usage.", c.Token))
		return 0

	case ListCmd:
		return doList(opt, c)

	case AddCmd:
		return mutate(opt, msgAdded, func(items model.Collection) (model.Collection, error) {
			return model.Add(items, c.Title, opt.Now()), nil
		})

	case EditCmd:
		return mutate(opt, msgUpdated, func(items model.Collection) (model.Collection, error) {
			return model.Edit(items, c.Index, c.Title, opt.Now())
		})

	case DeleteCmd:
		return mutate(opt, msgDeleted, func(items model.Collection) (model.Collection, error) {
			return model.Delete(items, c.Index)
		})

	case DoneCmd:
		return mutate(opt, msgDone, func(items model.Collection) (model.Collection, error) {
			return model.Complete(items, c.Index, opt.Now())
		})

	case ClearCmd:
		return mutate(opt, msgCleared, func(items model.Collection) (model.Collection, error) {
			return model.Clear(items), nil
		})
	}

	p.Fail(fmt.Sprintf("unhandled command %T", cmd))
	return 1
}

// mutate loads, applies fn and saves. ErrNotFound is reported and leaves the
// store untouched.
func mutate(opt Options, okMsg string, fn func(model.Collection) (model.Collection, error)) int {
	p := opt.Printer
	items, err := opt.Store.Load()
	if err != nil {
		p.Fail("load: " + err.Error())
		return 1
	}
	next, err := fn(items)
	if errors.Is(err, model.ErrNotFound) {
		p.Notice(msgNotFound)
		return 0
	}
	if err != nil {
		p.Fail(err.Error())
		return 1
	}
	if err := opt.Store.Save(next); err != nil {
		p.Fail("save: " + err.Error())
		return 1
	}
	p.OK(okMsg)
	return 0
}

func doList(opt Options, c ListCmd) int {
	p := opt.Printer
	items, err := opt.Store.Load()
	if err != nil {
		p.Fail("load: " + err.Error())
		return 1
	}

	if c.Interactive {
		if opt.In != nil && ui.IsTerminal(p.Out) {
			return doInteractive(opt, items)
		}
		opt.Logger.Warn("interactive list needs a terminal, printing table")
	}

	format := c.Format
	if format == "" {
		format = opt.Format
	}
	if err := p.List(items, ui.ListOptions{Format: format, Group: c.Group}); err != nil {
		p.Fail("list: " + err.Error())
		return 1
	}
	return 0
}

// doInteractive runs the TUI and persists the result if anything changed.
func doInteractive(opt Options, items model.Collection) int {
	p := opt.Printer
	final, changed, err := tui.Run(items, tui.Options{
		Theme:   p.Theme,
		NoColor: p.NoColor,
		Now:     opt.Now,
		In:      opt.In,
		Out:     p.Out,
		Logger:  opt.Logger,
	})
	if err != nil {
		p.Fail("tui: " + err.Error())
		return 1
	}
	if !changed {
		return 0
	}
	if err := opt.Store.Save(final); err != nil {
		p.Fail("save: " + err.Error())
		return 1
	}
	p.OK("saved")
	return 0
}

// PrintHelp writes usage text.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny CLI

Usage:
  todo [flags] <command> [args]

Commands:
  add <title...>              Add a new todo (title can be multiple words)
  edit <todo_id> <title...>   Replace the title of a todo
  delete <todo_id>            Remove a todo; later ids shift down by one
  done <todo_id>              Mark a todo as completed
  list [--format table|json|yaml] [--group] [-i]
                              List todos (-i: interactive, needs a terminal)
  clear                       Remove all todos
  help                        Show this help

Ids are zero-based positions as shown by "todo list".

Flags:
  -f, --file <path>      todo file (default todos.json, env TODO_FILE)
  -c, --config <path>    config file (default .todo.json if present)
      --theme <name>     classic, neon or mono
      --no-color         disable colour (env NO_COLOR)
      --log-level <lvl>  debug, info, warn or error (logs go to stderr)
      --log-format <f>   text, json or logfmt
      --format <f>       default list format: table, json or yaml
  -g, --group            list pending todos before done ones
  -i, --interactive      interactive list (needs a terminal)
  -h, --help             show this help

Examples:
  todo add "Buy milk"
  todo list
  todo done 0
  todo edit 0 "Buy oat milk"
  todo delete 0
`)
}
