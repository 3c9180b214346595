package cli

import (
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/ui"
)

// Main parses root flags, loads config and dispatches the command.
// Returns the process exit code (0 ok, 1 error, 2 no command).
func Main(args []string, stdout, stderr io.Writer, env map[string]string) int {
	return MainWithInput(nil, args, stdout, stderr, env)
}

// MainWithInput is Main with a terminal input for the interactive list.
func MainWithInput(stdin io.Reader, args []string, stdout, stderr io.Writer, env map[string]string) int {
	// Root flags (apply to every subcommand)
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(false)
	file := fs.StringP("file", "f", "", "todo file")
	cfgPath := fs.StringP("config", "c", "", "config file")
	theme := fs.String("theme", "", "colour theme")
	noColor := fs.Bool("no-color", false, "disable colour")
	logLevel := fs.String("log-level", "", "log level")
	logFormat := fs.String("log-format", "", "log format")
	format := fs.String("format", "", "list format")
	group := fs.BoolP("group", "g", false, "group list output by pending/done")
	interactive := fs.BoolP("interactive", "i", false, "interactive list")
	help := fs.BoolP("help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		fail := ui.NewPrinter(stdout, stderr, "classic", true)
		fail.Fail(err.Error())
		PrintHelp(stderr)
		return 1
	}

	if *help {
		PrintHelp(stdout)
		return 0
	}

	var over config.Overrides
	if fs.Changed("file") {
		over.File = file
	}
	if fs.Changed("theme") {
		over.Theme = theme
	}
	if fs.Changed("no-color") {
		over.NoColor = noColor
	}
	if fs.Changed("log-level") {
		over.LogLevel = logLevel
	}
	if fs.Changed("log-format") {
		over.LogFormat = logFormat
	}
	if fs.Changed("format") {
		over.Format = format
	}

	cfg, err := config.Load(config.LoadInput{
		ConfigPath: *cfgPath,
		Env:        env,
		Overrides:  over,
	})
	if err != nil {
		_, noColorEnv := env["NO_COLOR"]
		ui.NewPrinter(stdout, stderr, "classic", *noColor || noColorEnv).Fail("config: " + err.Error())
		return 1
	}

	logger := logging.New(stderr, logging.Options{
		Level:     cfg.LogLevel,
		Formatter: cfg.LogFormat,
	})
	logger.Debug("config loaded",
		"file", cfg.FileAbs,
		"global", cfg.Sources.Global,
		"project", cfg.Sources.Project,
	)
	printer := ui.NewPrinter(stdout, stderr, cfg.Theme, cfg.NoColor)

	rest := fs.Args()
	if len(rest) == 0 {
		PrintHelp(stdout)
		return 2
	}

	cmd := Parse(rest)
	// Root list flags apply unless the list command set them itself.
	if lc, ok := cmd.(ListCmd); ok {
		lc.Group = lc.Group || *group
		lc.Interactive = lc.Interactive || *interactive
		cmd = lc
	}

	return Run(cmd, Options{
		Store:   jsonstore.New(cfg.FileAbs, logger),
		Printer: printer,
		Logger:  logger,
		Now:     time.Now,
		Format:  cfg.Format,
		In:      stdin,
	})
}

// Environ converts os.Environ into a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
