// Package config resolves settings from defaults, JSONC config files,
// environment and flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"

	"github.com/idilsaglam/todo/internal/logging"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/ui"
)

var (
	ErrConfigInvalid      = errors.New("invalid config")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
)

// FileName is the optional per-project config file.
const FileName = ".todo.json"

// Config holds all configuration options.
type Config struct {
	File      string `json:"file,omitempty"`
	Theme     string `json:"theme,omitempty"`
	NoColor   bool   `json:"no_color,omitempty"`
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
	Format    string `json:"format,omitempty"`

	// Resolved, not serialized.
	FileAbs string  `json:"-"`
	Sources Sources `json:"-"`
}

// Sources records which config files were loaded.
type Sources struct {
	Global  string
	Project string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:      jsonstore.DefaultFileName,
		Theme:     "classic",
		LogLevel:  "warn",
		LogFormat: "text",
		Format:    ui.FormatTable,
	}
}

// Overrides are values set on the command line. Nil fields were not given.
type Overrides struct {
	File      *string
	Theme     *string
	NoColor   *bool
	LogLevel  *string
	LogFormat *string
	Format    *string
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir    string            // empty means os.Getwd()
	ConfigPath string            // --config; must exist when set
	Env        map[string]string // environment variables
	Overrides  Overrides
}

// Load merges, lowest precedence first: defaults, global config, project
// config (.todo.json or --config), TODO_FILE / NO_COLOR, then flags.
func Load(in LoadInput) (Config, error) {
	workDir := in.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("getwd: %w", err)
		}
		workDir = wd
	}

	cfg := Default()

	if p := globalPath(in.Env); p != "" {
		g, loaded, err := loadFile(p, false)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = merge(cfg, g)
			cfg.Sources.Global = p
		}
	}

	projPath, mustExist := filepath.Join(workDir, FileName), false
	if in.ConfigPath != "" {
		projPath, mustExist = in.ConfigPath, true
		if !filepath.IsAbs(projPath) {
			projPath = filepath.Join(workDir, projPath)
		}
	}
	proj, loaded, err := loadFile(projPath, mustExist)
	if err != nil {
		return Config{}, err
	}
	if loaded {
		cfg = merge(cfg, proj)
		cfg.Sources.Project = projPath
	}

	if v := in.Env["TODO_FILE"]; v != "" {
		cfg.File = v
	}
	if _, ok := in.Env["NO_COLOR"]; ok {
		cfg.NoColor = true
	}

	o := in.Overrides
	if o.File != nil {
		cfg.File = *o.File
	}
	if o.Theme != nil {
		cfg.Theme = *o.Theme
	}
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.LogFormat != nil {
		cfg.LogFormat = *o.LogFormat
	}
	if o.Format != nil {
		cfg.Format = *o.Format
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.FileAbs = cfg.File
	if !filepath.IsAbs(cfg.FileAbs) {
		cfg.FileAbs = filepath.Join(workDir, cfg.FileAbs)
	}
	return cfg, nil
}

// globalPath is $XDG_CONFIG_HOME/todo/config.json or ~/.config/todo/config.json.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "todo", "config.json")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "todo", "config.json")
	}
	return ""
}

func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	// JSONC (comments, trailing commas) to plain JSON.
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(std, &raw); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if v, ok := raw["file"]; ok && string(v) == `""` {
		return Config{}, errors.New("file must not be empty")
	}
	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.File != "" {
		base.File = overlay.File
	}
	if overlay.Theme != "" {
		base.Theme = overlay.Theme
	}
	if overlay.NoColor {
		base.NoColor = true
	}
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != "" {
		base.LogFormat = overlay.LogFormat
	}
	if overlay.Format != "" {
		base.Format = overlay.Format
	}
	return base
}

func validate(cfg Config) error {
	if cfg.File == "" {
		return fmt.Errorf("%w: file must not be empty", ErrConfigInvalid)
	}
	if !slices.Contains(ui.Themes, cfg.Theme) {
		return fmt.Errorf("%w: unknown theme %q (want one of %v)", ErrConfigInvalid, cfg.Theme, ui.Themes)
	}
	if !slices.Contains(ui.Formats, cfg.Format) {
		return fmt.Errorf("%w: unknown format %q (want one of %v)", ErrConfigInvalid, cfg.Format, ui.Formats)
	}
	if !slices.Contains(logging.Levels, cfg.LogLevel) {
		return fmt.Errorf("%w: unknown log level %q (want one of %v)", ErrConfigInvalid, cfg.LogLevel, logging.Levels)
	}
	if !slices.Contains(logging.Formats, cfg.LogFormat) {
		return fmt.Errorf("%w: unknown log format %q (want one of %v)", ErrConfigInvalid, cfg.LogFormat, logging.Formats)
	}
	return nil
}
