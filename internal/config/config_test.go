package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func ptr[T any](v T) *T { return &v }

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoadInput{WorkDir: dir, Env: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "todos.json", cfg.File)
	assert.Equal(t, filepath.Join(dir, "todos.json"), cfg.FileAbs)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Sources.Global)
	assert.Empty(t, cfg.Sources.Project)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	xdg := t.TempDir()
	write(t, filepath.Join(xdg, "todo", "config.json"), `{
		// global
		"file": "global.json",
		"theme": "neon",
		"log_level": "info",
	}`)
	write(t, filepath.Join(dir, FileName), `{"file": "project.json", /* c */ "format": "yaml"}`)

	env := map[string]string{"XDG_CONFIG_HOME": xdg}
	cfg, err := Load(LoadInput{WorkDir: dir, Env: env})
	require.NoError(t, err)
	assert.Equal(t, "project.json", cfg.File)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, filepath.Join(xdg, "todo", "config.json"), cfg.Sources.Global)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Sources.Project)

	env["TODO_FILE"] = "env.json"
	env["NO_COLOR"] = ""
	cfg, err = Load(LoadInput{WorkDir: dir, Env: env})
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.File)
	assert.True(t, cfg.NoColor)

	cfg, err = Load(LoadInput{WorkDir: dir, Env: env, Overrides: Overrides{
		File:      ptr("/abs/flag.json"),
		Theme:     ptr("mono"),
		Format:    ptr("json"),
		LogFormat: ptr("logfmt"),
	}})
	require.NoError(t, err)
	assert.Equal(t, "/abs/flag.json", cfg.FileAbs)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "logfmt", cfg.LogFormat)
}

func TestLoadHomeFallback(t *testing.T) {
	home := t.TempDir()
	write(t, filepath.Join(home, ".config", "todo", "config.json"), `{"theme":"mono"}`)

	cfg, err := Load(LoadInput{WorkDir: t.TempDir(), Env: map[string]string{"HOME": home}})
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoadExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "alt.json"), `{"file":"alt-todos.json"}`)

	cfg, err := Load(LoadInput{WorkDir: dir, ConfigPath: "alt.json"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alt-todos.json"), cfg.FileAbs)

	_, err = Load(LoadInput{WorkDir: dir, ConfigPath: "missing.json"})
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]struct {
		body string
		over Overrides
	}{
		"bad jsonc":  {body: `{"file": `},
		"empty file": {body: `{"file": ""}`},
		"bad theme":  {body: `{"theme": "sparkly"}`},
		"bad format": {over: Overrides{Format: ptr("xml")}},
		"bad level":  {over: Overrides{LogLevel: ptr("loud")}},
		"empty flag": {over: Overrides{File: ptr("")}},
		"bad logfmt": {body: `{"log_format": "xml"}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if tc.body != "" {
				write(t, filepath.Join(dir, FileName), tc.body)
			}

			_, err := Load(LoadInput{WorkDir: dir, Overrides: tc.over})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigInvalid), "got %v", err)
		})
	}
}
