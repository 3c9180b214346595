package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/natefinch/atomic"

	"github.com/idilsaglam/todo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "todos.json"

// ErrCorrupt means the file exists but does not hold a todo collection.
var ErrCorrupt = errors.New("todo file is corrupt")

// Store reads and writes the whole collection at Path.
type Store struct {
	Path   string
	Logger *log.Logger
}

// New returns a Store for path. A nil logger discards diagnostics.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{Path: path, Logger: logger}
}

// Load reads the collection. A missing or blank file is an empty collection;
// anything else that does not parse is an ErrCorrupt error.
func (s *Store) Load() (model.Collection, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.Logger.Debug("store missing, starting empty", "path", s.Path)
			return model.Collection{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return model.Collection{}, nil
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	var items model.Collection
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%s: %w: json unmarshal: %w", s.Path, ErrCorrupt, err)
	}
	if items == nil {
		items = model.Collection{}
	}
	s.Logger.Debug("loaded", "path", s.Path, "todos", len(items))
	return items, nil
}

// Save overwrites the file with the full collection.
func (s *Store) Save(items model.Collection) error {
	b, err := Encode(items)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	_, statErr := os.Stat(s.Path)
	if err := atomic.WriteFile(s.Path, bytes.NewReader(b)); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	// atomic.WriteFile creates new files 0600.
	if errors.Is(statErr, os.ErrNotExist) {
		if err := os.Chmod(s.Path, 0o644); err != nil {
			return fmt.Errorf("chmod: %w", err)
		}
	}
	s.Logger.Debug("saved", "path", s.Path, "todos", len(items))
	return nil
}

// Encode renders items exactly as Save writes them.
func Encode(items model.Collection) ([]byte, error) {
	if items == nil {
		items = model.Collection{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return append(b, '\n'), nil
}
