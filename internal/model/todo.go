package model

import (
	"encoding/json"
	"time"
)

// TimeLayout is how created_at / modified_at are written.
const TimeLayout = "2006-01-02 15:04:05"

// Sentinel fills modified_at until the entry is first modified.
const Sentinel = "--- ---"

// Todo is the domain model for a todo entry.
type Todo struct {
	Title      string `json:"title" yaml:"title"`
	Completed  bool   `json:"completed" yaml:"completed"`
	CreatedAt  string `json:"created_at" yaml:"created_at"`
	ModifiedAt string `json:"modified_at" yaml:"modified_at"`
}

// Collection is the unit of persistence. Position is the user-facing id.
type Collection []Todo

// Stamp formats t the way the store keeps timestamps.
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Modified reports whether the entry was ever modified after creation.
func (t Todo) Modified() bool {
	return t.ModifiedAt != "" && t.ModifiedAt != Sentinel
}

// UnmarshalJSON accepts the older deleted_at name for modified_at.
func (t *Todo) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title      string  `json:"title"`
		Completed  bool    `json:"completed"`
		CreatedAt  string  `json:"created_at"`
		ModifiedAt *string `json:"modified_at"`
		DeletedAt  *string `json:"deleted_at"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*t = Todo{
		Title:      raw.Title,
		Completed:  raw.Completed,
		CreatedAt:  raw.CreatedAt,
		ModifiedAt: Sentinel,
	}
	switch {
	case raw.ModifiedAt != nil:
		t.ModifiedAt = *raw.ModifiedAt
	case raw.DeletedAt != nil:
		t.ModifiedAt = *raw.DeletedAt
	}
	return nil
}
