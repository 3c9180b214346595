package model

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an index does not address an entry.
var ErrNotFound = errors.New("todo with the specified index does not exist")

// Mutators never write through to the caller's backing array; the input
// collection is left as it was, including when ErrNotFound is returned.

// Add appends a new, uncompleted entry.
func Add(c Collection, title string, now time.Time) Collection {
	out := make(Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, Todo{
		Title:      title,
		Completed:  false,
		CreatedAt:  Stamp(now),
		ModifiedAt: Sentinel,
	})
}

// Edit replaces the title at index i.
func Edit(c Collection, i int, title string, now time.Time) (Collection, error) {
	if !inRange(c, i) {
		return c, ErrNotFound
	}
	out := clone(c)
	out[i].Title = title
	out[i].ModifiedAt = Stamp(now)
	return out, nil
}

// Complete marks the entry at i as done. Completing a done entry is a no-op.
func Complete(c Collection, i int, now time.Time) (Collection, error) {
	if !inRange(c, i) {
		return c, ErrNotFound
	}
	if c[i].Completed {
		return c, nil
	}
	out := clone(c)
	out[i].Completed = true
	out[i].ModifiedAt = Stamp(now)
	return out, nil
}

// Delete removes the entry at i; later entries shift down by one.
func Delete(c Collection, i int) (Collection, error) {
	if !inRange(c, i) {
		return c, ErrNotFound
	}
	out := make(Collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...), nil
}

// Clear drops every entry.
func Clear(Collection) Collection {
	return Collection{}
}

// Stats counts entries by state.
func Stats(c Collection) (total, completed, uncompleted int) {
	for _, t := range c {
		if t.Completed {
			completed++
		}
	}
	return len(c), completed, len(c) - completed
}

func inRange(c Collection, i int) bool {
	return i >= 0 && i < len(c)
}

func clone(c Collection) Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}
