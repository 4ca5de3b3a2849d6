// Package keystate holds which MIDI notes are currently sounding.
//
// A Table is written from the MIDI delivery goroutine and from the frame
// loop, and read by the frame loop. The lock is only ever held for a single
// operation.
package keystate

import (
	"sync"

	"github.com/minikomi/pianolight/internal/note"
)

type Table struct {
	mu   sync.Mutex
	keys [note.Count]bool
}

func New() *Table {
	return &Table{}
}

// Set marks n as down or up. Notes above note.Max are ignored.
func (t *Table) Set(n note.AbsoluteNote, down bool) {
	if !n.Valid() {
		return
	}
	t.mu.Lock()
	t.keys[n] = down
	t.mu.Unlock()
}

func (t *Table) Get(n note.AbsoluteNote) bool {
	if !n.Valid() {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.keys[n]
}

func (t *Table) ClearAll() {
	t.mu.Lock()
	t.keys = [note.Count]bool{}
	t.mu.Unlock()
}

// Snapshot copies every flag under one lock, so a frame draws a consistent
// view.
func (t *Table) Snapshot() [note.Count]bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.keys
}

// Down returns the sounding notes in ascending order.
func (t *Table) Down() []note.AbsoluteNote {
	keys := t.Snapshot()
	var down []note.AbsoluteNote
	for n, d := range keys {
		if d {
			down = append(down, note.AbsoluteNote(n))
		}
	}
	return down
}
