package keystate_test

import (
	"sync"
	"testing"

	"github.com/minikomi/pianolight/internal/keystate"
	"github.com/minikomi/pianolight/internal/note"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("starts with every key up", func(t *testing.T) {
		tbl := keystate.New()
		for n := 0; n < note.Count; n++ {
			require.False(t, tbl.Get(note.AbsoluteNote(n)))
		}
		require.Empty(t, tbl.Down())
	})

	t.Run("last write wins", func(t *testing.T) {
		tbl := keystate.New()
		tbl.Set(60, true)
		require.True(t, tbl.Get(60))
		tbl.Set(60, false)
		require.False(t, tbl.Get(60))
		tbl.Set(60, true)
		tbl.Set(60, true)
		require.True(t, tbl.Get(60))
	})

	t.Run("clear all", func(t *testing.T) {
		tbl := keystate.New()
		tbl.Set(0, true)
		tbl.Set(60, true)
		tbl.Set(note.Max, true)
		require.Equal(t, []note.AbsoluteNote{0, 60, note.Max}, tbl.Down())

		tbl.ClearAll()
		require.Empty(t, tbl.Down())
	})

	t.Run("out of range notes are ignored", func(t *testing.T) {
		tbl := keystate.New()
		tbl.Set(200, true)
		require.False(t, tbl.Get(200))
		require.Empty(t, tbl.Down())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		tbl := keystate.New()
		tbl.Set(64, true)
		snap := tbl.Snapshot()
		tbl.Set(64, false)
		require.True(t, snap[64])
		require.False(t, tbl.Get(64))
	})
}

func TestTableConcurrentWriters(t *testing.T) {
	tbl := keystate.New()
	var wg sync.WaitGroup

	// one writer per note range, plus a reader, like the MIDI goroutine and
	// the frame loop
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(lo int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				for n := lo; n < lo+32; n++ {
					tbl.Set(note.AbsoluteNote(n), i%2 == 0)
				}
			}
			for n := lo; n < lo+32; n++ {
				tbl.Set(note.AbsoluteNote(n), true)
			}
		}(w * 32)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = tbl.Snapshot()
			_ = tbl.Get(note.AbsoluteNote(i % note.Count))
		}
	}()
	wg.Wait()

	require.Len(t, tbl.Down(), note.Count)
}
