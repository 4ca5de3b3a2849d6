package note_test

import (
	"testing"

	"github.com/minikomi/pianolight/internal/note"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteNoteString(t *testing.T) {
	tests := []struct {
		n    note.AbsoluteNote
		want string
	}{
		{note.A0, "A0"},
		{22, "A#0"},
		{60, "C4"},
		{61, "C#4"},
		{69, "A4"},
		{note.C8, "C8"},
		{0, "C-1"},
		{note.Max, "G9"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.n.String())
	}
}

func TestIsBlack(t *testing.T) {
	black := map[note.NoteModifier]bool{
		note.CSharp: true,
		note.DSharp: true,
		note.FSharp: true,
		note.GSharp: true,
		note.ASharp: true,
	}
	for m := note.C; m <= note.B; m++ {
		require.Equal(t, black[m], m.IsBlack(), m.String())
	}

	require.False(t, note.A0.IsBlack())
	require.True(t, note.AbsoluteNote(22).IsBlack())
	require.False(t, note.C8.IsBlack())
}
