package note

import "strconv"

// NoteModifier is a pitch class, counted in semitones up from C.
type NoteModifier uint8

const (
	C = NoteModifier(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var modifierNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (m NoteModifier) String() string {
	return modifierNames[m%12]
}

// IsBlack reports whether the pitch class sits on a black piano key.
func (m NoteModifier) IsBlack() bool {
	switch m % 12 {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

// AbsoluteNote is a MIDI note number, C4 = 60.
type AbsoluteNote uint8

const (
	// A0 is the lowest key of a standard 88 key piano.
	A0 AbsoluteNote = 21
	// C8 is the highest.
	C8 AbsoluteNote = 108
	// Max is the highest note a 7 bit MIDI data byte can carry.
	Max AbsoluteNote = 127
	// Count is the number of distinct MIDI note numbers.
	Count = int(Max) + 1
)

func (n AbsoluteNote) Modifier() NoteModifier {
	return NoteModifier(n % 12)
}

func (n AbsoluteNote) Octave() int {
	return int(n)/12 - 1
}

func (n AbsoluteNote) IsBlack() bool {
	return n.Modifier().IsBlack()
}

func (n AbsoluteNote) Valid() bool {
	return n <= Max
}

// String returns the scientific pitch name, ex: "A0", "C#4".
func (n AbsoluteNote) String() string {
	return n.Modifier().String() + strconv.Itoa(n.Octave())
}
