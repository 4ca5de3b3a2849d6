// Package keyboard lays out the on-screen rectangles of a piano keyboard.
//
// A layout is built once and never changes. Keys are ordered left to right;
// white key tops are cut out around their black neighbours, so keys can be
// drawn in that order without overlapping.
package keyboard

import (
	"errors"
	"fmt"

	"github.com/minikomi/pianolight/internal/note"
)

// LowestNote is the note of the leftmost key.
const LowestNote = note.A0

const (
	gap = 1
	// minimum white key width in pixels
	minKeyWidth = 4
)

var (
	ErrKeyCount = errors.New("key count out of range")
	ErrWidth    = errors.New("width too small for key count")
)

// Rect is a pixel rectangle relative to the top left of the keyboard.
type Rect struct {
	X, Y, W, H int32
}

// Contains reports whether (x, y) lies inside r. All four edges count as
// inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= float32(r.X) && x <= float32(r.X+r.W) &&
		y >= float32(r.Y) && y <= float32(r.Y+r.H)
}

// Element is either a BlackKey or a WhiteKey.
type Element interface {
	element()
}

type BlackKey struct {
	Rect Rect
}

// WhiteKey is drawn as a full width Wide part under the black keys and a
// Small part between them. Blind fills the cut-out of a black key that lies
// past the end of the keyboard.
type WhiteKey struct {
	Wide  Rect
	Small Rect
	Blind *Rect
}

func (BlackKey) element() {}
func (WhiteKey) element() {}

// Contains reports whether any rectangle of e holds (x, y).
func Contains(e Element, x, y float32) bool {
	switch k := e.(type) {
	case BlackKey:
		return k.Rect.Contains(x, y)
	case WhiteKey:
		return k.Wide.Contains(x, y) ||
			k.Small.Contains(x, y) ||
			(k.Blind != nil && k.Blind.Contains(x, y))
	}
	return false
}

type Key struct {
	Note    note.AbsoluteNote
	Element Element
}

type Layout struct {
	Keys []Key
	// Width is the requested width; the keys are centered within it.
	Width  int32
	Height int32
}

// NoteAt maps a key index to its MIDI note.
func NoteAt(i int) note.AbsoluteNote {
	return LowestNote + note.AbsoluteNote(i)
}

// New lays out keyCount keys starting at LowestNote across width pixels.
func New(keyCount, width int) (*Layout, error) {
	if keyCount < 1 || int(LowestNote)+keyCount-1 > int(note.Max) {
		return nil, fmt.Errorf("%w: %d", ErrKeyCount, keyCount)
	}

	whites := 0
	for i := 0; i < keyCount; i++ {
		if !NoteAt(i).IsBlack() {
			whites++
		}
	}

	w := int32(width / whites)
	if w < minKeyWidth {
		return nil, fmt.Errorf("%w: %d pixels for %d white keys", ErrWidth, width, whites)
	}
	kw := w - gap
	whiteH := w * 11 / 2
	blackH := whiteH * 2 / 3
	bw := w * 3 / 5
	if bw < 2 {
		bw = 2
	}
	// a black key reaches rc pixels left of its boundary and lc right of it
	rc := bw / 2
	lc := bw - rc

	l := &Layout{
		Keys:   make([]Key, 0, keyCount),
		Width:  int32(width),
		Height: whiteH,
	}

	x := (int32(width) - w*int32(whites)) / 2
	last := keyCount - 1
	for i := 0; i < keyCount; i++ {
		n := NoteAt(i)
		if n.IsBlack() {
			l.Keys = append(l.Keys, Key{
				Note:    n,
				Element: BlackKey{Rect{X: x - rc, Y: 0, W: bw, H: blackH}},
			})
			continue
		}

		m := n.Modifier()
		cutLeft := (m + 11).IsBlack()
		cutRight := (m + 1).IsBlack()
		missingLeft := cutLeft && i == 0
		missingRight := cutRight && i == last

		left, right := x, x+kw
		if cutLeft {
			left = x + lc
		}
		if cutRight {
			right = x + w - rc
		}

		var blind *Rect
		switch {
		case missingLeft && missingRight:
			left, right = x, x+kw
		case missingLeft:
			blind = &Rect{X: x, Y: 0, W: lc, H: blackH}
		case missingRight:
			blind = &Rect{X: right, Y: 0, W: x + kw - right, H: blackH}
		}

		l.Keys = append(l.Keys, Key{
			Note: n,
			Element: WhiteKey{
				Wide:  Rect{X: x, Y: blackH, W: kw, H: whiteH - blackH},
				Small: Rect{X: left, Y: 0, W: right - left, H: blackH},
				Blind: blind,
			},
		})
		x += w
	}

	return l, nil
}
