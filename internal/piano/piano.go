// Package piano connects the pointer and the screen to a key table.
//
// HandlePointer and Draw run on the frame loop and share one Offset, so
// what is hit is always what was drawn.
package piano

import (
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"github.com/minikomi/pianolight/internal/keyboard"
	"github.com/minikomi/pianolight/internal/keystate"
	"github.com/minikomi/pianolight/internal/note"
)

const (
	// Width is the pixel width the keyboard is laid out in.
	Width = 1024
	// RowHeight is the height reserved for the key row at the bottom of the
	// window.
	RowHeight = 106
	// Keys on a standard piano.
	Keys = 88

	Title = "Piano"
)

var (
	Background = colornames.Darkgray
	TextColor  = colornames.Gray
	Highlight  = colornames.Red
	BlackColor = colornames.Black
	WhiteColor = colornames.White
)

// Offset is where the keyboard's top left corner sits in the window.
type Offset struct {
	X, Y int32
}

// CenterOffset centers the keyboard horizontally and puts it at the bottom
// of a winW x winH window.
func CenterOffset(winW, winH int32) Offset {
	return Offset{X: (winW - Width) / 2, Y: winH - RowHeight}
}

// Input is one frame's pointer sample. Pressed and Released are true only on
// the frame the primary button changed.
type Input struct {
	X, Y     float32
	Pressed  bool
	Released bool
}

// Surface is what a frame is drawn on.
type Surface interface {
	Clear(c color.RGBA)
	FillRect(r keyboard.Rect, c color.RGBA)
	Text(s string, x, y int32, c color.RGBA)
}

type Piano struct {
	Layout *keyboard.Layout
	Keys   *keystate.Table
	Offset Offset
	// ReleaseAll makes a button release clear every key, including keys held
	// by MIDI. When false only keys pressed by the pointer are released.
	ReleaseAll bool

	held []note.AbsoluteNote
}

func New(layout *keyboard.Layout, keys *keystate.Table, offset Offset) *Piano {
	return &Piano{
		Layout:     layout,
		Keys:       keys,
		Offset:     offset,
		ReleaseAll: true,
	}
}

// HandlePointer hit-tests on the press edge and releases on the release
// edge. Every key under the pointer is pressed, not only the first.
func (p *Piano) HandlePointer(in Input) {
	if in.Pressed {
		x := in.X - float32(p.Offset.X)
		y := in.Y - float32(p.Offset.Y)
		for _, k := range p.Layout.Keys {
			if keyboard.Contains(k.Element, x, y) {
				logrus.Debugf("pointer pressed %s", k.Note)
				p.Keys.Set(k.Note, true)
				p.held = append(p.held, k.Note)
			}
		}
	}

	if in.Released {
		if p.ReleaseAll {
			p.Keys.ClearAll()
		} else {
			for _, n := range p.held {
				p.Keys.Set(n, false)
			}
		}
		p.held = p.held[:0]
	}
}

func (p *Piano) translate(r keyboard.Rect) keyboard.Rect {
	r.X += p.Offset.X
	r.Y += p.Offset.Y
	return r
}

func pick(down bool, neutral color.RGBA) color.RGBA {
	if down {
		return Highlight
	}
	return neutral
}

// Draw paints one frame from the current key table.
func (p *Piano) Draw(s Surface) {
	s.Clear(Background)
	s.Text(Title, 20, 20, TextColor)

	keys := p.Keys.Snapshot()
	var names []string
	for _, k := range p.Layout.Keys {
		down := keys[k.Note]
		if down {
			names = append(names, k.Note.String())
		}

		switch e := k.Element.(type) {
		case keyboard.BlackKey:
			s.FillRect(p.translate(e.Rect), pick(down, BlackColor))
		case keyboard.WhiteKey:
			c := pick(down, WhiteColor)
			s.FillRect(p.translate(e.Wide), c)
			s.FillRect(p.translate(e.Small), c)
			if e.Blind != nil {
				s.FillRect(p.translate(*e.Blind), c)
			}
		}
	}

	if len(names) > 0 {
		s.Text(strings.Join(names, " "), 20, 44, TextColor)
	}
}
