package main

import (
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/minikomi/pianolight/internal/keyboard"
)

const (
	defaultFont = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	fontSize    = 16
)

// sdlSurface draws piano frames with an SDL renderer.
type sdlSurface struct {
	renderer *sdl.Renderer
	// nil when no font could be loaded; text is skipped
	font *ttf.Font
}

func newSurface(renderer *sdl.Renderer, fontPath string) *sdlSurface {
	s := &sdlSurface{renderer: renderer}

	if err := ttf.Init(); err != nil {
		logrus.Warnf("no text: init ttf: %v", err)
		return s
	}
	font, err := ttf.OpenFont(fontPath, fontSize)
	if err != nil {
		logrus.Warnf("no text: open font %q: %v", fontPath, err)
		ttf.Quit()
		return s
	}
	s.font = font
	return s
}

func (s *sdlSurface) Close() {
	if s.font != nil {
		s.font.Close()
		ttf.Quit()
	}
}

func (s *sdlSurface) setColor(c color.RGBA) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (s *sdlSurface) Clear(c color.RGBA) {
	s.setColor(c)
	s.renderer.Clear()
}

func (s *sdlSurface) FillRect(r keyboard.Rect, c color.RGBA) {
	s.setColor(c)
	rect := sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
	s.renderer.FillRect(&rect)
}

func (s *sdlSurface) Text(text string, x, y int32, c color.RGBA) {
	if s.font == nil || text == "" {
		return
	}

	solid, err := s.font.RenderUTF8Blended(text, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		logrus.Debugf("render %q: %v", text, err)
		return
	}
	defer solid.Free()

	texture, err := s.renderer.CreateTextureFromSurface(solid)
	if err != nil {
		logrus.Debugf("texture %q: %v", text, err)
		return
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: solid.W, H: solid.H}
	s.renderer.Copy(texture, nil, &rect)
}
