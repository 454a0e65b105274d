package draw

import (
	"io"

	"github.com/tomz197/spaaace/internal/asset"
	"github.com/tomz197/spaaace/internal/object"
)

// Scene paints world views onto a canvas and presents them on a terminal.
type Scene struct {
	canvas   *Canvas
	out      *ChunkWriter
	sheet    *asset.Sheet
	termSize TermSizeFunc
	points   []Point
}

// NewScene creates a scene writing frames to w. termSize is queried on every
// frame so the canvas follows terminal resizes.
func NewScene(w io.Writer, sheet *asset.Sheet, termSize TermSizeFunc) *Scene {
	if termSize == nil {
		termSize = DefaultTermSizeFunc
	}
	cols, rows, _ := termSize()
	return &Scene{
		canvas:   NewScaledCanvas(cols, rows, 1, 1),
		out:      NewChunkWriter(w),
		sheet:    sheet,
		termSize: termSize,
	}
}

// Paint draws every entity of v. Entities arrive projectiles first, so
// ships end up on top.
func (s *Scene) Paint(v object.View) {
	if cols, rows, err := s.termSize(); err == nil {
		s.canvas.Resize(cols, rows)
	}
	arena := v.Arena()
	s.canvas.SetLogicalSize(arena.Width, arena.Height)
	s.canvas.Clear()

	v.Visit(s.drawEntity)
}

// drawEntity fills the entity's sprite outline around its position.
func (s *Scene) drawEntity(e object.Entity) {
	sprite := s.sheet.Sprite(e.Kind)
	if cap(s.points) < len(sprite.Outline) {
		s.points = make([]Point, len(sprite.Outline))
	}
	points := s.points[:len(sprite.Outline)]
	for i, v := range sprite.Outline {
		points[i] = Point{
			X: e.Position.X + v.X*sprite.Width,
			Y: e.Position.Y + v.Y*sprite.Height,
		}
	}
	s.canvas.DrawPolygon(points, true)
}

// Present writes the changed cells of the last painted frame.
func (s *Scene) Present() error {
	if s.canvas.force {
		ClearScreen(s.out)
	}
	if err := s.canvas.Render(s.out); err != nil {
		return err
	}
	return s.out.Flush()
}

// Canvas exposes the underlying canvas.
func (s *Scene) Canvas() *Canvas {
	return s.canvas
}
