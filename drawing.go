package cubewire

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas adapts an ebiten image to the Canvas interface the renderer
// draws through.
type ScreenCanvas struct {
	screen *ebiten.Image
	col    color.Color
}

func NewScreenCanvas(screen *ebiten.Image, col color.Color) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		col:    col,
	}
}

func (s *ScreenCanvas) SetColor(col color.Color) {
	s.col = col
}

func (s *ScreenCanvas) Line(x0, y0, x1, y1 int) {
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, s.col, false)
}
