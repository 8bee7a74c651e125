// Package ebitencanvas adapts *ebiten.Image to render.Canvas.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-alien-invasion/pkg/render"
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas рисует на *ebiten.Image через пакет vector.
type Canvas struct {
	Screen *ebiten.Image
}

func New(screen *ebiten.Image) *Canvas {
	return &Canvas{Screen: screen}
}

func (c *Canvas) StrokeCircle(cx, cy, radius, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(c.Screen, cx, cy, radius, strokeWidth, clr, true)
}

func (c *Canvas) FillCircle(cx, cy, radius float32, clr color.Color) {
	vector.DrawFilledCircle(c.Screen, cx, cy, radius, clr, true)
}

func (c *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(c.Screen, x, y, width, height, clr, true)
}
