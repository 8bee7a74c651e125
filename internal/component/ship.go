package component

import (
	"image/color"
	"math"
)

// Ship — корабль игрока. Размер задаёт ограничивающий прямоугольник,
// вокруг которого рисуется щит.
type Ship struct {
	Width, Height float64
	Speed         float64
	Color         color.RGBA
}

// HalfExtent returns half of the larger side of the ship's bounding box,
// rounded down to a whole pixel.
func (s *Ship) HalfExtent() float64 {
	return math.Floor(max(s.Width, s.Height) / 2)
}
