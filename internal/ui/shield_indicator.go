package ui

import (
	"go-alien-invasion/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ShieldIndicator выводит строку статуса щита цветом текущего состояния.
type ShieldIndicator struct {
	X, Y float64
	Face text.Face
}

// NewShieldIndicator создает индикатор с растровым шрифтом 7x13.
func NewShieldIndicator(x, y float64) *ShieldIndicator {
	return &ShieldIndicator{
		X:    x,
		Y:    y,
		Face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw рисует статус щита.
func (i *ShieldIndicator) Draw(screen *ebiten.Image, shield *component.Shield) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(i.X, i.Y)
	op.ColorScale.ScaleWithColor(shield.StatusColor())
	text.Draw(screen, shield.StatusText(), i.Face, op)
}
