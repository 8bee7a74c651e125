package render

import "image/color"

// Canvas — минимальная поверхность, на которой рисуются эффекты.
// Реализации для ebiten и raylib живут вне этого пакета, чтобы
// логика отрисовки собиралась и тестировалась без графического бэкенда.
type Canvas interface {
	StrokeCircle(cx, cy, radius, strokeWidth float32, clr color.Color)
	FillCircle(cx, cy, radius float32, clr color.Color)
	FillRect(x, y, width, height float32, clr color.Color)
}
