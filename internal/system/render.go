package system

import (
	"go-alien-invasion/internal/entity"
	"go-alien-invasion/pkg/render"
)

// RenderSystem рисует корабли
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(canvas render.Canvas) {
	for id, ship := range s.ecs.Ships {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		x := float32(pos.X - ship.Width/2)
		y := float32(pos.Y - ship.Height/2)
		canvas.FillRect(x, y, float32(ship.Width), float32(ship.Height), ship.Color)
		// Кабина
		canvas.FillCircle(float32(pos.X), float32(pos.Y-ship.Height/4), float32(ship.Width/8), render.DarkenColor(ship.Color))
	}
}
