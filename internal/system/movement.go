// internal/system/movement.go
package system

import (
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/entity"
	"go-alien-invasion/internal/utils"
)

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		pos.X += vel.DX * deltaTime
		pos.Y += vel.DY * deltaTime

		// Корабль не должен выходить за пределы экрана
		if ship, isShip := s.ecs.Ships[id]; isShip {
			halfW, halfH := ship.Width/2, ship.Height/2
			pos.X = utils.Clamp(pos.X, halfW, config.ScreenWidth-halfW)
			pos.Y = utils.Clamp(pos.Y, halfH, config.ScreenHeight-halfH)
		}
	}
}
