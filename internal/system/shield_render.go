package system

import (
	"math"

	"go-alien-invasion/internal/component"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/entity"
	"go-alien-invasion/internal/utils"
	"go-alien-invasion/pkg/render"
)

// ShieldRenderSystem рисует активные щиты вокруг кораблей.
type ShieldRenderSystem struct {
	ecs   *entity.ECS
	clock utils.Clock
}

func NewShieldRenderSystem(ecs *entity.ECS, clock utils.Clock) *ShieldRenderSystem {
	return &ShieldRenderSystem{ecs: ecs, clock: clock}
}

func (s *ShieldRenderSystem) Draw(canvas render.Canvas) {
	nowMs := s.clock.NowMillis()
	for id, shield := range s.ecs.Shields {
		pos, hasPos := s.ecs.Positions[id]
		ship, hasShip := s.ecs.Ships[id]
		if !hasPos || !hasShip {
			continue
		}
		DrawShield(canvas, shield, *pos, ship.HalfExtent(), nowMs)
	}
}

// ShieldRings describes the two concentric circles of an active shield.
type ShieldRings struct {
	OuterRadius, OuterWidth float32
	InnerRadius, InnerWidth float32
}

// ComputeShieldRings derives ring geometry from the ship size and the pulse value.
// Radius offset and stroke width snap to whole pixels.
func ComputeShieldRings(shield *component.Shield, halfExtent float64, pulse float64) ShieldRings {
	currentWidth := math.Floor(float64(shield.Width) + pulse*config.ShieldPulseWidth)
	currentRadius := float64(shield.RadiusIncrease) + math.Floor(pulse*config.ShieldPulseRadius)
	outer := halfExtent + currentRadius
	return ShieldRings{
		OuterRadius: float32(outer),
		OuterWidth:  float32(currentWidth),
		InnerRadius: float32(outer - config.ShieldInnerInset),
		InnerWidth:  1,
	}
}

// DrawShield draws an active shield centred on center. Inactive shields draw nothing.
func DrawShield(canvas render.Canvas, shield *component.Shield, center component.Position, halfExtent float64, nowMs int64) {
	if !shield.Active {
		return
	}

	pulse := render.Pulse(nowMs, config.ShieldPulsePeriodMs)
	rings := ComputeShieldRings(shield, halfExtent, pulse)
	cx, cy := float32(center.X), float32(center.Y)

	// Внешнее кольцо
	canvas.StrokeCircle(cx, cy, rings.OuterRadius, rings.OuterWidth, shield.Color)

	// Внутреннее кольцо, светлее и полупрозрачное
	innerColor := render.LightenColor(shield.Color, config.ShieldInnerLighten, config.ShieldInnerAlpha)
	canvas.StrokeCircle(cx, cy, rings.InnerRadius, rings.InnerWidth, innerColor)
}
