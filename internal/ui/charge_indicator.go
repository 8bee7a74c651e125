package ui

import (
	"go-alien-invasion/internal/component"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/utils"
	"go-alien-invasion/pkg/render"
)

// ChargeIndicator рисует по кружку на каждый заряд щита.
// Заполненный кружок — доступный заряд; заряд, который сейчас
// восстанавливается, заполняется по мере перезарядки.
type ChargeIndicator struct {
	X, Y float32
}

func NewChargeIndicator(x, y float32) *ChargeIndicator {
	return &ChargeIndicator{X: x, Y: y}
}

// PipCenter возвращает центр j-го кружка.
func (i *ChargeIndicator) PipCenter(j int) (float32, float32) {
	step := float32(config.ChargePipRadius*2 + config.ChargePipSpacing)
	return i.X + config.ChargePipRadius + float32(j)*step, i.Y + config.ChargePipRadius
}

// RechargeProgress returns how far the next charge is along its cooldown, in [0, 1].
func RechargeProgress(shield *component.Shield) float32 {
	if shield.Cooldown <= 0 || shield.CooldownDuration <= 0 {
		return 0
	}
	p := 1 - shield.Cooldown/shield.CooldownDuration
	return float32(utils.Clamp(p, 0, 1))
}

func (i *ChargeIndicator) Draw(canvas render.Canvas, shield *component.Shield) {
	progress := RechargeProgress(shield)
	for j := 0; j < shield.MaxCharges; j++ {
		cx, cy := i.PipCenter(j)
		canvas.FillCircle(cx, cy, config.ChargePipRadius, config.ChargePipEmptyColor)

		switch {
		case j < shield.Charges:
			canvas.FillCircle(cx, cy, config.ChargePipRadius, shield.Color)
		case j == shield.Charges && progress > 0:
			r := utils.Lerp(0, config.ChargePipRadius, progress)
			canvas.FillCircle(cx, cy, r, config.ShieldChargingColor)
		}

		// Белая обводка
		canvas.StrokeCircle(cx, cy, config.ChargePipRadius, config.ChargePipLineWidth, config.TextLightColor)
	}
}
