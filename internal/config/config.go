// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06
	WindowTitle  = "Alien Invasion"

	ShipWidth  = 60.0
	ShipHeight = 48.0
	ShipSpeed  = 300.0 // pixels per second
	ShipStartY = ScreenHeight - 80

	// Щит: значения по умолчанию, могут быть переопределены data/shield.yaml
	ShieldDuration         = 5.0  // seconds
	ShieldCooldownDuration = 10.0 // seconds
	ShieldMaxCharges       = 3
	ShieldWidth            = 3
	ShieldRadiusIncrease   = 15
	ShieldPulsePeriodMs    = 1000
	ShieldPulseRadius      = 5 // на сколько пикселей «дышит» внешнее кольцо
	ShieldPulseWidth       = 2
	ShieldInnerInset       = 5
	ShieldInnerLighten     = 50
	ShieldInnerAlpha       = 100

	ShieldConfigPath = "data/shield.yaml"

	HUDMarginX         = 20
	HUDMarginY         = 20
	ChargePipRadius    = 6.0
	ChargePipSpacing   = 6.0
	ChargePipOffsetY   = 24
	ChargePipLineWidth = 1.5
)

var (
	BackgroundColor = color.RGBA{10, 10, 30, 255}
	ShipColor       = color.RGBA{200, 200, 210, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}

	ShieldColor = color.RGBA{0, 191, 255, 255} // Light blue

	// Цвета строки статуса щита
	ShieldActiveColor   = color.RGBA{0, 191, 255, 255}
	ShieldChargingColor = color.RGBA{255, 165, 0, 255}
	ShieldReadyColor    = color.RGBA{0, 255, 0, 255}
	ShieldDepletedColor = color.RGBA{255, 0, 0, 255}

	ChargePipEmptyColor = color.RGBA{40, 40, 60, 255}
)
