package main

import (
	"image/color"
	"log"

	game "go-alien-invasion/internal/app"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibCanvas реализует render.Canvas поверх Raylib
type raylibCanvas struct{}

func toRL(c color.Color) rl.Color {
	// color.Color отдаёт premultiplied-значения, Raylib ждёт обычные
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (raylibCanvas) StrokeCircle(cx, cy, radius, strokeWidth float32, clr color.Color) {
	inner := max(0, radius-strokeWidth/2)
	rl.DrawRing(rl.NewVector2(cx, cy), inner, radius+strokeWidth/2, 0, 360, 64, toRL(clr))
}

func (raylibCanvas) FillCircle(cx, cy, radius float32, clr color.Color) {
	rl.DrawCircleV(rl.NewVector2(cx, cy), radius, toRL(clr))
}

func (raylibCanvas) FillRect(x, y, width, height float32, clr color.Color) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(width, height), toRL(clr))
}

// millisClock берёт время Raylib, чтобы пульсация совпадала с кадрами окна
type millisClock struct{}

func (millisClock) NowMillis() int64 {
	return int64(rl.GetTime() * 1000)
}

var _ utils.Clock = millisClock{}

func main() {
	shieldConfig, err := config.LoadShieldConfigOrDefault(config.ShieldConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Raylib Shield Viewer | 1 - Shield, R - Restart, Arrows - Move")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(shieldConfig, millisClock{})
	canvas := raylibCanvas{}
	bg := toRL(config.BackgroundColor)

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		dt := min(float64(rl.GetFrameTime()), config.MaxDeltaTime)

		if rl.IsKeyPressed(rl.KeyOne) {
			g.ActivateShield()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			g.Restart()
		}
		g.SteerPlayer(axis(rl.KeyLeft, rl.KeyRight), axis(rl.KeyUp, rl.KeyDown))
		g.Update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		g.Draw(canvas)
		if shield := g.PlayerShield(); shield != nil {
			rl.DrawText(shield.StatusText(), config.HUDMarginX, config.HUDMarginY, 20, toRL(shield.StatusColor()))
		}
		rl.EndDrawing()
	}
}

func axis(negative, positive int32) float64 {
	v := 0.0
	if rl.IsKeyDown(negative) {
		v--
	}
	if rl.IsKeyDown(positive) {
		v++
	}
	return v
}
