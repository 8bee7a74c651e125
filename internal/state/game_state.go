// internal/state/game_state.go
package state

import (
	"fmt"

	game "go-alien-invasion/internal/app"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/ui"
	"go-alien-invasion/pkg/render/ebitencanvas"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm              *StateMachine
	game            *game.Game
	shieldIndicator *ui.ShieldIndicator
	chargeIndicator *ui.ChargeIndicator
	debug           bool
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	return &GameState{
		sm:   sm,
		game: g,
		shieldIndicator: ui.NewShieldIndicator(
			config.HUDMarginX,
			config.HUDMarginY,
		),
		chargeIndicator: ui.NewChargeIndicator(
			float32(config.HUDMarginX),
			float32(config.HUDMarginY+config.ChargePipOffsetY),
		),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.ActivateShield()
	}

	g.game.SteerPlayer(axis(ebiten.KeyLeft, ebiten.KeyRight), axis(ebiten.KeyUp, ebiten.KeyDown))
	g.game.Update(deltaTime)
}

// axis возвращает -1, 0 или 1 в зависимости от зажатых клавиш.
func axis(negative, positive ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(negative) {
		v--
	}
	if ebiten.IsKeyPressed(positive) {
		v++
	}
	return v
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	canvas := ebitencanvas.New(screen)
	g.game.Draw(canvas)

	shield := g.game.PlayerShield()
	if shield != nil {
		g.shieldIndicator.Draw(screen, shield)
		g.chargeIndicator.Draw(canvas, shield)
	}

	if g.debug && shield != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  t=%.1fs  status=%s",
			ebiten.ActualTPS(), g.game.GetGameTime(), shield.Status()), config.HUDMarginX, config.ScreenHeight-20)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
