package state

import (
	game "go-alien-invasion/internal/app"
	"go-alien-invasion/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	game *game.Game
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	return &MenuState{sm: sm, game: g}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "Press SPACE to start, 1 for shield, R to restart", config.ScreenWidth/2-150, config.ScreenHeight/2)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
