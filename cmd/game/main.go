// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	game "go-alien-invasion/internal/app"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/state"
	"go-alien-invasion/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", config.ShieldConfigPath, "path to shield tuning file")
	watch := flag.Bool("watch", false, "reload shield tuning when the file changes")
	startFromMenu := flag.Bool("menu", false, "start from the menu instead of the game")
	flag.Parse()

	shieldConfig, err := config.LoadShieldConfigOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(shieldConfig, utils.NewSystemClock())
	if *watch {
		w, err := config.NewWatcher(filepath.Dir(*configPath))
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		g.WatchConfig(w, *configPath)
		log.Printf("watching %s for changes", *configPath)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if *startFromMenu {
		sm.SetState(state.NewMenuState(sm, g))
	} else {
		sm.SetState(state.NewGameState(sm, g))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
