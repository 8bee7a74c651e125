// internal/app/game.go
package app

import (
	"log"

	"go-alien-invasion/internal/component"
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/entity"
	"go-alien-invasion/internal/event"
	"go-alien-invasion/internal/system"
	"go-alien-invasion/internal/types"
	"go-alien-invasion/internal/utils"
	"go-alien-invasion/pkg/render"
)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	MovementSystem     *system.MovementSystem
	ShieldSystem       *system.ShieldSystem
	RenderSystem       *system.RenderSystem
	ShieldRenderSystem *system.ShieldRenderSystem
	EventDispatcher    *event.Dispatcher
	ShieldConfig       *config.ShieldConfig
	PlayerID           types.EntityID // ID корабля игрока

	watcher    *config.Watcher
	configPath string
	gameTime   float64
}

// NewGame initializes a new game instance.
func NewGame(shieldConfig *config.ShieldConfig, clock utils.Clock) *Game {
	if shieldConfig == nil {
		shieldConfig = config.DefaultShieldConfig()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:                ecs,
		MovementSystem:     system.NewMovementSystem(ecs),
		ShieldSystem:       system.NewShieldSystem(ecs, eventDispatcher),
		RenderSystem:       system.NewRenderSystem(ecs),
		ShieldRenderSystem: system.NewShieldRenderSystem(ecs, clock),
		EventDispatcher:    eventDispatcher,
		ShieldConfig:       shieldConfig,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.ShieldActivated, listener)
	eventDispatcher.Subscribe(event.ShieldExpired, listener)
	eventDispatcher.Subscribe(event.ShieldRecharged, listener)
	eventDispatcher.Subscribe(event.GameRestarted, listener)
	eventDispatcher.Subscribe(event.ConfigReloaded, listener)

	g.PlayerID = g.createPlayerShip()
	return g
}

// createPlayerShip создаёт корабль игрока со щитом внизу по центру экрана.
func (g *Game) createPlayerShip() types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = shipStartPosition()
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Ships[id] = &component.Ship{
		Width:  config.ShipWidth,
		Height: config.ShipHeight,
		Speed:  config.ShipSpeed,
		Color:  config.ShipColor,
	}
	g.ECS.Shields[id] = component.NewShield(g.ShieldConfig)
	return id
}

func shipStartPosition() *component.Position {
	return &component.Position{X: config.ScreenWidth / 2, Y: config.ShipStartY}
}

// PlayerShield возвращает щит корабля игрока.
func (g *Game) PlayerShield() *component.Shield {
	return g.ECS.Shields[g.PlayerID]
}

// ActivateShield вызывается обработчиком ввода.
func (g *Game) ActivateShield() bool {
	return g.ShieldSystem.Activate(g.PlayerID)
}

// SteerPlayer задаёт направление движения корабля (-1, 0, 1 по каждой оси).
func (g *Game) SteerPlayer(dirX, dirY float64) {
	vel, ok := g.ECS.Velocities[g.PlayerID]
	if !ok {
		return
	}
	speed := g.ECS.Ships[g.PlayerID].Speed
	vel.DX = dirX * speed
	vel.DY = dirY * speed
}

// Restart возвращает корабль и щит в начальное состояние.
func (g *Game) Restart() {
	g.gameTime = 0
	if _, ok := g.ECS.Positions[g.PlayerID]; ok {
		g.ECS.Positions[g.PlayerID] = shipStartPosition()
	}
	if vel, ok := g.ECS.Velocities[g.PlayerID]; ok {
		vel.DX, vel.DY = 0, 0
	}
	g.ShieldSystem.ResetAll()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// WatchConfig включает горячую перезагрузку конфигурации щита.
func (g *Game) WatchConfig(w *config.Watcher, path string) {
	g.watcher = w
	g.configPath = path
}

// ReloadConfig перечитывает конфиг щита. При ошибке остаются старые значения.
func (g *Game) ReloadConfig(path string) error {
	cfg, err := config.LoadShieldConfig(path)
	if err != nil {
		return err
	}
	g.ShieldConfig = cfg
	g.ShieldSystem.ApplyTuning(cfg)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ConfigReloaded, Data: path})
	return nil
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.pollConfig()

	g.gameTime += deltaTime

	g.MovementSystem.Update(deltaTime)
	g.ShieldSystem.Update(deltaTime)
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		err, ok := g.watcher.PollError()
		if !ok {
			break
		}
		log.Printf("shield config watcher: %v", err)
	}
	for {
		path, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if !sameFile(path, g.configPath) {
			continue
		}
		if err := g.ReloadConfig(g.configPath); err != nil {
			log.Printf("shield config reload failed: %v", err)
		}
	}
}

// Draw рисует корабли и щиты поверх них.
func (g *Game) Draw(canvas render.Canvas) {
	g.RenderSystem.Draw(canvas)
	g.ShieldRenderSystem.Draw(canvas)
}

// GetGameTime возвращает время с начала партии в секундах.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShieldActivated, event.ShieldExpired, event.ShieldRecharged:
		if data, ok := e.Data.(event.ShieldEventData); ok {
			log.Printf("%s: entity=%d charges=%d cooldown=%.1fs", e.Type, e.Entity, data.Charges, data.Cooldown)
		}
	case event.GameRestarted:
		log.Println("game restarted")
	case event.ConfigReloaded:
		c := l.game.ShieldConfig
		log.Printf("shield config reloaded from %v: duration=%.1fs cooldown=%.1fs charges=%d",
			e.Data, c.Duration, c.CooldownDuration, c.MaxCharges)
	}
}
