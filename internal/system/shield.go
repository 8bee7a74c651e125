package system

import (
	"go-alien-invasion/internal/config"
	"go-alien-invasion/internal/entity"
	"go-alien-invasion/internal/event"
	"go-alien-invasion/internal/types"
)

// ShieldSystem продвигает таймеры щитов и сообщает о переходах между состояниями.
type ShieldSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewShieldSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ShieldSystem {
	return &ShieldSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Activate пытается поднять щит сущности id.
// Неудача — обычный исход: возвращается false и отправляется ShieldRejected.
func (s *ShieldSystem) Activate(id types.EntityID) bool {
	shield, ok := s.ecs.Shields[id]
	if !ok {
		return false
	}
	if !shield.Activate() {
		s.dispatch(event.ShieldRejected, id)
		return false
	}
	s.dispatch(event.ShieldActivated, id)
	return true
}

// Update обновляет все щиты на deltaTime секунд.
func (s *ShieldSystem) Update(deltaTime float64) {
	for id, shield := range s.ecs.Shields {
		wasActive := shield.Active
		chargesBefore := shield.Charges

		shield.Update(deltaTime)

		if wasActive && !shield.Active {
			s.dispatch(event.ShieldExpired, id)
		}
		if shield.Charges > chargesBefore {
			s.dispatch(event.ShieldRecharged, id)
		}
	}
}

// ResetAll возвращает все щиты в начальное состояние.
func (s *ShieldSystem) ResetAll() {
	for _, shield := range s.ecs.Shields {
		shield.Reset()
	}
}

// ApplyTuning применяет новую конфигурацию ко всем щитам.
func (s *ShieldSystem) ApplyTuning(cfg *config.ShieldConfig) {
	for _, shield := range s.ecs.Shields {
		shield.ApplyTuning(cfg)
	}
}

func (s *ShieldSystem) dispatch(eventType event.EventType, id types.EntityID) {
	if s.eventDispatcher == nil {
		return
	}
	shield := s.ecs.Shields[id]
	s.eventDispatcher.Dispatch(event.Event{
		Type:   eventType,
		Entity: id,
		Data:   event.ShieldEventData{Charges: shield.Charges, Cooldown: shield.Cooldown},
	})
}
