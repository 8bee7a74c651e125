// internal/entity/ecs.go
package entity

import (
	"go-alien-invasion/internal/component"
	"go-alien-invasion/internal/types"
)

type ECS struct {
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Ships      map[types.EntityID]*component.Ship
	Shields    map[types.EntityID]*component.Shield
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Ships:      make(map[types.EntityID]*component.Ship),
		Shields:    make(map[types.EntityID]*component.Shield),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

