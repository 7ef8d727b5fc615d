package archetypes

import (
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Sprite,
		components.State,
		components.Pop,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Volume = newArchetype(
		tags.Volume,
		components.Volume,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
