package factory

import (
	"github.com/automoto/volumeshift/archetypes"
	"github.com/automoto/volumeshift/components"
	"github.com/automoto/volumeshift/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
	})
	return entry
}

// PopulateLevel creates walls and volumes for level. The space must exist.
func PopulateLevel(ecs *ecs.ECS, level *leveldata.Level) {
	for _, w := range level.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, v := range level.Volumes {
		CreateVolume(ecs, v.X, v.Y, v.W, v.H, v.Key, v.Name)
	}
}
