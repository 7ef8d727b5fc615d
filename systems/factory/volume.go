package factory

import (
	"github.com/automoto/volumeshift/archetypes"
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateVolume creates a trigger zone. key is the volume name from the level;
// keys with no state still produce a volume so entering it reaches the
// controller as an unrecognized id.
func CreateVolume(ecs *ecs.ECS, x, y, w, h float64, key, name string) *donburi.Entry {
	volume := archetypes.Volume.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvVolume)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = volume

	components.Object.SetValue(volume, components.ObjectData{Object: obj})

	id, known := cfg.ParseStateID(key)
	components.Volume.SetValue(volume, components.VolumeData{
		ID:    id,
		Known: known,
		Name:  name,
	})

	addToSpace(ecs, obj)

	return volume
}
