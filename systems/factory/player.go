package factory

import (
	"image/color"

	"github.com/automoto/volumeshift/archetypes"
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player body centered on (x, y). The controller
// is attached separately once the systems that drive it exist.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Sprite.SetValue(player, components.SpriteData{
		Textures: make(map[cfg.TextureID]*ebiten.Image),
		Tint:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ScaleX:   1,
		ScaleY:   1,
		Size:     size,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateDefault,
		PreviousState: cfg.StateDefault,
	})
	components.Pop.SetValue(player, components.PopData{Scale: 1})

	addToSpace(ecs, obj)

	return player
}
