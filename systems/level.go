package systems

import (
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the volumes as translucent zones and the walls on top of
// them.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs.World, screen)
	if !ok {
		return
	}

	tags.Volume.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		volume := components.Volume.Get(e)

		c := cfg.Volume.UnknownColor
		if volume.Known {
			c = cfg.Volume.Colors[volume.ID]
		}
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), c, false)
	})

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.WallColor, false)
	})
}
