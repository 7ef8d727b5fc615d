package systems

import (
	"log"

	"github.com/automoto/volumeshift/assets"
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/player"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed physics step in seconds.
const tickDelta = 1.0 / float64(ebiten.DefaultTPS)

// AttachController builds the player controller for a player entity, wires
// its collaborators and event bridge, and runs Ready. speed overrides the
// configured speed when positive.
func AttachController(e *ecs.ECS, entry *donburi.Entry, speed int) *player.Controller {
	ctrl := player.NewController(
		spriteHandle{entry: entry},
		bodyMover{obj: components.Object.Get(entry).Object},
		worldInput{world: e.World},
	)
	if speed > 0 {
		ctrl.Speed = speed
	}

	playerData := components.Player.Get(entry)
	playerData.Controller = ctrl
	playerData.Subscription = bridgeStates(e.World, entry, ctrl)

	ctrl.Ready()
	return ctrl
}

// DetachController releases the event bridge of every player.
func DetachController(e *ecs.ECS) {
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		playerData := components.Player.Get(entry)
		if playerData.Controller == nil {
			return
		}
		playerData.Controller.Unsubscribe(playerData.Subscription)
	})
}

func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		playerData := components.Player.Get(e)
		if playerData.Controller == nil {
			return
		}
		playerData.Controller.PhysicsTick(tickDelta)
	})
}

// spriteHandle is the controller's visual handle over the entry's Sprite
// component.
type spriteHandle struct {
	entry *donburi.Entry
}

func (h spriteHandle) LoadTexture(id cfg.TextureID, path string) {
	img, err := assets.LoadTexture(path)
	if err != nil {
		log.Printf("Warning: Could not load texture %s: %v", path, err)
		return
	}
	components.Sprite.Get(h.entry).Textures[id] = img
}

func (h spriteHandle) SetAppearance(a player.Appearance) {
	sprite := components.Sprite.Get(h.entry)
	sprite.Image = sprite.Textures[a.Texture]
	sprite.Tint = a.Tint
	sprite.ScaleX = a.ScaleX
	sprite.ScaleY = a.ScaleY
}
