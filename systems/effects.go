package systems

import (
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the pop tweens started by state changes.
func UpdateEffects(ecs *ecs.ECS) {
	components.Pop.Each(ecs.World, func(e *donburi.Entry) {
		pop := components.Pop.Get(e)
		if pop.Tween == nil {
			return
		}

		scale, done := pop.Tween.Update(float32(tickDelta))
		pop.Scale = float64(scale)
		if done {
			pop.Tween = nil
			pop.Scale = 1
		}
	})
}

// TriggerPop restarts the pop effect on an entity that has a Pop component.
func TriggerPop(entry *donburi.Entry) {
	if !entry.HasComponent(components.Pop) {
		return
	}
	pop := components.Pop.Get(entry)
	pop.Tween = gween.New(cfg.Effects.PopScale, 1, cfg.Effects.PopDuration, ease.OutBack)
	pop.Scale = float64(cfg.Effects.PopScale)
}

func onStateChangedPop(w donburi.World, evt StateChanged) {
	if evt.Player == nil || !evt.Player.Valid() {
		return
	}
	TriggerPop(evt.Player)
}
