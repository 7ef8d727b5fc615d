package systems

import (
	"log"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bridgeStates mirrors every controller transition into the entry's State
// component and publishes it on the world event bus.
func bridgeStates(w donburi.World, entry *donburi.Entry, ctrl *player.Controller) player.Subscription {
	return ctrl.Subscribe(func(s player.State) {
		state := components.State.Get(entry)
		previous := state.CurrentState

		state.PreviousState = previous
		state.CurrentState = s.ID()
		state.StateTimer = 0
		state.Transitions++

		StateChangedEvent.Publish(w, StateChanged{
			Player:   entry,
			Previous: previous,
			Current:  s.ID(),
		})
	})
}

// UpdateStates advances state timers and delivers the transitions queued
// this frame.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})

	ProcessEvents(ecs.World)
}

// traceStateChange logs transitions when tracing is enabled.
func traceStateChange(w donburi.World, evt StateChanged) {
	if !cfg.Debug.Trace {
		return
	}
	log.Printf("state: %s -> %s", evt.Previous, evt.Current)
}
