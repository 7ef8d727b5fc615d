package systems

import (
	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChanged is published on the world's event bus after the player
// controller applies a new state.
type StateChanged struct {
	Player   *donburi.Entry
	Previous cfg.StateID
	Current  cfg.StateID
}

var StateChangedEvent = events.NewEventType[StateChanged]()

// ProcessEvents delivers queued events to their world subscribers.
func ProcessEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}

// SubscribeStateChanges registers the systems package's own StateChanged
// consumers: tracing, audio cues and the pop effect.
func SubscribeStateChanges(w donburi.World) {
	StateChangedEvent.Subscribe(w, traceStateChange)
	StateChangedEvent.Subscribe(w, onStateChangedAudio)
	StateChangedEvent.Subscribe(w, onStateChangedPop)
}
