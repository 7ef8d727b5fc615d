package components

import (
	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
)

// StateData mirrors the controller's state for systems that only read it.
type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int // frames spent in CurrentState
	Transitions   int
}

var State = donburi.NewComponentType[StateData]()
