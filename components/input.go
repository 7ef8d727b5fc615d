package components

import (
	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
}

// IsActionPressed reports whether action is held this frame.
func (d *InputData) IsActionPressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return d.Current[action]
}

var Input = donburi.NewComponentType[InputData]()
