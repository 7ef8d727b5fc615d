package player

import (
	"image/color"

	cfg "github.com/automoto/volumeshift/config"
)

// Appearance is what a state asks the visual handle to show.
type Appearance struct {
	Texture cfg.TextureID
	Tint    color.RGBA
	ScaleX  float64
	ScaleY  float64
}

// State is one player mode. A fresh State is built by NewState on every
// transition; states hold no data beyond their tag and carry no transition
// logic.
type State struct {
	id      cfg.StateID
	execute func(c *Controller)
}

// stateTable dispatches a StateID to the effect its state applies.
var stateTable = map[cfg.StateID]func(c *Controller){
	cfg.StateDefault: executeDefault,
	cfg.StateVolume1: executeBanana,
	cfg.StateVolume2: executeSquare,
	cfg.StateVolume3: executeShort,
}

// NewState returns the state tagged id. ok is false when no state is
// registered for id.
func NewState(id cfg.StateID) (State, bool) {
	fn, ok := stateTable[id]
	if !ok {
		return State{}, false
	}
	return State{id: id, execute: fn}, true
}

// ID returns the state's tag.
func (s State) ID() cfg.StateID {
	return s.id
}

// Execute applies the state's appearance and movement parameters to c.
func (s State) Execute(c *Controller) {
	if s.execute == nil {
		return
	}
	s.execute(c)
}

func (s State) String() string {
	return s.id.String()
}

func executeDefault(c *Controller) {
	c.apply(Appearance{
		Texture: cfg.TextureCircle,
		Tint:    cfg.White,
		ScaleX:  1,
		ScaleY:  1,
	}, 1)
}

func executeBanana(c *Controller) {
	c.apply(Appearance{
		Texture: cfg.TextureCircle,
		Tint:    cfg.Yellow,
		ScaleX:  cfg.Player.BananaScaleX,
		ScaleY:  cfg.Player.BananaScaleY,
	}, 1)
}

func executeSquare(c *Controller) {
	c.apply(Appearance{
		Texture: cfg.TextureSquare,
		Tint:    cfg.White,
		ScaleX:  1,
		ScaleY:  1,
	}, 1)
}

func executeShort(c *Controller) {
	c.apply(Appearance{
		Texture: cfg.TextureCircle,
		Tint:    cfg.White,
		ScaleX:  1,
		ScaleY:  cfg.Player.ShortScaleY,
	}, cfg.Player.ShortSpeedScale)
}
