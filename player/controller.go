// Package player implements the player controller: directional movement and
// the state machine that switches the player's mode when it enters or leaves
// a volume.
package player

import (
	"math"

	cfg "github.com/automoto/volumeshift/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Sprite is the visual handle the controller drives.
type Sprite interface {
	// LoadTexture loads the texture at path and registers it under id.
	LoadTexture(id cfg.TextureID, path string)
	SetAppearance(a Appearance)
}

// Mover moves the player body by velocity for delta seconds, sliding along
// whatever blocks it, and returns the velocity actually achieved.
type Mover interface {
	MoveAndSlide(velocity dmath.Vec2, delta float64) dmath.Vec2
}

// InputSource reports whether a named input action is held.
type InputSource interface {
	IsActionPressed(action cfg.ActionID) bool
}

// Listener is called after every state transition.
type Listener func(s State)

// Subscription identifies a registered Listener.
type Subscription int

type subscriber struct {
	id Subscription
	fn Listener
}

// Controller owns the player's current state and movement.
type Controller struct {
	// Speed is the movement speed in pixels per second. Adjust before Ready.
	Speed int

	sprite Sprite
	mover  Mover
	input  InputSource

	state            State
	volumeTransition bool

	velocity   dmath.Vec2
	speedScale float64
	appearance Appearance

	listeners []subscriber
	nextSub   Subscription
}

// NewController creates a controller with the configured default speed.
// Any collaborator may be nil.
func NewController(sprite Sprite, mover Mover, input InputSource) *Controller {
	return &Controller{
		Speed:      cfg.Player.Speed,
		sprite:     sprite,
		mover:      mover,
		input:      input,
		speedScale: 1,
	}
}

// Ready preloads the player textures and enters the Default state.
func (c *Controller) Ready() {
	if c.sprite != nil {
		c.sprite.LoadTexture(cfg.TextureCircle, cfg.Player.TexturePaths[cfg.TextureCircle])
		c.sprite.LoadTexture(cfg.TextureSquare, cfg.Player.TexturePaths[cfg.TextureSquare])
	}

	state, _ := NewState(cfg.StateDefault)
	c.transition(state)
}

// PhysicsTick reads directional input and moves the player.
func (c *Controller) PhysicsTick(delta float64) {
	c.velocity = c.inputVelocity()
	if c.mover != nil {
		c.velocity = c.mover.MoveAndSlide(c.velocity, delta)
	}
}

// VolumeEnter switches to the state mapped to id. Unrecognized ids cause no
// transition.
func (c *Controller) VolumeEnter(id cfg.StateID) {
	// Entering while already in a volume means the exit that follows belongs
	// to the volume we just left.
	c.volumeTransition = c.state.ID() != cfg.StateDefault

	var (
		state State
		ok    bool
	)
	switch id {
	case cfg.StateVolume1, cfg.StateVolume2, cfg.StateVolume3:
		state, ok = NewState(id)
	}
	if !ok {
		return
	}
	c.transition(state)
}

// VolumeExit reverts to Default unless the exit follows a direct
// volume-to-volume entry, in which case the latch is consumed instead.
func (c *Controller) VolumeExit() {
	if c.volumeTransition {
		c.volumeTransition = false
		return
	}

	state, _ := NewState(cfg.StateDefault)
	c.transition(state)
}

// Subscribe registers fn to be called after every transition.
func (c *Controller) Subscribe(fn Listener) Subscription {
	c.nextSub++
	c.listeners = append(c.listeners, subscriber{id: c.nextSub, fn: fn})
	return c.nextSub
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (c *Controller) Unsubscribe(sub Subscription) {
	for i, l := range c.listeners {
		if l.id == sub {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Velocity returns the velocity achieved on the last physics tick.
func (c *Controller) Velocity() dmath.Vec2 {
	return c.velocity
}

// VolumeTransition reports whether the next exit will be suppressed.
func (c *Controller) VolumeTransition() bool {
	return c.volumeTransition
}

// Appearance returns what the current state last applied.
func (c *Controller) Appearance() Appearance {
	return c.appearance
}

// EffectiveSpeed is Speed scaled by the current state.
func (c *Controller) EffectiveSpeed() float64 {
	return float64(c.Speed) * c.speedScale
}

func (c *Controller) transition(s State) {
	c.state = s
	c.state.Execute(c)
	c.publish()
}

func (c *Controller) publish() {
	// Copy so listeners may unsubscribe while being notified.
	listeners := make([]subscriber, len(c.listeners))
	copy(listeners, c.listeners)
	for _, l := range listeners {
		l.fn(c.state)
	}
}

func (c *Controller) apply(a Appearance, speedScale float64) {
	c.appearance = a
	c.speedScale = speedScale
	if c.sprite != nil {
		c.sprite.SetAppearance(a)
	}
}

func (c *Controller) inputVelocity() dmath.Vec2 {
	var v dmath.Vec2
	if c.input == nil {
		return v
	}

	if c.input.IsActionPressed(cfg.ActionUp) {
		v.Y -= 1
	}
	if c.input.IsActionPressed(cfg.ActionDown) {
		v.Y += 1
	}
	if c.input.IsActionPressed(cfg.ActionLeft) {
		v.X -= 1
	}
	if c.input.IsActionPressed(cfg.ActionRight) {
		v.X += 1
	}

	// Prevent diagonal movement from being faster than axis movement.
	length := math.Hypot(v.X, v.Y)
	if length == 0 {
		return v
	}
	speed := c.EffectiveSpeed()
	return dmath.Vec2{X: v.X / length * speed, Y: v.Y / length * speed}
}
