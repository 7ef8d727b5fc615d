package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PopData scales the sprite briefly after a state change
type PopData struct {
	Tween *gween.Tween // nil when idle
	Scale float64      // current multiplier applied on top of the sprite scale
}

var Pop = donburi.NewComponentType[PopData]()
