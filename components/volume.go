package components

import (
	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
)

// VolumeData describes a trigger zone
type VolumeData struct {
	ID    cfg.StateID
	Known bool   // false when the level used a key with no state
	Name  string // object name from the level, for debugging
}

var Volume = donburi.NewComponentType[VolumeData]()
