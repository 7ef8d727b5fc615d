package components

import (
	"github.com/automoto/volumeshift/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *player.Controller

	// Volumes the player currently overlaps, in the order they were entered.
	Inside []*donburi.Entry

	// Bridge subscription on the controller, released when the scene closes.
	Subscription player.Subscription
}

var Player = donburi.NewComponentType[PlayerData]()
