package systems

import (
	"log"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVolumes raises enter/exit signals on the player controller when the
// player body starts or stops overlapping a volume. Must run after movement.
func UpdateVolumes(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayerVolumes(ecs.World, e)
	})
}

func updatePlayerVolumes(w donburi.World, e *donburi.Entry) {
	playerData := components.Player.Get(e)
	if playerData.Controller == nil {
		return
	}
	obj := components.Object.Get(e).Object

	current := overlappingVolumes(w, obj)
	entered, exited := diffVolumes(playerData.Inside, current)
	if len(entered) == 0 && len(exited) == 0 {
		return
	}

	// Enters first: moving straight from one volume into its neighbour in a
	// single frame must look like an overlapping transition.
	for _, v := range entered {
		playerData.Controller.VolumeEnter(components.Volume.Get(v).ID)
	}
	// Exits are raised for unknown volumes too, so leaving one from Default
	// republishes Default.
	for range exited {
		playerData.Controller.VolumeExit()
	}

	playerData.Inside = nextInside(playerData.Inside, entered, exited)

	if len(playerData.Inside) >= cfg.Volume.OverlapWarnCount && len(entered) > 0 {
		log.Printf("Warning: player overlaps %d volumes; exits are only suppressed for two", len(playerData.Inside))
	}
}

// overlappingVolumes returns the volume entries obj currently overlaps.
func overlappingVolumes(w donburi.World, obj *resolv.Object) []*donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvVolume)
	if check == nil {
		return nil
	}

	var volumes []*donburi.Entry
	for _, vObj := range check.ObjectsByTags(tags.ResolvVolume) {
		if !overlapsAt(obj, vObj, 0, 0) {
			continue
		}
		entry, ok := vObj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		volumes = append(volumes, entry)
	}
	return volumes
}

// diffVolumes returns the volumes in current that are not in inside, and the
// volumes in inside that are not in current.
func diffVolumes(inside, current []*donburi.Entry) (entered, exited []*donburi.Entry) {
	for _, c := range current {
		if !containsEntry(inside, c) {
			entered = append(entered, c)
		}
	}
	for _, in := range inside {
		if !containsEntry(current, in) {
			exited = append(exited, in)
		}
	}
	return entered, exited
}

// nextInside keeps the surviving volumes in entry order and appends the new ones.
func nextInside(inside, entered, exited []*donburi.Entry) []*donburi.Entry {
	next := make([]*donburi.Entry, 0, len(inside)+len(entered))
	for _, in := range inside {
		if !containsEntry(exited, in) {
			next = append(next, in)
		}
	}
	return append(next, entered...)
}

func containsEntry(entries []*donburi.Entry, e *donburi.Entry) bool {
	for _, x := range entries {
		if x.Entity() == e.Entity() {
			return true
		}
	}
	return false
}
