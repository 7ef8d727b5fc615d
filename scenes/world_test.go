package scenes

import (
	"testing"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/leveldata"
	"github.com/automoto/volumeshift/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCloseBeforeConfigure(t *testing.T) {
	ws := NewWorldScene(Options{})
	ws.Close()

	if ws.options.LevelPath != cfg.C.LevelPath {
		t.Errorf("Expected default level path, got %q", ws.options.LevelPath)
	}
}

func TestCloseReleasesControllerListeners(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level := &leveldata.Level{
		MapWidth:    320,
		MapHeight:   240,
		SpawnPoints: []leveldata.SpawnPoint{{X: 100, Y: 100}},
	}
	entry := buildLevel(e, level)

	ctrl := player.NewController(nil, nil, nil)
	calls := 0
	playerData := components.Player.Get(entry)
	playerData.Controller = ctrl
	playerData.Subscription = ctrl.Subscribe(func(player.State) { calls++ })
	ctrl.Ready()

	ws := &WorldScene{ecs: e}
	ws.Close()
	ctrl.VolumeEnter(cfg.StateVolume1)

	if calls != 1 {
		t.Errorf("Expected only the Ready notification, got %d", calls)
	}
}
