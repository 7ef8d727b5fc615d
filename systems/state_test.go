package systems

import (
	"testing"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/automoto/volumeshift/player"
	"github.com/automoto/volumeshift/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newBridgedPlayer(t *testing.T) (*ecs.ECS, *donburi.Entry, *player.Controller, *[]StateChanged) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	entry := factory.CreatePlayer(e, 100, 100)

	ctrl := player.NewController(nil, nil, nil)
	playerData := components.Player.Get(entry)
	playerData.Controller = ctrl
	playerData.Subscription = bridgeStates(e.World, entry, ctrl)

	var got []StateChanged
	StateChangedEvent.Subscribe(e.World, func(w donburi.World, evt StateChanged) {
		got = append(got, evt)
	})
	return e, entry, ctrl, &got
}

func TestBridgePublishesAfterProcessing(t *testing.T) {
	e, entry, ctrl, got := newBridgedPlayer(t)

	ctrl.Ready()
	ctrl.VolumeEnter(cfg.StateVolume2)

	if len(*got) != 0 {
		t.Errorf("Expected events to be queued until processed, got %d", len(*got))
	}

	UpdateStates(e)

	if len(*got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(*got))
	}
	last := (*got)[1]
	if last.Previous != cfg.StateDefault || last.Current != cfg.StateVolume2 {
		t.Errorf("Expected Default -> Square, got %v -> %v", last.Previous, last.Current)
	}
	if last.Player.Entity() != entry.Entity() {
		t.Error("Expected event to carry the player entry")
	}

	state := components.State.Get(entry)
	if state.CurrentState != cfg.StateVolume2 || state.PreviousState != cfg.StateDefault {
		t.Errorf("Expected State component Square (prev Default), got %v (prev %v)", state.CurrentState, state.PreviousState)
	}
	if state.Transitions != 2 {
		t.Errorf("Expected 2 transitions, got %d", state.Transitions)
	}
	if state.StateTimer != 1 {
		t.Errorf("Expected timer 1 after one update, got %d", state.StateTimer)
	}
}

func TestDetachControllerStopsBridge(t *testing.T) {
	e, entry, ctrl, got := newBridgedPlayer(t)
	ctrl.Ready()
	UpdateStates(e)

	DetachController(e)
	ctrl.VolumeEnter(cfg.StateVolume1)
	UpdateStates(e)

	if len(*got) != 1 {
		t.Errorf("Expected only the Ready event, got %d", len(*got))
	}
	if components.State.Get(entry).CurrentState != cfg.StateDefault {
		t.Error("Expected State component to stop following the controller")
	}
}

func TestStateChangeQueuesSoundAndPop(t *testing.T) {
	e, entry, ctrl, _ := newBridgedPlayer(t)
	SubscribeStateChanges(e.World)

	ctrl.Ready()
	UpdateStates(e)
	GetOrCreateAudio(e.World).PendingSFX = nil

	ctrl.VolumeEnter(cfg.StateVolume1)
	UpdateStates(e)

	pending := GetOrCreateAudio(e.World).PendingSFX
	if len(pending) != 1 || pending[0] != cfg.SoundStateBanana {
		t.Errorf("Expected Banana cue queued, got %v", pending)
	}

	pop := components.Pop.Get(entry)
	if pop.Tween == nil {
		t.Fatal("Expected pop tween to start")
	}
	if pop.Scale <= 1 {
		t.Errorf("Expected pop scale above 1, got %v", pop.Scale)
	}
}

func TestPopSettlesBackToOne(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := factory.CreatePlayer(e, 100, 100)

	TriggerPop(entry)
	for i := 0; i < ticksFor(float64(cfg.Effects.PopDuration))+2; i++ {
		UpdateEffects(e)
	}

	pop := components.Pop.Get(entry)
	if pop.Tween != nil {
		t.Error("Expected tween to finish")
	}
	if pop.Scale != 1 {
		t.Errorf("Expected scale 1, got %v", pop.Scale)
	}
}

func TestMutedAudioDropsQueue(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateSettings(e.World).Muted = true
	PlaySFX(e.World, cfg.SoundStateSquare)

	UpdateAudio(e)

	if n := len(GetOrCreateAudio(e.World).PendingSFX); n != 0 {
		t.Errorf("Expected queue cleared while muted, got %d", n)
	}
}

// ticksFor converts seconds to fixed update ticks.
func ticksFor(seconds float64) int {
	return int(seconds/tickDelta) + 1
}
