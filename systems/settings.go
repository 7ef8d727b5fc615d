package systems

import (
	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug and mute toggles and persists changes.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs.World)
	input := getOrCreateInput(ecs.World)

	// Only the toggled field is written back so flag overrides stay one-off
	changed := false
	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Stored.Debug = settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionMute).JustPressed {
		settings.Muted = !settings.Muted
		settings.Stored.Muted = settings.Muted
		changed = true
	}

	if changed {
		_ = SaveSettings(&settings.Stored)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the configured defaults if needed.
func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
			Speed: cfg.Player.Speed,
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies loaded settings into the Settings component.
func ApplySavedSettings(w donburi.World, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(w)
	settings.Stored = *saved
	settings.Muted = saved.Muted
	settings.Debug = saved.Debug
	if saved.Speed > 0 {
		settings.Speed = saved.Speed
	}
}
