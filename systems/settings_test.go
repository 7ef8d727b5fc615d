package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/volumeshift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestLoadSettingsWithoutSave(t *testing.T) {
	useStore(t, &memStore{})

	saved, err := LoadSettings()
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if saved != nil {
		t.Errorf("Expected nil settings, got %+v", saved)
	}
}

func TestLoadSettingsCorrupt(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{settingsKey: []byte("{not json")}})

	if _, err := LoadSettings(); err == nil {
		t.Error("Expected parse error for corrupt settings")
	}
}

func TestSaveSettingsReportsStoreError(t *testing.T) {
	useStore(t, &memStore{err: errors.New("disk full")})

	if err := SaveSettings(&SavedSettings{Muted: true}); err == nil {
		t.Error("Expected save error")
	}
}

func TestApplySavedSettingsKeepsDefaultSpeed(t *testing.T) {
	w := donburi.NewWorld()

	ApplySavedSettings(w, &SavedSettings{Muted: true})

	settings := GetOrCreateSettings(w)
	if !settings.Muted {
		t.Error("Expected muted from saved settings")
	}
	if settings.Speed != cfg.Player.Speed {
		t.Errorf("Expected default speed %d, got %d", cfg.Player.Speed, settings.Speed)
	}
}

func TestUpdateSettingsTogglesAndSaves(t *testing.T) {
	ms := &memStore{}
	useStore(t, ms)
	e := ecs.NewECS(donburi.NewWorld())

	input := getOrCreateInput(e.World)
	input.Current[cfg.ActionMute] = true
	UpdateSettings(e)

	if !GetOrCreateSettings(e.World).Muted {
		t.Fatal("Expected mute toggled on")
	}

	// Holding the key does not toggle again
	input.Previous = input.Current
	UpdateSettings(e)
	if !GetOrCreateSettings(e.World).Muted {
		t.Error("Expected mute to stay on while held")
	}

	saved, err := LoadSettings()
	if err != nil || saved == nil {
		t.Fatalf("Expected saved settings, got %v, %v", saved, err)
	}
	if !saved.Muted || saved.Speed != 0 {
		t.Errorf("Expected muted with no speed saved, got %+v", saved)
	}
}

func TestToggleDoesNotPersistOverrides(t *testing.T) {
	ms := &memStore{}
	useStore(t, ms)
	e := ecs.NewECS(donburi.NewWorld())

	ApplySavedSettings(e.World, &SavedSettings{Speed: 300})

	// Command-line overrides: -speed 900 -debug
	settings := GetOrCreateSettings(e.World)
	settings.Speed = 900
	settings.Debug = true

	getOrCreateInput(e.World).Current[cfg.ActionMute] = true
	UpdateSettings(e)

	saved, err := LoadSettings()
	if err != nil || saved == nil {
		t.Fatalf("Expected saved settings, got %v, %v", saved, err)
	}
	if saved.Speed != 300 {
		t.Errorf("Expected saved speed to stay 300, got %d", saved.Speed)
	}
	if saved.Debug {
		t.Error("Expected the debug override not to be saved")
	}
	if !saved.Muted {
		t.Error("Expected the mute toggle to be saved")
	}
	if settings.Speed != 900 {
		t.Errorf("Expected live speed to keep the override, got %d", settings.Speed)
	}
}

func TestToggleWithoutSavedSettingsLeavesSpeedUnset(t *testing.T) {
	ms := &memStore{}
	useStore(t, ms)
	e := ecs.NewECS(donburi.NewWorld())

	GetOrCreateSettings(e.World).Speed = 900
	getOrCreateInput(e.World).Current[cfg.ActionDebug] = true
	UpdateSettings(e)

	saved, _ := LoadSettings()
	if saved == nil {
		t.Fatal("Expected saved settings")
	}
	if saved.Speed != 0 {
		t.Errorf("Expected no speed saved so the tuning file still applies, got %d", saved.Speed)
	}
	if !saved.Debug {
		t.Error("Expected the debug toggle to be saved")
	}
}
