package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the user-adjustable settings (singleton component)
type SettingsData struct {
	Debug bool
	Muted bool
	Speed int

	// Stored mirrors what is on disk. Command-line overrides change the live
	// fields above but never reach Stored.
	Stored StoredSettings
}

// StoredSettings is the persisted form of the settings. A zero Speed means
// no speed was saved.
type StoredSettings struct {
	Muted bool `json:"muted"`
	Debug bool `json:"debug"`
	Speed int  `json:"speed,omitempty"`
}

var Settings = donburi.NewComponentType[SettingsData]()
