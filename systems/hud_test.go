package systems

import (
	"testing"

	"github.com/automoto/volumeshift/components"
	cfg "github.com/automoto/volumeshift/config"
)

func TestHUDLines(t *testing.T) {
	line := stateLine(&components.StateData{CurrentState: cfg.StateVolume1, StateTimer: 90})
	if line != "Banana  1.5s" {
		t.Errorf("Expected %q, got %q", "Banana  1.5s", line)
	}

	hint := hintLine(&components.SettingsData{Muted: true})
	if hint != "F1 debug  M sound: off" {
		t.Errorf("Expected muted hint, got %q", hint)
	}
}
