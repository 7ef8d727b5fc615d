package config

import "testing"

func TestParseTuningAppliesOnlySetFields(t *testing.T) {
	prevPlayer, prevCamera := Player, Camera
	t.Cleanup(func() { Player, Camera = prevPlayer, prevCamera })

	tuning, err := ParseTuning([]byte(`
player:
  speed: 420
  shortSpeedScale: 0.25
camera:
  followSmoothing: 0.5
`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tuning.Apply()

	if Player.Speed != 420 {
		t.Errorf("Expected speed 420, got %d", Player.Speed)
	}
	if Player.ShortSpeedScale != 0.25 {
		t.Errorf("Expected short speed scale 0.25, got %v", Player.ShortSpeedScale)
	}
	if Player.BananaScaleX != prevPlayer.BananaScaleX {
		t.Errorf("Expected banana scale untouched, got %v", Player.BananaScaleX)
	}
	if Camera.FollowSmoothing != 0.5 {
		t.Errorf("Expected smoothing 0.5, got %v", Camera.FollowSmoothing)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero speed", "player:\n  speed: 0\n"},
		{"negative scale", "player:\n  bananaScaleY: -1\n"},
		{"smoothing above one", "camera:\n  followSmoothing: 1.5\n"},
		{"warn count too low", "volume:\n  overlapWarnCount: 1\n"},
		{"not yaml", "player: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.yaml)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
