package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay for the gameplay values in this
// package. Fields left out of the file keep their defaults.
//
// Example:
//
//	player:
//	  speed: 420
//	  shortSpeedScale: 0.4
//	camera:
//	  followSmoothing: 0.2
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Camera  CameraTuning  `yaml:"camera"`
	Effects EffectsTuning `yaml:"effects"`
	Volume  VolumeTuning  `yaml:"volume"`
}

type PlayerTuning struct {
	Speed           *int     `yaml:"speed"`
	BananaScaleX    *float64 `yaml:"bananaScaleX"`
	BananaScaleY    *float64 `yaml:"bananaScaleY"`
	ShortScaleY     *float64 `yaml:"shortScaleY"`
	ShortSpeedScale *float64 `yaml:"shortSpeedScale"`
}

type CameraTuning struct {
	FollowSmoothing *float64 `yaml:"followSmoothing"`
}

type EffectsTuning struct {
	PopScale    *float32 `yaml:"popScale"`
	PopDuration *float32 `yaml:"popDuration"`
}

type VolumeTuning struct {
	OverlapWarnCount *int `yaml:"overlapWarnCount"`
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// Validate rejects values the game cannot run with.
func (t *Tuning) Validate() error {
	if v := t.Player.Speed; v != nil && *v <= 0 {
		return fmt.Errorf("player.speed must be positive, got %d", *v)
	}
	for name, v := range map[string]*float64{
		"player.bananaScaleX":    t.Player.BananaScaleX,
		"player.bananaScaleY":    t.Player.BananaScaleY,
		"player.shortScaleY":     t.Player.ShortScaleY,
		"player.shortSpeedScale": t.Player.ShortSpeedScale,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, *v)
		}
	}
	if v := t.Camera.FollowSmoothing; v != nil && (*v <= 0 || *v > 1) {
		return fmt.Errorf("camera.followSmoothing must be in (0, 1], got %v", *v)
	}
	if v := t.Effects.PopDuration; v != nil && *v <= 0 {
		return fmt.Errorf("effects.popDuration must be positive, got %v", *v)
	}
	if v := t.Volume.OverlapWarnCount; v != nil && *v < 2 {
		return fmt.Errorf("volume.overlapWarnCount must be at least 2, got %d", *v)
	}
	return nil
}

// Apply copies the set fields into the global configuration.
func (t *Tuning) Apply() {
	setInt(&Player.Speed, t.Player.Speed)
	setFloat(&Player.BananaScaleX, t.Player.BananaScaleX)
	setFloat(&Player.BananaScaleY, t.Player.BananaScaleY)
	setFloat(&Player.ShortScaleY, t.Player.ShortScaleY)
	setFloat(&Player.ShortSpeedScale, t.Player.ShortSpeedScale)
	setFloat(&Camera.FollowSmoothing, t.Camera.FollowSmoothing)
	if t.Effects.PopScale != nil {
		Effects.PopScale = *t.Effects.PopScale
	}
	if t.Effects.PopDuration != nil {
		Effects.PopDuration = *t.Effects.PopDuration
	}
	setInt(&Volume.OverlapWarnCount, t.Volume.OverlapWarnCount)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
