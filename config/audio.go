package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundStateDefault
	SoundStateBanana
	SoundStateSquare
	SoundStateShort
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	// StateSounds is the cue played when the player switches into a state.
	StateSounds map[StateID]SoundID
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundStateDefault: "audio/sfx/state_default.wav",
			SoundStateBanana:  "audio/sfx/state_banana.wav",
			SoundStateSquare:  "audio/sfx/state_square.wav",
			SoundStateShort:   "audio/sfx/state_short.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStateDefault: 0.5,
		},
		StateSounds: map[StateID]SoundID{
			StateDefault: SoundStateDefault,
			StateVolume1: SoundStateBanana,
			StateVolume2: SoundStateSquare,
			StateVolume3: SoundStateShort,
		},
	}
}
