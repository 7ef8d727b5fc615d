package config

// StateID identifies a player mode. Volumes in a level carry one of these ids.
type StateID int

const (
	StateDefault StateID = iota
	StateVolume1
	StateVolume2
	StateVolume3
)

// StateNames maps StateID to the display name of the mode it selects.
var StateNames = map[StateID]string{
	StateDefault: "Default",
	StateVolume1: "Banana",
	StateVolume2: "Square",
	StateVolume3: "Short",
}

// volumeKeys maps the Tiled "volume" property to a StateID.
var volumeKeys = map[string]StateID{
	"Default": StateDefault,
	"Volume1": StateVolume1,
	"Volume2": StateVolume2,
	"Volume3": StateVolume3,
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStateID resolves a volume key from a level file. Unknown keys return
// ok=false and an id outside the known range so callers can keep it as
// an unrecognized volume.
func ParseStateID(key string) (StateID, bool) {
	if id, ok := volumeKeys[key]; ok {
		return id, true
	}
	return StateID(-1), false
}

// Key returns the level volume key that selects s, or "" when s has none.
func (s StateID) Key() string {
	for key, id := range volumeKeys {
		if id == s {
			return key
		}
	}
	return ""
}
