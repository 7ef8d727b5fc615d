// Package leveldata parses Tiled level files into plain rectangles. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the game needs from a TMX level file.
type Level struct {
	Name        string
	MapWidth    int
	MapHeight   int
	Walls       []Rect
	Volumes     []VolumeRect
	SpawnPoints []SpawnPoint
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// VolumeRect is a trigger zone. Key is the raw volume name from the map
// ("Volume1", "Volume2", ...); it is resolved to a state by the game.
type VolumeRect struct {
	Rect
	Name string
	Key  string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}
