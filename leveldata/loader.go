package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the map.
const (
	GroupWalls       = "Walls"
	GroupVolumes     = "Volumes"
	GroupPlayerSpawn = "PlayerSpawn"

	// VolumeProperty holds the volume key on a volume object. The object's
	// class is used when the property is absent.
	VolumeProperty = "volume"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupVolumes:
			for _, o := range og.Objects {
				key := o.Properties.GetString(VolumeProperty)
				if key == "" {
					key = o.Class
				}
				level.Volumes = append(level.Volumes, VolumeRect{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Name: o.Name,
					Key:  key,
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{X: o.X, Y: o.Y})
			}
		}
	}

	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("level %s: no %s objects", tmxPath, GroupPlayerSpawn)
	}

	// Sort spawns left-to-right so the first spawn is stable
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// sorted by name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, nil
}
