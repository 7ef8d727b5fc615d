package assets

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/automoto/volumeshift/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// LevelsDir is the directory of the embedded level files.
const LevelsDir = "levels"

var textureCache = make(map[string]*ebiten.Image)

// LoadTexture decodes an embedded image. Images are cached by path so
// repeated loads share one *ebiten.Image.
func LoadTexture(path string) (*ebiten.Image, error) {
	if img, ok := textureCache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	textureCache[path] = img
	return img, nil
}

// MustLoadLevel parses an embedded level file.
func MustLoadLevel(path string) *leveldata.Level {
	level, err := leveldata.Load(levelFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", path, err))
	}
	return level
}

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	levels, err := leveldata.LoadAll(levelFS, LevelsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, l.Name)
	}
	return names, nil
}
