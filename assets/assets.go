package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/gearshift/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadLevels parses every embedded level, sorted by file name.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, "levels")
}

// MustLoadLevels is LoadLevels for scene setup, where a broken level is
// unrecoverable.
func MustLoadLevels() []*leveldata.Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels
}
