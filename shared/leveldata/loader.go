package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in TMX files.
const (
	GroupSolids            = "Solids"
	GroupPlatforms         = "Platforms"
	GroupFloatingPlatforms = "FloatingPlatforms"
	GroupPlayerSpawn       = "PlayerSpawn"
)

// ErrNoSpawn is returned for maps without a PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn point")

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, objectRect(o))
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, objectRect(o))
			}
		case GroupFloatingPlatforms:
			for _, o := range og.Objects {
				level.FloatingPlatforms = append(level.FloatingPlatforms, FloatingPlatform{
					Rect:     objectRect(o),
					Travel:   o.Properties.GetFloat("travel"),
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// LoadAll loads every .tmx file in dir, sorted by file name.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
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

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
