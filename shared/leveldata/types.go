// Package leveldata parses Tiled maps into plain collision geometry. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// Level holds everything the scene needs from a TMX file.
type Level struct {
	Name              string
	Width             int // pixels
	Height            int
	Solids            []Rect
	Platforms         []Rect
	FloatingPlatforms []FloatingPlatform
	SpawnPoints       []SpawnPoint
}

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// FloatingPlatform is a one-way platform that moves up and back down.
// Zero Travel or Duration means "use the configured default".
type FloatingPlatform struct {
	Rect
	Travel   float64
	Duration float64 // seconds per leg
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
