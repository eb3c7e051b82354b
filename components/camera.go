package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre in world space.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // smoothed horizontal offset toward the facing side
}

// Offset returns the translation that maps world space to a screen of the
// given size.
func (c *CameraData) Offset(screenW, screenH float64) (float64, float64) {
	return screenW/2 - c.Position.X, screenH/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
