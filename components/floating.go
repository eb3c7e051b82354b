package components

import "github.com/yohamta/donburi"

// FloatingPlatformData describes the vertical path of a moving platform.
type FloatingPlatformData struct {
	OriginY float64
	Travel  float64 // upward distance from OriginY
}

var FloatingPlatform = donburi.NewComponentType[FloatingPlatformData]()
