package components

import "github.com/yohamta/donburi"

// SettingsData mirrors the persisted window settings for the running scene.
type SettingsData struct {
	Fullscreen  bool
	ShowOverlay bool
	Dirty       bool // changed since last save
}

var Settings = donburi.NewComponentType[SettingsData]()
