package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/gearshift/components"
	cfg "github.com/automoto/gearshift/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen  bool `json:"fullscreen"`
	ShowOverlay bool `json:"showOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing store or item yields nil
// settings and no error.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Persistence.SettingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created; the scene's Settings
// component is seeded from the resulting globals.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if saved.ShowOverlay {
		cfg.Debug.ShowOverlay = true
	}
}

// UpdateSettings handles the debug overlay and fullscreen toggles and writes
// them back to disk when they change. Runs even while paused.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowOverlay = !settings.ShowOverlay
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}

	if settings.Dirty {
		settings.Dirty = false
		_ = SaveSettings(&SavedSettings{
			Fullscreen:  settings.Fullscreen,
			ShowOverlay: settings.ShowOverlay,
		})
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the current window state if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Fullscreen:  ebiten.IsFullscreen(),
			ShowOverlay: cfg.Debug.ShowOverlay,
		})
	}
	return components.Settings.Get(entry)
}
