package systems

import (
	"encoding/json"
	"log"

	"github.com/furamon/svbattler/archetypes"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug         bool    `json:"debug"`
	MirrorEnemies bool    `json:"mirrorEnemies"`
	SpeedScale    float64 `json:"speedScale"`
	ShowGauges    bool    `json:"showGauges"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error when
// persistence is off or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
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
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// GetOrCreateSettings returns the display settings of the world, creating
// them from the config defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(entry, components.SettingsData{
		Debug:         cfg.Debug.ShowBounds,
		MirrorEnemies: cfg.Substitute.MirrorEnemies,
		SpeedScale:    1,
		ShowGauges:    true,
	})
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies loaded settings into the world.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug || cfg.Debug.ShowBounds
	settings.MirrorEnemies = saved.MirrorEnemies
	settings.ShowGauges = saved.ShowGauges
	if saved.SpeedScale > 0 {
		settings.SpeedScale = saved.SpeedScale
	}
}

// SaveCurrentSettings saves the world's display settings.
func SaveCurrentSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	_ = SaveSettings(&SavedSettings{
		Debug:         s.Debug,
		MirrorEnemies: s.MirrorEnemies,
		SpeedScale:    s.SpeedScale,
		ShowGauges:    s.ShowGauges,
	})
}
