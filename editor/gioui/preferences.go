package gioui

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gioui.org/unit"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window       WindowPreferences
		ExportFormat string `yaml:"exportformat"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// MakePreferences returns the default preferences overridden by
// preferences.yml in the timeline config directory. The error is non-nil
// only if the user file exists but could not be read.
func MakePreferences() (Preferences, error) {
	preferences := loadDefaultPreferences()
	configDir, err := os.UserConfigDir()
	if err != nil {
		return preferences, nil
	}
	path := filepath.Join(configDir, "timeline", "preferences.yml")
	b, err := os.ReadFile(path)
	if err != nil {
		return preferences, nil
	}
	if err := yaml.UnmarshalStrict(b, &preferences); err != nil {
		return loadDefaultPreferences(), fmt.Errorf("%s: %w", path, err)
	}
	return preferences, nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}
