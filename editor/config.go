package editor

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the part of the Params that can be given in a yaml file.
type Config struct {
	Width      int        `yaml:"width,omitempty"`
	Length     float64    `yaml:"length"`
	Start      float64    `yaml:"start"`
	End        float64    `yaml:"end"`
	Multi      bool       `yaml:"multi"`
	AutoSelect bool       `yaml:"autoSelect"`
	Tool       ToolMode   `yaml:"tool"`
	ExportName string     `yaml:"exportName"`
	Images     ImagePaths `yaml:"images,omitempty"`
}

//go:embed config.yml
var defaultConfig []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(defaultConfig))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		panic(fmt.Errorf("failed to decode the default config: %w", err))
	}
	return c
}

// MakeConfig returns the default configuration overridden by the user's
// config.yml, if there is one. A broken user file is reported as an error
// along with the default configuration.
func MakeConfig() (Config, error) {
	c := DefaultConfig()
	if err := ReadCustomConfig("config.yml", &c); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), err
	}
	return c, nil
}

// ReadCustomConfig reads a yaml file from the timeline directory under the
// user's config directory into target, which needs to be a pointer.
func ReadCustomConfig(filename string, target any) error {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(configDir, "timeline", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Params converts the configuration to construction parameters; the
// collaborators are left to their defaults.
func (c Config) Params() Params {
	return Params{
		Width:      c.Width,
		Length:     c.Length,
		Start:      c.Start,
		End:        c.End,
		Multi:      c.Multi,
		AutoSelect: Bool(c.AutoSelect),
		Tool:       c.Tool,
		ExportName: c.ExportName,
	}
}
