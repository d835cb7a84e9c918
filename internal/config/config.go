// Package config loads hop's optional app settings file. It tunes ambient
// behavior only (log verbosity, colored output); the shortcut table itself
// is owned by the store package.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings are the recognized keys of config.yaml. Zero values mean "use
// the default".
type Settings struct {
	LogLevel string `yaml:"log_level,omitempty"`
	Color    *bool  `yaml:"color,omitempty"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{}
}

// Load reads settings from path. A missing file yields the defaults; a
// present but invalid file is an error.
func Load(fs afero.Fs, path string) (Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read settings %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Level maps the configured log level onto a zerolog level, defaulting to
// warn for unset or unrecognized values.
func (s Settings) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || s.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return level
}

// ColorEnabled reports whether CLI output should be colored. Defaults on.
func (s Settings) ColorEnabled() bool {
	if s.Color == nil {
		return true
	}
	return *s.Color
}
