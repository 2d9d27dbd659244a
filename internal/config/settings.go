package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults applied when no config file exists yet.
const (
	DefaultThresholdGB = 10.0
	DefaultAutoClean   = true
)

// Settings is the small persisted record backing the threshold slider
// and the auto-clean checkbox. Range checking the threshold is the
// front-end's job; the engine uses whatever value is stored here.
type Settings struct {
	ThresholdGB float64  `mapstructure:"threshold_gb"`
	AutoClean   bool     `mapstructure:"auto_clean"`
	Protected   []string `mapstructure:"protected"`
}

// Dir returns the directory holding the config file, creating it if
// needed. Lives under the user config dir (%APPDATA% on Windows).
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = os.Getwd()
	}
	dir := filepath.Join(base, "CacheManager")
	os.MkdirAll(dir, 0o755)
	return dir
}

// Path returns the full path of the settings file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("threshold_gb", DefaultThresholdGB)
	v.SetDefault("auto_clean", DefaultAutoClean)
	v.SetDefault("protected", []string{})
	return v
}

// Load reads the settings file at path, falling back to defaults when
// the file does not exist. A malformed file is an error the command
// surfaces; silently resetting a user's config would be worse.
func Load(path string) (*Settings, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &s, nil
}

// Save persists the settings as JSON at path.
func (s *Settings) Save(path string) error {
	v := newViper(path)
	v.Set("threshold_gb", s.ThresholdGB)
	v.Set("auto_clean", s.AutoClean)
	v.Set("protected", s.Protected)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
