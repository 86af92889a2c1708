package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds app-level preferences read from the yaml config file.
// Review settings (days, start day, notification time) live in the
// persisted document instead, because they are user data, not
// environment.
type Config struct {
	DataPath string `mapstructure:"data_path"` // override for the sqlite file
	Timezone string `mapstructure:"timezone"`  // e.g. "Asia/Riyadh" (optional)
	Reminder bool   `mapstructure:"reminder"`  // master switch for desktop reminders
}

func Default() Config {
	return Config{
		DataPath: "",
		Timezone: "",
		Reminder: true,
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "taahud")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	v.SetDefault("data_path", cfg.DataPath)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("reminder", cfg.Reminder)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

// Location resolves the single timezone policy for the whole app:
// every date key and cycle computation uses this location.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
