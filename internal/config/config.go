// Package config loads app settings from config.yaml and DRILL_*
// environment variables. Env vars win over the file; the file wins over
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all tunable application settings.
type Config struct {
	DBPath      string     `mapstructure:"DB_PATH"`
	SearchLimit int        `mapstructure:"SEARCH_LIMIT"`
	Exam        ExamConfig `mapstructure:"EXAM"`
}

// ExamConfig pre-fills the exam configuration form.
type ExamConfig struct {
	DefaultCount   int `mapstructure:"DEFAULT_COUNT"`
	DefaultMinutes int `mapstructure:"DEFAULT_MINUTES"`
}

// Load reads config.yaml from the drill config directory (or the
// working directory) and applies DRILL_* environment overrides. A
// missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetDefault("DB_PATH", "")
	v.SetDefault("SEARCH_LIMIT", 20)
	v.SetDefault("EXAM.DEFAULT_COUNT", 10)
	v.SetDefault("EXAM.DEFAULT_MINUTES", 10)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("DRILL")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// configDir resolves $XDG_CONFIG_HOME/drill, falling back to
// ~/.config/drill.
func configDir() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "drill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "drill"), nil
}
