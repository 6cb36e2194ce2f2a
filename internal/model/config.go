package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SpeechConfig holds settings for the text-to-speech engine.
type SpeechConfig struct {
	// Command is the executable invoked to speak a message
	// (e.g., "espeak" or "say").
	Command string `mapstructure:"command" yaml:"command"`

	// Args are extra arguments passed before the message text.
	Args []string `mapstructure:"args" yaml:"args"`

	// Rate is the speech rate passed to the engine.
	Rate float64 `mapstructure:"rate" yaml:"rate"`

	// Pitch is the speech pitch passed to the engine.
	Pitch float64 `mapstructure:"pitch" yaml:"pitch"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// HouseCheckIntervalSec is how often (in seconds) the house-task due
	// checker sweeps for overdue tasks.
	HouseCheckIntervalSec int `mapstructure:"house_check_interval_sec" yaml:"house_check_interval_sec"`

	// LifeExpectancy is the default life expectancy in years, used until
	// the user saves a life profile.
	LifeExpectancy float64 `mapstructure:"life_expectancy" yaml:"life_expectancy"`

	Speech SpeechConfig `mapstructure:"speech" yaml:"speech"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/voice-reminders/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "voice-reminders", "config.yaml")
}

// DefaultDBPath returns the default SQLite database path, located at
// ~/.local/share/voice-reminders/reminders.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "reminders.db")
	}
	return filepath.Join(home, ".local", "share", "voice-reminders", "reminders.db")
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		DBPath:                DefaultDBPath(),
		HouseCheckIntervalSec: 3600,
		LifeExpectancy:        DefaultLifeExpectancy,
		Speech: SpeechConfig{
			Command: "espeak",
			Rate:    0.5,
			Pitch:   1.0,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("db_path", DefaultDBPath())
	v.SetDefault("house_check_interval_sec", 3600)
	v.SetDefault("life_expectancy", float64(DefaultLifeExpectancy))
	v.SetDefault("speech.command", "espeak")
	v.SetDefault("speech.rate", 0.5)
	v.SetDefault("speech.pitch", 1.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("db_path", cfg.DBPath)
	v.Set("house_check_interval_sec", cfg.HouseCheckIntervalSec)
	v.Set("life_expectancy", cfg.LifeExpectancy)
	v.Set("speech", cfg.Speech)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
