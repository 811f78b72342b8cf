// Package config handles configuration loading and validation for campus.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
)

// Storage backends for the key-value collaborator.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// MaxShortcuts is the number of ctrl+<digit> navigation slots.
const MaxShortcuts = 9

// Config holds the application configuration.
type Config struct {
	Theme           string                `yaml:"theme"`
	LightTheme      string                `yaml:"light_theme"`
	Navigation      NavigationConfig      `yaml:"navigation"`
	Toasts          ToastConfig           `yaml:"toasts"`
	Onboarding      OnboardingConfig      `yaml:"onboarding"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Shortcuts       []string              `yaml:"shortcuts"`
	Storage         StorageConfig         `yaml:"storage"`
	DataDir         string                `yaml:"-"` // set by caller, not from config file
}

// NavigationConfig tunes the simulated view loading delay.
type NavigationConfig struct {
	MinDelay time.Duration `yaml:"min_delay"`
	MaxDelay time.Duration `yaml:"max_delay"`
	// FixedDelay, when set, replaces the random delay.
	FixedDelay time.Duration `yaml:"fixed_delay"`
}

// ToastConfig tunes the toast stack.
type ToastConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	ActionTTL  time.Duration `yaml:"action_ttl"`
	MaxVisible int           `yaml:"max_visible"`
}

// OnboardingConfig tunes the first-run tour.
type OnboardingConfig struct {
	AutoOpenDelay time.Duration `yaml:"auto_open_delay"`
	// Snooze is how long "remind me later" keeps the tour from auto-opening.
	Snooze time.Duration `yaml:"snooze"`
}

// RecommendationsConfig tunes the fake recommendation generator.
type RecommendationsConfig struct {
	GenerateDelay time.Duration `yaml:"generate_delay"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend     string        `yaml:"backend"`
	RedisAddr   string        `yaml:"redis_addr"`
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:      styles.DefaultTheme,
		LightTheme: styles.DefaultLightTheme,
		Navigation: NavigationConfig{
			MinDelay: 500 * time.Millisecond,
			MaxDelay: 1500 * time.Millisecond,
		},
		Toasts: ToastConfig{
			TTL:        4 * time.Second,
			ActionTTL:  6 * time.Second,
			MaxVisible: 3,
		},
		Onboarding: OnboardingConfig{
			AutoOpenDelay: 1500 * time.Millisecond,
			Snooze:        24 * time.Hour,
		},
		Recommendations: RecommendationsConfig{
			GenerateDelay: 2 * time.Second,
		},
		Shortcuts: defaultShortcuts(),
		Storage: StorageConfig{
			Backend:     BackendSQLite,
			BusyTimeout: 5 * time.Second,
		},
	}
}

func defaultShortcuts() []string {
	views := navigation.Views()[:MaxShortcuts]
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = string(v)
	}
	return out
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.LightTheme == "" {
		c.LightTheme = defaults.LightTheme
	}
	if c.Navigation.MinDelay == 0 && c.Navigation.MaxDelay == 0 {
		c.Navigation.MinDelay = defaults.Navigation.MinDelay
		c.Navigation.MaxDelay = defaults.Navigation.MaxDelay
	}
	if c.Toasts.TTL == 0 {
		c.Toasts.TTL = defaults.Toasts.TTL
	}
	if c.Toasts.ActionTTL == 0 {
		c.Toasts.ActionTTL = defaults.Toasts.ActionTTL
	}
	if c.Toasts.MaxVisible == 0 {
		c.Toasts.MaxVisible = defaults.Toasts.MaxVisible
	}
	if c.Onboarding.AutoOpenDelay == 0 {
		c.Onboarding.AutoOpenDelay = defaults.Onboarding.AutoOpenDelay
	}
	if c.Onboarding.Snooze == 0 {
		c.Onboarding.Snooze = defaults.Onboarding.Snooze
	}
	if c.Recommendations.GenerateDelay == 0 {
		c.Recommendations.GenerateDelay = defaults.Recommendations.GenerateDelay
	}
	if len(c.Shortcuts) == 0 {
		c.Shortcuts = defaults.Shortcuts
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.BusyTimeout == 0 {
		c.Storage.BusyTimeout = defaults.Storage.BusyTimeout
	}
}

// Delayer returns the navigation delay source described by the config.
func (c *Config) Delayer() navigation.Delayer {
	if c.Navigation.FixedDelay > 0 {
		return navigation.FixedDelay(c.Navigation.FixedDelay)
	}
	return navigation.UniformDelay{Min: c.Navigation.MinDelay, Max: c.Navigation.MaxDelay}
}

// ShortcutViews returns the views bound to ctrl+1 through ctrl+9, in order.
func (c *Config) ShortcutViews() []navigation.View {
	out := make([]navigation.View, len(c.Shortcuts))
	for i, s := range c.Shortcuts {
		out[i] = navigation.View(s)
	}
	return out
}

// DefaultPath returns $XDG_CONFIG_HOME/campus/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "campus", "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/campus.
func DefaultDataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), "campus")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}
