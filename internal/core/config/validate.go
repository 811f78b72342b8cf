package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
)

// Validate checks that the configuration is structurally valid. Every
// problem is reported as a criterio field error.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("light_theme", c.LightTheme, knownTheme),
		c.validateNavigation(),
		c.validateToasts(),
		c.validateDelays(),
		c.validateShortcuts(),
		c.validateStorage(),
	)
}

// ValidateDeep performs Validate and then checks the config file and data
// directory on disk. An empty configPath skips the config file check.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func (c *Config) validateNavigation() error {
	var errs criterio.FieldErrorsBuilder
	n := c.Navigation

	if n.MinDelay < 0 {
		errs = errs.Append("navigation.min_delay", errors.New("must not be negative"))
	}
	if n.MaxDelay < n.MinDelay {
		errs = errs.Append("navigation.max_delay", fmt.Errorf("must be at least min_delay (%s)", n.MinDelay))
	}
	if n.FixedDelay < 0 {
		errs = errs.Append("navigation.fixed_delay", errors.New("must not be negative"))
	}

	return errs.ToError()
}

func (c *Config) validateDelays() error {
	var errs criterio.FieldErrorsBuilder

	if err := nonNegative(c.Onboarding.AutoOpenDelay); err != nil {
		errs = errs.Append("onboarding.auto_open_delay", err)
	}
	if c.Onboarding.Snooze < 0 {
		errs = errs.Append("onboarding.snooze", errors.New("must be positive"))
	}
	if err := nonNegative(c.Recommendations.GenerateDelay); err != nil {
		errs = errs.Append("recommendations.generate_delay", err)
	}

	return errs.ToError()
}

func (c *Config) validateToasts() error {
	var errs criterio.FieldErrorsBuilder
	t := c.Toasts

	if t.TTL <= 0 {
		errs = errs.Append("toasts.ttl", errors.New("must be positive"))
	}
	if t.ActionTTL <= 0 {
		errs = errs.Append("toasts.action_ttl", errors.New("must be positive"))
	}
	if t.MaxVisible < 1 {
		errs = errs.Append("toasts.max_visible", errors.New("must be at least 1"))
	}

	return errs.ToError()
}

func (c *Config) validateShortcuts() error {
	var errs criterio.FieldErrorsBuilder

	if len(c.Shortcuts) > MaxShortcuts {
		errs = errs.Append("shortcuts", fmt.Errorf("at most %d shortcuts are supported, got %d", MaxShortcuts, len(c.Shortcuts)))
	}

	for i, s := range c.Shortcuts {
		if !navigation.View(s).Known() {
			errs = errs.Append(fmt.Sprintf("shortcuts[%d]", i), fmt.Errorf("unknown view %q", s))
		}
	}

	return errs.ToError()
}

func (c *Config) validateStorage() error {
	var errs criterio.FieldErrorsBuilder
	s := c.Storage

	switch s.Backend {
	case BackendSQLite:
	case BackendRedis:
		if s.RedisAddr == "" {
			errs = errs.Append("storage.redis_addr", errors.New("required when backend is redis"))
		} else if _, _, err := net.SplitHostPort(s.RedisAddr); err != nil {
			errs = errs.Append("storage.redis_addr", fmt.Errorf("invalid address: %w", err))
		}
	default:
		errs = errs.Append("storage.backend", fmt.Errorf("must be %q or %q, got %q", BackendSQLite, BackendRedis, s.Backend))
	}

	if s.BusyTimeout < 0 {
		errs = errs.Append("storage.busy_timeout", errors.New("must not be negative"))
	}

	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func nonNegative(d time.Duration) error {
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}
