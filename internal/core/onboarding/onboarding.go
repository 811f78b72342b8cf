// Package onboarding tracks whether the first-run tour has been completed and
// whether it is currently on screen.
package onboarding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/campus/internal/core/kv"
)

const (
	namespace    = "onboarding"
	completedKey = "completed"
	snoozeKey    = "snoozed"
)

// Status is a snapshot of the onboarding state. SnoozedUntil is zero unless
// a snooze is active.
type Status struct {
	Completed    bool
	Visible      bool
	SnoozedUntil time.Time
}

// Controller owns the persisted completion flag and the transient visibility
// of the tour.
type Controller struct {
	flag   *kv.TypedKV[bool]
	snooze *kv.TypedKV[time.Time]
	logger zerolog.Logger

	mu      sync.Mutex
	visible bool
}

// New creates a controller persisting its flag in store.
func New(store kv.KV, logger zerolog.Logger) *Controller {
	return &Controller{
		flag:   kv.Scoped[bool](store, namespace),
		snooze: kv.Scoped[time.Time](store, namespace),
		logger: logger,
	}
}

// Completed reports whether the tour has been completed. Read errors are
// logged and reported as not completed.
func (c *Controller) Completed(ctx context.Context) bool {
	done, err := c.flag.GetOr(ctx, completedKey, false)
	if err != nil {
		c.logger.Warn().Err(err).Msg("reading onboarding flag")
		return false
	}
	return done
}

// Snoozed reports whether a "remind me later" request is still in effect.
// The snooze lives in the KV store with a TTL, so it lapses on its own.
func (c *Controller) Snoozed(ctx context.Context) bool {
	has, err := c.snooze.Has(ctx, snoozeKey)
	if err != nil {
		c.logger.Warn().Err(err).Msg("reading onboarding snooze")
		return false
	}
	return has
}

// ShouldAutoOpen reports whether the tour should open by itself on startup.
func (c *Controller) ShouldAutoOpen(ctx context.Context) bool {
	return !c.Completed(ctx) && !c.Snoozed(ctx)
}

// Snooze hides the tour and keeps it from auto-opening for d. Starting the
// tour by hand is unaffected.
func (c *Controller) Snooze(ctx context.Context, d time.Duration) error {
	c.Close()

	if err := c.snooze.SetTTL(ctx, snoozeKey, time.Now().Add(d), d); err != nil {
		return fmt.Errorf("snooze onboarding: %w", err)
	}

	c.logger.Info().Dur("for", d).Msg("onboarding snoozed")
	return nil
}

// Status returns the current state.
func (c *Controller) Status(ctx context.Context) Status {
	st := Status{Completed: c.Completed(ctx)}

	until, ok, err := c.snooze.ExpiresAt(ctx, snoozeKey)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Msg("reading onboarding snooze")
	case ok:
		st.SnoozedUntil = until
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	st.Visible = c.visible
	return st
}

// Visible reports whether the tour is on screen.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Start shows the tour, whatever the completion flag says.
func (c *Controller) Start() {
	c.mu.Lock()
	c.visible = true
	c.mu.Unlock()

	c.logger.Debug().Msg("onboarding tour started")
}

// Close hides the tour without touching the completion flag.
func (c *Controller) Close() {
	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()
}

// Complete persists the completion flag and hides the tour. The tour is
// hidden even when persisting fails.
func (c *Controller) Complete(ctx context.Context) error {
	c.Close()

	if err := c.flag.Set(ctx, completedKey, true); err != nil {
		return fmt.Errorf("persist onboarding completion: %w", err)
	}

	c.logger.Info().Msg("onboarding completed")
	return nil
}

// Reset removes every stored onboarding key so the tour auto-opens again.
func (c *Controller) Reset(ctx context.Context) error {
	keys, err := c.flag.Keys(ctx)
	if err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}

	for _, k := range keys {
		if err := c.flag.Delete(ctx, k); err != nil {
			return fmt.Errorf("reset onboarding %q: %w", k, err)
		}
	}

	c.logger.Info().Int("keys", len(keys)).Msg("onboarding reset")
	return nil
}
