package tui

import (
	"time"

	"github.com/colonyops/campus/internal/core/notify"
)

const (
	defaultToastTTL       = 4 * time.Second
	defaultToastActionTTL = 6 * time.Second
	defaultMaxToasts      = 3
	toastTickInterval     = 100 * time.Millisecond
	toastWidth            = 44
)

// ToastOptions configures toast lifetimes and the visible stack size.
type ToastOptions struct {
	TTL        time.Duration
	ActionTTL  time.Duration
	MaxVisible int
}

// DefaultToastOptions returns the built-in toast settings.
func DefaultToastOptions() ToastOptions {
	return ToastOptions{
		TTL:        defaultToastTTL,
		ActionTTL:  defaultToastActionTTL,
		MaxVisible: defaultMaxToasts,
	}
}

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// ToastController manages the lifecycle of active toast notifications.
// It handles push, eviction, TTL countdown, and dismissal.
type ToastController struct {
	opts    ToastOptions
	toasts  []toast
	ticking bool
}

// NewToastController creates a controller. Zero-valued options fall back to
// DefaultToastOptions.
func NewToastController(opts ToastOptions) *ToastController {
	def := DefaultToastOptions()
	if opts.TTL <= 0 {
		opts.TTL = def.TTL
	}
	if opts.ActionTTL <= 0 {
		opts.ActionTTL = def.ActionTTL
	}
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = def.MaxVisible
	}
	return &ToastController{opts: opts}
}

// Push adds a notification to the toast stack. If the stack exceeds the
// configured maximum, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	ttl := c.opts.TTL
	if n.HasAction() {
		ttl = c.opts.ActionTTL
	}
	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    ttl,
	})
	if len(c.toasts) > c.opts.MaxVisible {
		c.toasts = c.toasts[len(c.toasts)-c.opts.MaxVisible:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest (bottom-most) toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

// InvokeAction runs the action of the newest toast that carries one and
// dismisses that toast. A toast leaves the stack when its action runs, so an
// action can never fire twice. Reports whether an action ran.
func (c *ToastController) InvokeAction() bool {
	for i := len(c.toasts) - 1; i >= 0; i-- {
		n := c.toasts[i].notification
		if !n.HasAction() {
			continue
		}
		c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
		n.Action.Run()
		return true
	}
	return false
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// HasAction reports whether any visible toast carries an action.
func (c *ToastController) HasAction() bool {
	for _, t := range c.toasts {
		if t.notification.HasAction() {
			return true
		}
	}
	return false
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
