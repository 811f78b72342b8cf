package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func info(title string) notify.Notification {
	return notify.Notification{Severity: notify.SeverityInfo, Title: title}
}

func TestToastController_Push(t *testing.T) {
	c := NewToastController(ToastOptions{})

	c.Push(info("hello"))

	assert.True(t, c.HasToasts())
	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Title)
	assert.Equal(t, defaultToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_action_gets_longer_ttl(t *testing.T) {
	c := NewToastController(ToastOptions{})

	n := info("undo")
	n.Action = &notify.Action{Label: "Undo", Run: func() {}}
	c.Push(n)

	assert.Equal(t, defaultToastActionTTL, c.Toasts()[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController(ToastOptions{})

	for i := range defaultMaxToasts + 2 {
		c.Push(info(fmt.Sprintf("toast-%d", i)))
	}

	require.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "toast-2", c.Toasts()[0].notification.Title)
	assert.Equal(t, "toast-4", c.Toasts()[defaultMaxToasts-1].notification.Title)
}

func TestToastController_custom_options(t *testing.T) {
	c := NewToastController(ToastOptions{TTL: time.Second, MaxVisible: 1})

	c.Push(info("a"))
	c.Push(info("b"))

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "b", c.Toasts()[0].notification.Title)
	assert.Equal(t, time.Second, c.Toasts()[0].remaining)
}

func TestToastController_Tick_decrements_TTL(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Push(info("tick"))

	c.Tick(1 * time.Second)

	assert.Equal(t, defaultToastTTL-1*time.Second, c.Toasts()[0].remaining)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Push(info("expires"))
	c.Push(info("survives"))

	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Title)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Push(info("first"))
	c.Push(info("second"))

	c.Dismiss()

	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Title)
}

func TestToastController_Dismiss_empty(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Push(info("a"))
	c.Push(info("b"))

	c.DismissAll()

	assert.False(t, c.HasToasts())
	assert.Empty(t, c.Toasts())
}

func TestToastController_InvokeAction_runs_once(t *testing.T) {
	c := NewToastController(ToastOptions{})

	calls := 0
	n := info("with action")
	n.Action = &notify.Action{Label: "Open", Run: func() { calls++ }}
	c.Push(n)
	c.Push(info("plain"))

	assert.True(t, c.HasAction())
	assert.True(t, c.InvokeAction())
	assert.False(t, c.InvokeAction())

	assert.Equal(t, 1, calls)
	require.Len(t, c.Toasts(), 1)
	assert.Equal(t, "plain", c.Toasts()[0].notification.Title)
	assert.False(t, c.HasAction())
}

func TestToastController_InvokeAction_without_actions(t *testing.T) {
	c := NewToastController(ToastOptions{})
	c.Push(info("plain"))

	assert.False(t, c.InvokeAction())
	assert.Len(t, c.Toasts(), 1)
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController(ToastOptions{})
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())

	c.SetTicking(false)
	assert.False(t, c.Ticking())
}
