package tui

import (
	"testing"
	"time"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"just now", 10 * time.Second, "0 minutes ago"},
		{"one minute", time.Minute, "1 minute ago"},
		{"minutes", 59 * time.Minute, "59 minutes ago"},
		{"one hour", time.Hour, "1 hour ago"},
		{"hours round down", 5*time.Hour + 59*time.Minute, "5 hours ago"},
		{"one day", 24 * time.Hour, "1 day ago"},
		{"days", 72 * time.Hour, "3 days ago"},
		{"future clamps to zero", -time.Minute, "0 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(now, now.Add(-tt.age)))
		})
	}
}

func newPanelFixture(t *testing.T, titles ...string) (*NotificationPanel, *notify.Store) {
	t.Helper()
	store := notify.NewStore()
	for _, title := range titles {
		store.Infof(title, "")
	}
	return NewNotificationPanel(store, nil), store
}

func TestNotificationPanel_enter_marks_read_without_removing(t *testing.T) {
	p, store := newPanelFixture(t, "older", "newer")

	closed := p.HandleKey("enter")

	assert.False(t, closed)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.UnreadCount())
	assert.True(t, store.List()[0].Read, "newest is selected first")
}

func TestNotificationPanel_navigation_and_delete(t *testing.T) {
	p, store := newPanelFixture(t, "a", "b", "c")

	p.HandleKey("j")
	p.HandleKey("j")
	p.HandleKey("j")
	assert.Equal(t, 2, p.Cursor())

	sel, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Title)

	p.HandleKey("d")
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, p.Cursor(), "cursor clamps after deleting the last row")

	p.HandleKey("k")
	assert.Equal(t, 0, p.Cursor())
}

func TestNotificationPanel_mark_all_and_clear_all(t *testing.T) {
	p, store := newPanelFixture(t, "a", "b")

	p.HandleKey("a")
	assert.Equal(t, 0, store.UnreadCount())
	assert.Equal(t, 2, store.Len())

	p.HandleKey("D")
	assert.Equal(t, 0, store.Len())
	_, ok := p.Selected()
	assert.False(t, ok)
}

func TestNotificationPanel_close_does_not_mutate(t *testing.T) {
	for _, key := range []string{"esc", "q", "ctrl+n"} {
		t.Run(key, func(t *testing.T) {
			p, store := newPanelFixture(t, "a")

			assert.True(t, p.HandleKey(key))
			assert.Equal(t, 1, store.Len())
			assert.Equal(t, 1, store.UnreadCount())
		})
	}
}

func TestNotificationPanel_View_empty_placeholder(t *testing.T) {
	p, _ := newPanelFixture(t)

	out := tuitest.StripANSI(p.View(120, 40))

	assert.Contains(t, out, styles.IconBellOff)
	assert.Contains(t, out, "No notifications")
	assert.NotContains(t, out, "unread")
}

func TestNotificationPanel_View_lists_newest_first_with_unread_count(t *testing.T) {
	p, _ := newPanelFixture(t, "first", "second")

	out := tuitest.StripANSI(p.View(120, 40))

	assert.Contains(t, out, "2 unread")
	assert.Contains(t, out, "0 minutes ago")
	assert.Less(t, indexOf(out, "second"), indexOf(out, "first"))
}

func TestNotificationPanel_Overlay_keeps_background_size(t *testing.T) {
	p, _ := newPanelFixture(t, "a")

	out := p.Overlay(blankScreen(100, 30), 100, 30)

	assert.Contains(t, out, "Notifications")
}
