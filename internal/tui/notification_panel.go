package tui

import (
	"fmt"
	"strings"
	"time"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
)

const (
	notifyPanelWidthPct  = 60
	notifyPanelMinWidth  = 56
	notifyPanelMaxHeight = 30
	notifyPanelMargin    = 4
	notifyPanelChrome    = 7 // title + divider + help + padding
	notifyPanelRowHeight = 2
)

// NotificationPanel is the modal list of every notification raised during
// the session. It reads and mutates the shared store directly; closing it
// leaves the store untouched.
type NotificationPanel struct {
	store  *notify.Store
	now    func() time.Time
	cursor int
	offset int
}

// NewNotificationPanel creates a panel bound to store. A nil clock uses
// time.Now.
func NewNotificationPanel(store *notify.Store, now func() time.Time) *NotificationPanel {
	if now == nil {
		now = time.Now
	}
	return &NotificationPanel{store: store, now: now}
}

// HandleKey applies a panel key binding and reports whether the panel should
// close.
func (p *NotificationPanel) HandleKey(keyStr string) (closed bool) {
	items := p.store.List()

	switch keyStr {
	case "esc", "ctrl+n", "q":
		return true
	case "j", "down":
		if p.cursor < len(items)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "enter":
		if n, ok := p.Selected(); ok {
			p.store.MarkAsRead(n.ID)
		}
	case "d":
		if n, ok := p.Selected(); ok {
			p.store.Delete(n.ID)
		}
	case "D":
		p.store.ClearAll()
	case "a":
		p.store.MarkAllAsRead()
	}

	p.clampCursor()
	return false
}

// Selected returns the notification under the cursor.
func (p *NotificationPanel) Selected() (notify.Notification, bool) {
	items := p.store.List()
	if p.cursor < 0 || p.cursor >= len(items) {
		return notify.Notification{}, false
	}
	return items[p.cursor], true
}

// Cursor returns the selected row index.
func (p *NotificationPanel) Cursor() int {
	return p.cursor
}

func (p *NotificationPanel) clampCursor() {
	n := p.store.Len()
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// RelativeTime formats the age of t relative to now: minutes under an hour,
// whole hours under a day, whole days beyond that.
func RelativeTime(now, t time.Time) string {
	d := max(now.Sub(t), 0)

	switch {
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// View renders the panel body sized for the given terminal.
func (p *NotificationPanel) View(width, height int) string {
	modalWidth := calcNotificationPanelWidth(width)
	contentWidth := modalWidth - 6
	maxRows := max((min(height-notifyPanelMargin, notifyPanelMaxHeight)-notifyPanelChrome)/notifyPanelRowHeight, 1)

	items := p.store.List()

	title := styles.IconBell + " Notifications"
	if unread := p.store.UnreadCount(); unread > 0 {
		title += " " + styles.BadgeStyle.Render(fmt.Sprintf("%d unread", unread))
	}

	var body string
	if len(items) == 0 {
		body = renderNotificationsEmpty(contentWidth)
	} else {
		if p.cursor < p.offset {
			p.offset = p.cursor
		}
		if p.cursor >= p.offset+maxRows {
			p.offset = p.cursor - maxRows + 1
		}
		end := min(p.offset+maxRows, len(items))

		now := p.now()
		var b strings.Builder
		for i := p.offset; i < end; i++ {
			if i > p.offset {
				b.WriteByte('\n')
			}
			b.WriteString(renderNotificationRow(items[i], now, contentWidth, i == p.cursor))
		}
		if end < len(items) {
			b.WriteString("\n" + styles.TextMutedStyle.Render(fmt.Sprintf("  ... %d more", len(items)-end)))
		}
		body = b.String()
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", contentWidth))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		divider,
		body,
		styles.ModalHelpStyle.Render("[j/k] move  [enter] mark read  [a] mark all read  [d] delete  [D] clear all  [esc] close"),
	)

	return styles.ModalStyle.Width(modalWidth).Render(content)
}

func renderNotificationsEmpty(width int) string {
	lines := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		styles.EmptyIconStyle.Render(styles.IconBellOff),
		"",
		styles.TextForegroundBoldStyle.Render("No notifications"),
		styles.EmptyStateStyle.Render("You're all caught up."),
		"",
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lines)
}

func renderNotificationRow(n notify.Notification, now time.Time, width int, selected bool) string {
	marker := "  "
	titleStyle := styles.NotificationReadStyle
	if !n.Read {
		marker = styles.TextPrimaryStyle.Render(styles.IconUnread) + " "
		titleStyle = styles.NotificationUnreadStyle
	}

	age := styles.NotificationTimeStyle.Render(RelativeTime(now, n.CreatedAt))
	head := marker + severityIcon(n) + " " + titleStyle.Render(ansi.Truncate(n.Title, width-lipgloss.Width(age)-6, "…"))
	gap := max(width-lipgloss.Width(head)-lipgloss.Width(age), 1)
	head += strings.Repeat(" ", gap) + age

	msg := "    " + styles.TextMutedStyle.Render(ansi.Truncate(n.Message, width-4, "…"))

	row := head + "\n" + msg
	if selected {
		row = styles.NotificationSelectedStyle.Width(width).Render(row)
	}
	return row
}

// Overlay renders the panel centered over the background.
func (p *NotificationPanel) Overlay(background string, width, height int) string {
	modal := p.View(width, height)

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}

func calcNotificationPanelWidth(termWidth int) int {
	available := max(termWidth-notifyPanelMargin, 1)
	target := termWidth * notifyPanelWidthPct / 100
	return min(max(target, notifyPanelMinWidth), available)
}
