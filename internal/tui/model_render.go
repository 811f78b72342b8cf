package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}

	content := m.renderShell(w, h)

	switch {
	case m.state == stateCommandPalette && m.palette != nil:
		content = m.palette.Overlay(content, w, h)
	case m.state == stateShowingHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(content, w, h)
	case m.state == stateShowingNotifications && m.panel != nil:
		content = m.panel.Overlay(content, w, h)
	case m.state == stateTour && m.tour != nil:
		content = m.tour.Overlay(content, w, h)
	case m.state == stateAdminPrompt:
		content = m.adminPrompt.Overlay(content, w, h)
	}

	// Toasts stay on top of every modal.
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderShell lays out header, sidebar, content and status bar.
func (m Model) renderShell(w, h int) string {
	header := m.renderHeader(w)
	status := m.renderStatusBar(w)

	bodyH := max(h-lipgloss.Height(header)-lipgloss.Height(status), 1)
	sidebar := m.renderSidebar(bodyH)
	contentW := max(w-lipgloss.Width(sidebar), 1)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, m.renderContent(contentW, bodyH))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader(w int) string {
	state := m.app.Navigation.State()

	left := styles.BrandStyle.Render("campus") +
		styles.TextMutedStyle.Render(" / ") +
		styles.TextForegroundBoldStyle.Render(state.Current.Label())
	if state.Course != nil {
		left += styles.TextMutedStyle.Render(" / " + state.Course.Title)
	}
	if m.prefs.admin {
		left += " " + styles.ToastActionStyle.Render("ADMIN")
	}

	right := styles.TextForegroundStyle.Render(styles.IconBell)
	if unread := m.store.UnreadCount(); unread > 0 {
		right += " " + styles.BadgeStyle.Render(fmt.Sprintf("%d", unread))
	}

	gap := max(w-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.HeaderStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderSidebar(h int) string {
	state := m.app.Navigation.State()
	itemW := sidebarWidth - 3

	lines := make([]string, 0, len(navigation.Views()))
	for i, v := range navigation.Views() {
		icon := styles.Icon(navigation.DescriptorFor(v).Icon)
		label := icon + " " + v.Label()
		if v == state.Pending {
			label += " …"
		}

		hint := m.keys.ShortcutHint(v)
		pad := max(itemW-lipgloss.Width(label)-lipgloss.Width(hint), 1)
		line := ansi.Truncate(label, itemW, "…")
		if hint != "" {
			line = label + strings.Repeat(" ", pad) + styles.SidebarShortcutStyle.Render(hint)
		}

		switch {
		case v == state.Current:
			line = styles.SidebarItemActiveStyle.Width(itemW).Render(ansi.Strip(line))
		case i == m.sidebarCursor:
			line = styles.SidebarItemSelectedStyle.Render(line)
		default:
			line = styles.SidebarItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	return styles.SidebarStyle.
		Width(sidebarWidth).
		Height(h).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderContent(w, h int) string {
	innerW := max(w-4, 1)

	var body string
	state := m.app.Navigation.State()
	switch {
	case state.Loading:
		body = m.renderLoading(state.Descriptor, innerW, h)
	case m.screen != nil:
		body = m.screen.View(innerW, h)
	}

	return styles.ContentStyle.
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(body)
}

func (m Model) renderLoading(d navigation.Descriptor, w, h int) string {
	bar := m.progress
	bar.SetWidth(min(40, w))

	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.TextPrimaryStyle.Render(styles.Icon(d.Icon)),
		"",
		styles.TextForegroundBoldStyle.Render(d.Title),
		styles.TextMutedStyle.Render(d.Description),
		"",
		bar.ViewAs(float64(m.loadingPct)/100),
	)

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, block)
}

func (m Model) renderStatusBar(w int) string {
	var hints []string
	switch m.state {
	case stateCommandPalette:
		hints = []string{"enter run", "tab complete", "esc close"}
	case stateShowingNotifications:
		hints = []string{"enter read", "d delete", "a read all", "D clear", "esc close"}
	case stateTour:
		hints = []string{"← → page", "enter next", "esc close"}
	case stateAdminPrompt:
		hints = []string{"y confirm", "n cancel"}
	case stateShowingHelp:
		hints = []string{"esc close"}
	default:
		hints = []string{"ctrl+k commands", "ctrl+n notifications", "f1 tour", "? help", "q quit"}
		if m.toastController.HasAction() {
			hints = append([]string{"x run action"}, hints...)
		}
	}

	return styles.StatusBarStyle.
		Width(w).
		Render(ansi.Truncate(strings.Join(hints, " • "), max(w-2, 1), "…"))
}
