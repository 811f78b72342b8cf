// Package views holds the full-panel screens shown in the shell's content
// area, plus the rendering helpers they share.
package views

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
)

// Model is a screen mounted in the content area. A fresh Model is created
// every time its view is entered.
type Model interface {
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	KeyMap() []key.Binding
}

// Teardowner is implemented by screens that hold resources or pending timers
// that must be released when the screen is left.
type Teardowner interface {
	Teardown()
}

// NotifyMsg asks the shell to raise a notification on a screen's behalf.
type NotifyMsg struct {
	Input notify.Input
}

// Notify returns a command that emits a NotifyMsg.
func Notify(in notify.Input) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Input: in} }
}

// Stat is a labelled counter shown on a screen's summary row.
type Stat struct {
	Label string
	Value string
}

// Header renders the screen title with its icon.
func Header(icon, title string) string {
	return styles.ViewTitleStyle.Render(styles.Icon(icon) + "  " + title)
}

// Stats renders counters as a row of cards.
func Stats(stats []Stat) string {
	if len(stats) == 0 {
		return ""
	}
	cards := make([]string, 0, len(stats)*2)
	for i, s := range stats {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, styles.CardStyle.Render(
			styles.StatValueStyle.Render(s.Value)+"\n"+styles.StatLabelStyle.Render(s.Label),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Empty renders the centered empty-state block.
func Empty(icon, heading, body string, width int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.EmptyIconStyle.Render(styles.Icon(icon)),
		"",
		styles.TextForegroundBoldStyle.Render(heading),
		styles.EmptyStateStyle.Render(body),
	)
	if width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// Join stacks non-empty sections with a blank line between them.
func Join(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}
