// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/campus/internal/core/styles"
)

const (
	helpColumnGap = 4
	// sections beyond this count are split into two columns
	helpSingleColumnMax = 2
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays all available keyboard shortcuts.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the help dialog. Sections with no entries are skipped.
func (h *HelpDialog) View() string {
	var blocks []string
	for _, section := range h.sections {
		if len(section.Entries) > 0 {
			blocks = append(blocks, renderHelpSection(section))
		}
	}

	var body string
	if len(blocks) <= helpSingleColumnMax {
		body = strings.Join(blocks, "\n\n")
	} else {
		half := (len(blocks) + 1) / 2
		left := strings.Join(blocks[:half], "\n\n")
		right := strings.Join(blocks[half:], "\n\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", helpColumnGap), right)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		"",
		body,
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)

	return styles.HelpDialogModalStyle.Render(content)
}

// renderHelpSection lays out one section with its keys padded to the widest
// key in the section.
func renderHelpSection(section HelpDialogSection) string {
	keyWidth := 0
	for _, e := range section.Entries {
		keyWidth = max(keyWidth, lipgloss.Width(e.Key))
	}

	lines := make([]string, 0, len(section.Entries)+1)
	if section.Title != "" {
		lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
	}
	for _, e := range section.Entries {
		lines = append(lines, formatKeyDesc(e.Key, e.Desc, keyWidth))
	}
	return strings.Join(lines, "\n")
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return overlayCentered(background, h.View(), width, height)
}

func overlayCentered(background, modal string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	modalLayer.X(max((width-modalW)/2, 0)).Y(max((height-modalH)/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

func formatKeyDesc(key, desc string, keyWidth int) string {
	pad := keyWidth - lipgloss.Width(key) + 2
	return styles.HelpKeyStyle.Render(key+strings.Repeat(" ", pad)) + styles.HelpDescStyle.Render(desc)
}
