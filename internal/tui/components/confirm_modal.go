package components

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/campus/internal/core/styles"
)

const confirmModalWidth = 52

type confirmChoice int

const (
	choiceConfirm confirmChoice = iota
	choiceCancel
)

// ConfirmModal is a two-button confirmation dialog. The confirm button has
// focus when the dialog opens; y and n act as shortcuts for either button.
type ConfirmModal struct {
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	focus        confirmChoice
	result       *confirmChoice
}

func NewConfirmModal(title, message string) ConfirmModal {
	return ConfirmModal{
		title:        title,
		message:      message,
		confirmLabel: "Confirm",
		cancelLabel:  "Cancel",
	}
}

// WithLabels replaces the button captions.
func (m ConfirmModal) WithLabels(confirm, cancel string) ConfirmModal {
	m.confirmLabel = confirm
	m.cancelLabel = cancel
	return m
}

// Update handles input for the confirmation modal. Input after a decision
// has been made is ignored.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.result != nil {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.focus = 1 - m.focus
	case "enter":
		m.decide(m.focus)
	case "y", "Y":
		m.decide(choiceConfirm)
	case "n", "N", "esc":
		m.decide(choiceCancel)
	}

	return m, nil
}

func (m *ConfirmModal) decide(c confirmChoice) {
	m.focus = c
	m.result = &c
}

func (m ConfirmModal) View() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(m.confirmLabel, choiceConfirm),
		"  ",
		m.button(m.cancelLabel, choiceCancel),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(m.title),
		"",
		styles.TextForegroundStyle.Width(confirmModalWidth-4).Render(m.message),
		"",
		buttons,
		"",
		styles.HelpDialogHelpStyle.Render("y/n answer • tab switch • enter select"),
	)
	return styles.ModalStyle.Width(confirmModalWidth).Render(content)
}

func (m ConfirmModal) button(label string, c confirmChoice) string {
	if m.focus == c {
		return styles.ModalButtonSelectedStyle.Render(label)
	}
	return styles.ModalButtonStyle.Render(label)
}

// Overlay renders the modal centered over background.
func (m ConfirmModal) Overlay(background string, width, height int) string {
	return overlayCentered(background, m.View(), width, height)
}

func (m ConfirmModal) Confirmed() bool {
	return m.result != nil && *m.result == choiceConfirm
}

func (m ConfirmModal) Cancelled() bool {
	return m.result != nil && *m.result == choiceCancel
}
