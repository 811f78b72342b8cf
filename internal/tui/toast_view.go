package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack as a single string with toasts stacked
// vertically (oldest at top, newest at bottom).
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

// severityIcon returns the glyph for a notification. A category, when set,
// takes precedence over the severity.
func severityIcon(n notify.Notification) string {
	switch n.Category {
	case notify.CategorySystem:
		return styles.IconCategorySystem
	case notify.CategoryCourse:
		return styles.IconCategoryCourse
	case notify.CategorySocial:
		return styles.IconCategorySocial
	case notify.CategoryAchievement:
		return styles.IconCategoryAchievement
	}

	switch n.Severity {
	case notify.SeveritySuccess:
		return styles.IconNotifySuccess
	case notify.SeverityError:
		return styles.IconNotifyError
	case notify.SeverityWarning:
		return styles.IconNotifyWarning
	default:
		return styles.IconNotifyInfo
	}
}

func toastStyle(s notify.Severity) lipgloss.Style {
	switch s {
	case notify.SeveritySuccess:
		return styles.ToastSuccessStyle
	case notify.SeverityError:
		return styles.ToastErrorStyle
	case notify.SeverityWarning:
		return styles.ToastWarningStyle
	default:
		return styles.ToastInfoStyle
	}
}

func renderToast(t toast) string {
	n := t.notification

	lines := make([]string, 0, 3)
	lines = append(lines, severityIcon(n)+" "+styles.TextForegroundBoldStyle.Render(n.Title))
	if n.Message != "" {
		lines = append(lines, n.Message)
	}
	if n.HasAction() {
		lines = append(lines, styles.ToastActionStyle.Render(n.Action.Label)+
			styles.TextMutedStyle.Render(" x"))
	}

	return toastStyle(n.Severity).Width(toastWidth).Render(strings.Join(lines, "\n"))
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH-1, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
