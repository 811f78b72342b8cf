// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextPrimaryStyle        lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Modal styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style

	// Shell layout.
	HeaderStyle              lipgloss.Style
	BrandStyle               lipgloss.Style
	BadgeStyle               lipgloss.Style
	SidebarStyle             lipgloss.Style
	SidebarItemStyle         lipgloss.Style
	SidebarItemSelectedStyle lipgloss.Style
	SidebarItemActiveStyle   lipgloss.Style
	SidebarShortcutStyle     lipgloss.Style
	ContentStyle             lipgloss.Style
	StatusBarStyle           lipgloss.Style

	// View content.
	ViewTitleStyle  lipgloss.Style
	CardStyle       lipgloss.Style
	StatLabelStyle  lipgloss.Style
	StatValueStyle  lipgloss.Style
	EmptyStateStyle lipgloss.Style
	EmptyIconStyle  lipgloss.Style

	// Toasts.
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastActionStyle  lipgloss.Style

	// Notification panel.
	NotificationUnreadStyle   lipgloss.Style
	NotificationReadStyle     lipgloss.Style
	NotificationSelectedStyle lipgloss.Style
	NotificationTimeStyle     lipgloss.Style

	// Help dialog.
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style
	HelpKeyStyle           lipgloss.Style
	HelpDescStyle          lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	HeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Padding(0, 1)
	BrandStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	BadgeStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorError).
		Bold(true).
		Padding(0, 1)
	SidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	SidebarItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SidebarItemActiveStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true)
	SidebarShortcutStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ContentStyle = lipgloss.NewStyle().
		Padding(0, 2)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)

	ViewTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	EmptyIconStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastSuccessStyle = toastBase.BorderForeground(ColorSuccess).Foreground(ColorSuccess)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorError)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorWarning)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastActionStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)

	NotificationUnreadStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	NotificationReadStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	NotificationSelectedStyle = lipgloss.NewStyle().
		Background(ColorSurface)
	NotificationTimeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HelpDialogHelpStyle = ModalHelpStyle
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
