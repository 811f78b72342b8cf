package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

// Notification icons
var (
	IconNotifySuccess = "" // nf-fa-check_circle
	IconNotifyError   = "" // nf-fa-times_circle
	IconNotifyWarning = "" // nf-fa-warning
	IconNotifyInfo    = "" // nf-fa-info_circle
	IconBell          = "" // nf-fa-bell
	IconBellOff       = "" // nf-fa-bell_slash
	IconUnread        = "●"
)

// Category icons
var (
	IconCategorySystem      = "" // nf-fa-cog
	IconCategoryCourse      = "" // nf-fa-book
	IconCategorySocial      = "" // nf-fa-users
	IconCategoryAchievement = "" // nf-fa-trophy
)

// View icons, keyed by the icon names used in navigation descriptors.
var viewIcons = map[string]string{
	"home":      "", // nf-fa-home
	"book":      "", // nf-fa-book
	"video":     "", // nf-fa-video_camera
	"library":   "", // nf-fa-university
	"pencil":    "", // nf-fa-pencil
	"checklist": "", // nf-fa-tasks
	"trophy":    "", // nf-fa-trophy
	"chat":      "", // nf-fa-comments
	"sparkles":  "", // nf-fa-magic
	"chart":     "", // nf-fa-bar_chart
	"calendar":  "", // nf-fa-calendar
	"people":    "", // nf-fa-users
	"gear":      "", // nf-fa-cog
	"hourglass": "", // nf-fa-hourglass
}

// IconFallback is used for unknown icon names.
var IconFallback = "" // nf-fa-spinner

// Icon returns the glyph for a named icon, or IconFallback.
func Icon(name string) string {
	if glyph, ok := viewIcons[name]; ok {
		return glyph
	}
	return IconFallback
}
