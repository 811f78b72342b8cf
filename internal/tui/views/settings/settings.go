// Package settings renders a read-only summary of the active preferences.
package settings

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/internal/tui/views"
)

// Info is the snapshot shown on the screen.
type Info struct {
	Theme               string
	Dark                bool
	OnboardingCompleted bool
	Admin               bool
	StorageBackend      string
	Version             string
}

// View is the settings screen.
type View struct {
	info Info
}

// New creates the settings screen from a snapshot.
func New(info Info) *View {
	return &View{info: info}
}

func (v *View) Update(tea.Msg) tea.Cmd { return nil }

func (v *View) KeyMap() []key.Binding { return nil }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (v *View) View(width, _ int) string {
	mode := "light"
	if v.info.Dark {
		mode = "dark"
	}

	onboarding := "not completed (replay with f1)"
	if v.info.OnboardingCompleted {
		onboarding = "completed"
	}

	rows := [][2]string{
		{"Theme", fmt.Sprintf("%s (%s)", v.info.Theme, mode)},
		{"Onboarding", onboarding},
		{"Admin tools", yesNo(v.info.Admin)},
		{"Storage", v.info.StorageBackend},
		{"Version", v.info.Version},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(styles.StatLabelStyle.Render(fmt.Sprintf("%-14s", r[0])))
		b.WriteString(styles.StatValueStyle.Render(r[1]))
	}

	return views.Join(
		views.Header("gear", navigation.ViewSettings.Label()),
		styles.CardStyle.Render(b.String()),
		views.Empty("gear", "No preferences to edit yet",
			"Toggle the theme with ctrl+d. Other preferences live in config.yaml.", width),
	)
}
