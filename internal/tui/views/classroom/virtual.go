package classroom

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/campus/internal/core/media"
	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/internal/tui/views"
)

var virtualKeys = struct {
	Up    key.Binding
	Down  key.Binding
	Join  key.Binding
	Leave key.Binding
}{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev option")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next option")),
	Join:  key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "join")),
	Leave: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "leave")),
}

// VirtualView is the virtual classroom: a join dialog that probes local
// capture devices, then a connected placeholder.
type VirtualView struct {
	ctx     context.Context
	session *media.Session
	course  *navigation.CoursePayload
	modes   []media.Mode
	cursor  int
}

// NewVirtual creates the virtual classroom screen around session.
func NewVirtual(ctx context.Context, session *media.Session, course *navigation.CoursePayload) *VirtualView {
	return &VirtualView{
		ctx:     ctx,
		session: session,
		course:  course,
		modes:   media.Modes(),
	}
}

// Session exposes the join state.
func (v *VirtualView) Session() *media.Session {
	return v.session
}

// Selected returns the highlighted join mode.
func (v *VirtualView) Selected() media.Mode {
	return v.modes[v.cursor]
}

func (v *VirtualView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if !v.session.DialogOpen {
		if key.Matches(keyMsg, virtualKeys.Leave) {
			v.session.Leave()
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, virtualKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, virtualKeys.Down):
		if v.cursor < len(v.modes)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, virtualKeys.Join):
		return v.join(v.Selected())
	}
	return nil
}

func (v *VirtualView) join(mode media.Mode) tea.Cmd {
	if err := v.session.Join(v.ctx, mode); err != nil {
		// Offer viewer mode, which needs no devices.
		v.cursor = slices.Index(v.modes, media.ModeViewer)
		return views.Notify(notify.Input{
			Severity: notify.SeverityError,
			Title:    "Could not access media devices",
			Message:  v.session.PermissionError,
			Category: notify.CategorySystem,
		})
	}
	return nil
}

// Teardown releases any held devices.
func (v *VirtualView) Teardown() {
	if v.session.Connected {
		v.session.Leave()
	}
}

func (v *VirtualView) KeyMap() []key.Binding {
	if v.session.DialogOpen {
		return []key.Binding{virtualKeys.Up, virtualKeys.Down, virtualKeys.Join}
	}
	return []key.Binding{virtualKeys.Leave}
}

func (v *VirtualView) View(width, _ int) string {
	title := navigation.ViewVirtualClassroom.Label()
	if v.course != nil {
		title += ": " + v.course.Title
	}
	header := views.Header("video", title)

	if v.session.DialogOpen {
		return views.Join(header, v.renderDialog())
	}

	var tracks strings.Builder
	for _, t := range v.session.Tracks() {
		fmt.Fprintf(&tracks, "%s %s\n", styles.TextSuccessStyle.Render("●"), styles.TextForegroundStyle.Render(t.Kind+" "+t.Path))
	}

	status := styles.TextSuccessStyle.Render("Connected") + styles.TextMutedStyle.Render(" · "+v.session.Mode.Label())
	return views.Join(
		header,
		status,
		strings.TrimRight(tracks.String(), "\n"),
		views.Stats([]views.Stat{{Label: "Participants", Value: "0"}}),
		views.Empty("video", "Waiting for the instructor", "The session will start when your instructor joins.", width),
	)
}

func (v *VirtualView) renderDialog() string {
	lines := []string{styles.ModalTitleStyle.Render("How would you like to join?"), ""}
	for i, m := range v.modes {
		cursor := "  "
		style := styles.TextForegroundStyle
		if i == v.cursor {
			cursor = styles.TextPrimaryStyle.Render("> ")
			style = styles.TextPrimaryStyle.Bold(true)
		}
		lines = append(lines, cursor+style.Render(m.Label()))
	}

	if v.session.PermissionError != "" {
		lines = append(lines,
			"",
			styles.TextErrorStyle.Render(v.session.PermissionError),
			styles.TextMutedStyle.Render("You can still join as a viewer."),
		)
	}

	return styles.CardStyle.Render(strings.Join(lines, "\n"))
}
