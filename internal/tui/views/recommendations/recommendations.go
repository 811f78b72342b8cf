// Package recommendations renders the recommendations screen. Generating is
// a timed loading state; no recommendations are ever produced.
package recommendations

import (
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/internal/tui/views"
)

// DefaultGenerateDelay is how long the generating state lasts.
const DefaultGenerateDelay = 2 * time.Second

var generateKey = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate"))

// generations is shared by every View so that a completion can never match a
// different screen instance than the one that started it.
var generations atomic.Uint64

// GeneratedMsg signals the end of a generating delay.
type GeneratedMsg struct {
	Gen uint64
}

// View is the recommendations screen.
type View struct {
	delay      time.Duration
	gen        uint64
	generating bool
	generated  bool
	spinner    spinner.Model
}

// New creates the screen. A non-positive delay uses DefaultGenerateDelay.
func New(delay time.Duration) *View {
	if delay <= 0 {
		delay = DefaultGenerateDelay
	}
	return &View{
		delay:   delay,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.TextPrimaryStyle)),
	}
}

// Generating reports whether a generate request is in flight.
func (v *View) Generating() bool {
	return v.generating
}

// Generated reports whether a generate request has completed.
func (v *View) Generated() bool {
	return v.generated
}

func (v *View) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, generateKey) && !v.generating {
			return v.generate()
		}
	case GeneratedMsg:
		if !v.generating || msg.Gen != v.gen {
			return nil
		}
		v.generating = false
		v.generated = true
	case spinner.TickMsg:
		if v.generating {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return cmd
		}
	}
	return nil
}

func (v *View) generate() tea.Cmd {
	v.gen = generations.Add(1)
	v.generating = true
	gen := v.gen
	return tea.Batch(
		v.spinner.Tick,
		tea.Tick(v.delay, func(time.Time) tea.Msg { return GeneratedMsg{Gen: gen} }),
	)
}

// Teardown drops any in-flight generate request.
func (v *View) Teardown() {
	v.generating = false
	v.gen = 0
}

func (v *View) KeyMap() []key.Binding {
	if v.generating {
		return nil
	}
	return []key.Binding{generateKey}
}

func (v *View) View(width, _ int) string {
	header := views.Header("sparkles", navigation.ViewRecommendations.Label())

	switch {
	case v.generating:
		body := v.spinner.View() + " " + styles.TextForegroundStyle.Render("Analyzing your learning profile…")
		return views.Join(header, lipgloss.PlaceHorizontal(max(width, 0), lipgloss.Center, body))
	case v.generated:
		return views.Join(header, views.Empty("sparkles", "No recommendations yet",
			"Complete a few lessons so we can tailor suggestions to you.", width))
	default:
		return views.Join(header, views.Empty("sparkles", "Personalized recommendations",
			"Press g to generate AI recommendations based on your activity.", width))
	}
}
