// Package tui implements the Bubble Tea shell for campus.
package tui

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/campus/internal/campus"
	"github.com/colonyops/campus/internal/core/logging"
	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/internal/tui/components"
	"github.com/colonyops/campus/internal/tui/views"
	"github.com/colonyops/campus/internal/tui/views/settings"
)

// UIState represents the current modal state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateCommandPalette
	stateShowingHelp
	stateShowingNotifications
	stateTour
	stateAdminPrompt
)

const (
	sidebarWidth  = 28
	defaultWidth  = 100
	defaultHeight = 30
)

// Options configures the TUI behavior.
type Options struct {
	NoTour bool             // suppress the first-run tour auto-open
	Now    func() time.Time // clock for relative times, defaults to time.Now
}

// navCommitMsg fires when a transition's loading delay has elapsed.
type navCommitMsg struct {
	token uint64
}

// tourAutoOpenMsg fires after the first-run auto-open delay.
type tourAutoOpenMsg struct{}

// preferences is shell state shared with screen factories, so it lives
// behind a pointer while Model is passed by value.
type preferences struct {
	theme string
	dark  bool
	admin bool
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctx    context.Context
	logCtx context.Context
	app    *campus.App
	store  *notify.Store
	opts   Options
	logger zerolog.Logger
	keys   KeyMap
	prefs  *preferences

	state         UIState
	width         int
	height        int
	sidebarCursor int

	screens *viewRegistry
	screen  views.Model

	loadingPct int
	progress   progress.Model

	toastController *ToastController
	toastView       *ToastView
	panel           *NotificationPanel
	palette         *CommandPalette
	helpDialog      *components.HelpDialog
	tour            *Tour
	adminPrompt     components.ConfirmModal

	quitting bool
}

// New creates a new TUI model. The notification store is taken from ctx
// and must have been installed with notify.WithStore.
func New(ctx context.Context, app *campus.App, opts Options) Model {
	store := notify.MustFromContext(ctx)
	cfg := app.Config
	logger := logging.Component("tui")

	toastController := NewToastController(ToastOptions{
		TTL:        cfg.Toasts.TTL,
		ActionTTL:  cfg.Toasts.ActionTTL,
		MaxVisible: cfg.Toasts.MaxVisible,
	})
	store.Subscribe(func(n notify.Notification) {
		toastController.Push(n)
	})

	app.Navigation.OnChange(func(s navigation.State) {
		logger.Debug().
			Str("current", string(s.Current)).
			Str("pending", string(s.Pending)).
			Bool("loading", s.Loading).
			Msg("navigation state changed")
	})

	prefs := &preferences{theme: cfg.Theme}
	if p, ok := styles.GetPalette(cfg.Theme); ok {
		prefs.dark = p.Dark
	}

	settingsInfo := func() settings.Info {
		return settings.Info{
			Theme:               prefs.theme,
			Dark:                prefs.dark,
			Admin:               prefs.admin,
			OnboardingCompleted: app.Onboarding.Completed(ctx),
			StorageBackend:      cfg.Storage.Backend,
			Version:             app.Build.Version,
		}
	}

	m := Model{
		ctx:             ctx,
		logCtx:          ctx,
		app:             app,
		store:           store,
		opts:            opts,
		logger:          logger,
		keys:            NewKeyMap(cfg.ShortcutViews()),
		prefs:           prefs,
		screens:         newViewRegistry(newScreenFactory(ctx, app.Media, cfg.Recommendations.GenerateDelay, settingsInfo)),
		progress:        newProgressBar(),
		toastController: toastController,
		toastView:       NewToastView(toastController),
	}

	state := app.Navigation.State()
	m.screen = m.screens.Mount(state)
	m.syncSidebar(state.Current)

	return m
}

func newProgressBar() progress.Model {
	return progress.New(
		progress.WithColors(styles.ColorPrimary, styles.ColorSecondary),
		progress.WithWidth(40),
	)
}

// Init schedules the first-run tour, or advertises it with a toast action
// when auto-open is disabled.
func (m Model) Init() tea.Cmd {
	if !m.app.Onboarding.ShouldAutoOpen(m.ctx) {
		return nil
	}

	if m.opts.NoTour {
		m.store.Show(notify.Input{
			Severity: notify.SeverityInfo,
			Title:    "New to campus?",
			Message:  "Take a one-minute tour of the shell.",
			Category: notify.CategorySystem,
			Action:   &notify.Action{Label: "Start tour", Run: m.app.Onboarding.Start},
		})
		return m.ensureToastTick()
	}

	return tea.Tick(m.app.Config.Onboarding.AutoOpenDelay, func(time.Time) tea.Msg {
		return tourAutoOpenMsg{}
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	// Timers
	case navCommitMsg:
		return m.handleNavCommit(msg)
	case tourAutoOpenMsg:
		return m.handleTourAutoOpen()
	case toastTickMsg:
		return m.handleToastTick(msg)

	// Screen requests
	case views.NotifyMsg:
		m.store.Show(msg.Input)
		return m, m.ensureToastTick()

	// Input
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.handleFallthrough(msg)
}

// handleFallthrough routes everything else. The mounted screen always sees
// the message so its timers keep running behind overlays; the palette also
// gets it while open for paste and cursor blink.
func (m Model) handleFallthrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.state == stateCommandPalette && m.palette != nil {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.screen != nil {
		cmds = append(cmds, m.screen.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// navigate requests a transition. Same-view and busy rejections are
// silent; anything else is surfaced as an error toast.
func (m *Model) navigate(target navigation.View, payload navigation.Payload) tea.Cmd {
	tr, err := m.app.Navigation.Navigate(target, payload)
	if err != nil {
		switch {
		case errors.Is(err, navigation.ErrSameView):
			return nil
		case errors.Is(err, navigation.ErrBusy):
			m.logger.Debug().Err(err).Str("target", string(target)).Msg("navigation rejected")
			return nil
		default:
			m.logger.Warn().Err(err).Str("target", string(target)).Msg("navigation failed")
			return m.notifyError("Navigation failed", "%v", err)
		}
	}

	m.loadingPct = navigation.LoadingProgress()
	token := tr.Token
	return tea.Batch(
		tea.Tick(tr.Delay, func(time.Time) tea.Msg { return navCommitMsg{token: token} }),
		m.ensureToastTick(),
	)
}

// syncSidebar moves the sidebar cursor onto v when it is listed.
func (m *Model) syncSidebar(v navigation.View) {
	if i := slices.Index(navigation.Views(), v); i >= 0 {
		m.sidebarCursor = i
	}
}

// ensureToastTick starts the toast tick chain when toasts are visible and no
// chain is running.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

// notifyError publishes an error-level notification and returns a command
// to start the toast tick timer if needed.
func (m *Model) notifyError(title, format string, args ...any) tea.Cmd {
	m.store.Errorf(title, format, args...)
	return m.ensureToastTick()
}

// applyTheme switches the active theme at runtime.
func (m *Model) applyTheme(name string) {
	palette, ok := styles.GetPalette(name)
	if !ok {
		m.logger.Warn().Str("theme", name).Msg("unknown theme")
		return
	}
	styles.SetTheme(palette)
	m.prefs.theme = name
	m.prefs.dark = palette.Dark
	m.progress = newProgressBar()
	m.logger.Debug().Str("theme", name).Bool("dark", palette.Dark).Msg("theme applied")
}

// toggleTheme flips between the configured theme and the light theme.
func (m *Model) toggleTheme() {
	next := m.app.Config.Theme
	if m.prefs.theme == next {
		next = m.app.Config.LightTheme
	}
	m.applyTheme(next)
}

// tourData builds the template data for the tour pages.
func (m Model) tourData() TourData {
	shortcuts := make([]tourShortcut, 0, len(m.keys.Shortcuts))
	for _, s := range m.keys.Shortcuts {
		shortcuts = append(shortcuts, tourShortcut{Key: s.Binding.Help().Key, Label: s.View.Label()})
	}
	return TourData{
		Version:   m.app.Build.Version,
		Shortcuts: shortcuts,
		Commands:  paletteCommands,
	}
}

// courseID derives a stable identifier from a course title.
func courseID(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}

// quit tears down the mounted screen and any pending transition.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.app.Navigation.Cancel()
	m.screens.TeardownAll()
	m.quitting = true
	return m, tea.Quit
}
