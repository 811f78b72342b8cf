package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/campus/internal/core/logging"
	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/tui/components"
)

// --- Timers ---

func (m Model) handleNavCommit(msg navCommitMsg) (tea.Model, tea.Cmd) {
	state, ok := m.app.Navigation.Commit(msg.token)
	if !ok {
		return m, nil
	}

	m.screen = m.screens.Mount(state)
	m.syncSidebar(state.Current)

	m.logCtx = logging.WithView(m.ctx, string(state.Current))
	if state.Course != nil {
		m.logCtx = logging.WithCourseID(m.logCtx, state.Course.ID)
	}
	m.logger.Info().Ctx(m.logCtx).Msg("view mounted")

	return m, m.ensureToastTick()
}

func (m Model) handleTourAutoOpen() (tea.Model, tea.Cmd) {
	if m.state != stateNormal || !m.app.Onboarding.ShouldAutoOpen(m.ctx) {
		m.logger.Debug().Int("state", int(m.state)).Msg("skipping tour auto-open")
		return m, nil
	}
	return m.openTour()
}

func (m Model) handleToastTick(_ toastTickMsg) (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

// --- Keys ---

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == keyCtrlC {
		return m.quit()
	}

	switch m.state {
	case stateCommandPalette:
		return m.handleCommandPaletteKey(msg)
	case stateShowingHelp:
		return m.handleHelpDialogKey(keyStr)
	case stateShowingNotifications:
		return m.handleNotificationPanelKey(keyStr)
	case stateTour:
		return m.handleTourKey(keyStr)
	case stateAdminPrompt:
		return m.handleAdminPromptKey(msg)
	}

	return m.handleNormalKey(msg, keyStr)
}

// handleNormalKey handles keys with no modal open. Global bindings win, then
// toast keys, then the mounted screen, then the sidebar.
func (m Model) handleNormalKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Palette):
		return m.openCommandPalette()
	case key.Matches(msg, m.keys.Tour):
		return m.openTour()
	case key.Matches(msg, m.keys.Admin):
		return m.openAdminPrompt()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Notifications):
		return m.openNotificationPanel()
	case key.Matches(msg, m.keys.Help):
		return m.showHelpDialog()
	}

	if v, ok := m.keys.ShortcutFor(keyStr); ok {
		return m, m.navigate(v, nil)
	}

	if m.toastController.HasToasts() {
		if key.Matches(msg, m.keys.DismissToast) {
			m.toastController.Dismiss()
			return m, nil
		}
		if m.toastController.HasAction() && key.Matches(msg, m.keys.ToastAction) {
			m.toastController.InvokeAction()
			if m.app.Onboarding.Visible() && m.tour == nil {
				return m.openTour()
			}
			return m, nil
		}
	}

	if !m.app.Navigation.State().Loading && m.screen != nil && key.Matches(msg, m.screen.KeyMap()...) {
		return m, m.screen.Update(msg)
	}

	views := navigation.Views()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sidebarCursor < len(views)-1 {
			m.sidebarCursor++
		}
	case key.Matches(msg, m.keys.Open):
		return m, m.navigate(views[m.sidebarCursor], nil)
	}

	return m, nil
}

func (m Model) handleCommandPaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)

	if m.palette.Cancelled() {
		m.state = stateNormal
		m.palette = nil
		return m, nil
	}

	if entry, parsed, ok := m.palette.SelectedCommand(); ok {
		m.state = stateNormal
		m.palette = nil
		return m.runCommand(entry, parsed)
	}

	return m, cmd
}

func (m Model) handleHelpDialogKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc", "?", "q":
		m.state = stateNormal
		m.helpDialog = nil
	}
	return m, nil
}

func (m Model) handleNotificationPanelKey(keyStr string) (tea.Model, tea.Cmd) {
	if m.panel.HandleKey(keyStr) {
		m.state = stateNormal
		m.panel = nil
	}
	return m, nil
}

func (m Model) handleTourKey(keyStr string) (tea.Model, tea.Cmd) {
	switch m.tour.HandleKey(keyStr) {
	case TourCompleted:
		m.state = stateNormal
		m.tour = nil
		if err := m.app.Onboarding.Complete(m.ctx); err != nil {
			return m, m.notifyError("Could not save tour progress", "%v", err)
		}
		m.store.Show(notify.Input{
			Severity: notify.SeveritySuccess,
			Title:    "Tour complete",
			Message:  "Press f1 any time to replay it.",
			Category: notify.CategoryAchievement,
		})
		return m, m.ensureToastTick()
	case TourClosed:
		m.state = stateNormal
		m.tour = nil
		m.app.Onboarding.Close()
	case TourSnoozed:
		m.state = stateNormal
		m.tour = nil
		d := m.app.Config.Onboarding.Snooze
		if err := m.app.Onboarding.Snooze(m.ctx, d); err != nil {
			return m, m.notifyError("Could not snooze the tour", "%v", err)
		}
		m.store.Show(notify.Input{
			Severity: notify.SeverityInfo,
			Title:    "Tour snoozed",
			Message:  fmt.Sprintf("It will open again after %s. Press f1 to start it now.", d),
			Category: notify.CategorySystem,
		})
		return m, m.ensureToastTick()
	}
	return m, nil
}

func (m Model) handleAdminPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.adminPrompt, _ = m.adminPrompt.Update(msg)

	switch {
	case m.adminPrompt.Confirmed():
		m.state = stateNormal
		m.prefs.admin = !m.prefs.admin
		if m.prefs.admin {
			m.store.Show(notify.Input{
				Severity: notify.SeveritySuccess,
				Title:    "Admin access granted",
				Message:  "Admin tools are enabled for this session.",
				Category: notify.CategorySystem,
			})
		} else {
			m.store.Show(notify.Input{
				Severity: notify.SeverityInfo,
				Title:    "Admin access revoked",
				Category: notify.CategorySystem,
			})
		}
		m.logger.Info().Bool("admin", m.prefs.admin).Msg("admin access toggled")
		return m, m.ensureToastTick()
	case m.adminPrompt.Cancelled():
		m.state = stateNormal
	}
	return m, nil
}

// --- Openers ---

func (m Model) openCommandPalette() (tea.Model, tea.Cmd) {
	m.palette = NewCommandPalette()
	m.state = stateCommandPalette
	return m, nil
}

func (m Model) openNotificationPanel() (tea.Model, tea.Cmd) {
	m.panel = NewNotificationPanel(m.store, m.opts.Now)
	m.state = stateShowingNotifications
	return m, nil
}

func (m Model) showHelpDialog() (tea.Model, tea.Cmd) {
	var viewKeys []key.Binding
	if m.screen != nil {
		viewKeys = m.screen.KeyMap()
	}
	m.helpDialog = components.NewHelpDialog("Keyboard Shortcuts", m.keys.HelpSections(viewKeys))
	m.state = stateShowingHelp
	return m, nil
}

// openTour shows the tour regardless of the persisted completion flag.
func (m Model) openTour() (tea.Model, tea.Cmd) {
	tour, err := NewTour(m.tourData())
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to build tour")
		return m, m.notifyError("Tour unavailable", "%v", err)
	}

	m.tour = tour
	m.app.Onboarding.Start()
	m.state = stateTour
	return m, nil
}

func (m Model) openAdminPrompt() (tea.Model, tea.Cmd) {
	message, confirm := "Enable admin tools for this session? No credentials are checked.", "Grant"
	if m.prefs.admin {
		message, confirm = "Disable admin tools for this session?", "Revoke"
	}
	m.adminPrompt = components.NewConfirmModal("Admin Access", message).WithLabels(confirm, "Cancel")
	m.state = stateAdminPrompt
	return m, nil
}

// --- Commands ---

// runCommand executes a confirmed palette command.
func (m Model) runCommand(entry CommandEntry, parsed ParsedCommand) (tea.Model, tea.Cmd) {
	m.logger.Debug().Str("command", entry.Name).Strs("args", parsed.Args).Msg("palette command")

	switch entry.Name {
	case cmdGoto:
		arg := parsed.Arg()
		if arg == "" {
			return m, m.notifyError("Missing view", "usage: %s", entry.Usage)
		}
		return m, m.navigate(resolveView(arg), nil)
	case cmdClassroom:
		title := parsed.Arg()
		if title == "" {
			return m, m.notifyError("Missing course", "usage: %s", entry.Usage)
		}
		return m, m.navigate(navigation.ViewClassroom, navigation.CoursePayload{ID: courseID(title), Title: title})
	case cmdNotifications:
		return m.openNotificationPanel()
	case cmdTour:
		return m.openTour()
	case cmdTheme:
		m.toggleTheme()
		return m, nil
	case cmdAdmin:
		return m.openAdminPrompt()
	case cmdClearNotifications:
		m.store.ClearAll()
		m.toastController.DismissAll()
		return m, nil
	}

	return m, nil
}
