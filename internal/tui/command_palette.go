package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
)

// Palette command names.
const (
	cmdGoto               = "goto"
	cmdClassroom          = "classroom"
	cmdNotifications      = "notifications"
	cmdTour               = "tour"
	cmdTheme              = "theme"
	cmdAdmin              = "admin"
	cmdClearNotifications = "clear-notifications"
)

const (
	paletteMaxVisible = 10
	paletteWidth      = 72
)

// CommandEntry represents an item in the command palette.
type CommandEntry struct {
	Name  string
	Usage string
	Help  string
}

// paletteCommands is the fixed command set, in display order.
var paletteCommands = []CommandEntry{
	{Name: cmdGoto, Usage: "goto <view>", Help: "Navigate to a view"},
	{Name: cmdClassroom, Usage: "classroom <course title>", Help: "Open the classroom with a course"},
	{Name: cmdNotifications, Usage: "notifications", Help: "Open the notification panel"},
	{Name: cmdTour, Usage: "tour", Help: "Start the onboarding tour"},
	{Name: cmdTheme, Usage: "theme", Help: "Toggle between dark and light themes"},
	{Name: cmdAdmin, Usage: "admin", Help: "Request admin access"},
	{Name: cmdClearNotifications, Usage: "clear-notifications", Help: "Delete every notification"},
}

// ParsedCommand represents a parsed command input.
type ParsedCommand struct {
	Name string
	Args []string
}

// Arg returns the arguments joined by single spaces.
func (p ParsedCommand) Arg() string {
	return strings.Join(p.Args, " ")
}

// ParseCommandInput parses a command string like ":command arg1 arg2" into
// name and args. The leading ':' is optional.
func ParseCommandInput(input string) ParsedCommand {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, ":")

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return ParsedCommand{}
	}

	return ParsedCommand{
		Name: parts[0],
		Args: parts[1:],
	}
}

// resolveView maps a user-typed view name to a View. Keys and labels match
// case-insensitively with spaces treated as dashes, so "community hub" finds
// the discussions view. Anything else is passed through as a raw view key.
func resolveView(arg string) navigation.View {
	norm := strings.ToLower(strings.Join(strings.Fields(arg), "-"))
	for _, v := range navigation.Views() {
		if string(v) == norm || strings.ToLower(strings.ReplaceAll(v.Label(), " ", "-")) == norm {
			return v
		}
	}
	return navigation.View(norm)
}

// CommandPalette is a vim-style command palette for shell commands.
type CommandPalette struct {
	commands     []CommandEntry
	input        textinput.Model
	filteredList []CommandEntry
	selectedIdx  int
	scrollOffset int
	selected     bool
	cancelled    bool
}

// NewCommandPalette creates a palette over the built-in command set.
func NewCommandPalette() *CommandPalette {
	input := textinput.New()
	input.Placeholder = "command [args...]"
	input.Prompt = ":"
	input.Focus()
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Focused.Prompt = styles.TextPrimaryStyle
	inputStyles.Cursor.Color = styles.ColorPrimary
	input.SetWidth(paletteWidth - 10)
	input.SetStyles(inputStyles)

	return &CommandPalette{
		commands:     paletteCommands,
		input:        input,
		filteredList: paletteCommands,
	}
}

// Update handles messages for the command palette.
func (p *CommandPalette) Update(msg tea.Msg) (*CommandPalette, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if len(p.filteredList) > 0 && p.selectedIdx < len(p.filteredList) {
				p.selected = true
			}
			return p, nil
		case "esc":
			p.cancelled = true
			return p, nil
		case "tab":
			if len(p.filteredList) > 0 && p.selectedIdx < len(p.filteredList) {
				selected := p.filteredList[p.selectedIdx]
				parsed := ParseCommandInput(p.input.Value())

				newInput := selected.Name + " "
				if len(parsed.Args) > 0 {
					newInput += parsed.Arg()
				}

				p.input.SetValue(newInput)
				p.input.SetCursor(len(newInput))
			}
			return p, nil
		case "up", "ctrl+p":
			if p.selectedIdx > 0 {
				p.selectedIdx--
				p.adjustScroll()
			}
			return p, nil
		case "down", "ctrl+n":
			if p.selectedIdx < len(p.filteredList)-1 {
				p.selectedIdx++
				p.adjustScroll()
			}
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.updateFilter()

	return p, cmd
}

// updateFilter filters the command list based on the current input.
func (p *CommandPalette) updateFilter() {
	parsed := ParseCommandInput(p.input.Value())

	if parsed.Name == "" {
		p.filteredList = p.commands
		p.selectedIdx = 0
		p.scrollOffset = 0
		return
	}

	filtered := make([]CommandEntry, 0, len(p.commands))
	for _, cmd := range p.commands {
		if strings.HasPrefix(cmd.Name, parsed.Name) {
			filtered = append(filtered, cmd)
		}
	}

	if len(filtered) == 0 {
		for _, cmd := range p.commands {
			if strings.Contains(cmd.Name, parsed.Name) {
				filtered = append(filtered, cmd)
			}
		}
	}

	p.filteredList = filtered
	p.selectedIdx = 0
	p.scrollOffset = 0
}

// adjustScroll updates the scroll offset to keep the selected item visible.
func (p *CommandPalette) adjustScroll() {
	if p.selectedIdx < p.scrollOffset {
		p.scrollOffset = p.selectedIdx
	}
	if p.selectedIdx >= p.scrollOffset+paletteMaxVisible {
		p.scrollOffset = p.selectedIdx - paletteMaxVisible + 1
	}
}

// View renders the command palette.
func (p *CommandPalette) View() string {
	title := styles.ModalTitleStyle.Render("Command Palette")

	endIdx := min(p.scrollOffset+paletteMaxVisible, len(p.filteredList))
	suggestions := make([]string, 0, endIdx-p.scrollOffset)

	for i, entry := range p.filteredList[p.scrollOffset:endIdx] {
		isSelected := p.scrollOffset+i == p.selectedIdx

		nameStyle := styles.TextForegroundStyle
		helpStyle := styles.TextMutedStyle
		cursor := "  "
		if isSelected {
			nameStyle = styles.TextPrimaryStyle.Bold(true)
			cursor = "> "
		}

		usage := nameStyle.Render(entry.Usage)
		help := helpStyle.Render(ansi.Truncate(entry.Help, paletteWidth-lipgloss.Width(usage)-12, "…"))
		suggestions = append(suggestions, cursor+usage+"  "+help)
	}

	if len(p.filteredList) == 0 {
		suggestions = append(suggestions, styles.EmptyStateStyle.Render("  no matching commands"))
	}

	if remaining := len(p.filteredList) - endIdx; remaining > 0 {
		suggestions = append(suggestions, styles.TextMutedStyle.Italic(true).Render("  ... and more"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		p.input.View(),
		"",
		strings.Join(suggestions, "\n"),
		styles.ModalHelpStyle.Render("↑/↓ move  tab fill  enter run  esc cancel"),
	)

	return styles.ModalStyle.Width(paletteWidth).Render(content)
}

// Overlay renders the command palette as a layer over the given background.
func (p *CommandPalette) Overlay(background string, width, _ int) string {
	modal := p.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	centerX := max((width-modalW)/2, 0)
	modalLayer.X(centerX).Y(3).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}

// SelectedCommand returns the selected command entry and parsed input, if
// the user confirmed a selection.
func (p *CommandPalette) SelectedCommand() (CommandEntry, ParsedCommand, bool) {
	if !p.selected || p.selectedIdx >= len(p.filteredList) {
		return CommandEntry{}, ParsedCommand{}, false
	}
	return p.filteredList[p.selectedIdx], ParseCommandInput(p.input.Value()), true
}

// Cancelled returns true if the user cancelled the palette.
func (p *CommandPalette) Cancelled() bool {
	return p.cancelled
}

// KeyMap returns keys that the command palette uses (for help integration).
func (p *CommandPalette) KeyMap() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "fill")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
