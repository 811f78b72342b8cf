package tui

import (
	"testing"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ParsedCommand
	}{
		{name: "empty", input: "   ", expected: ParsedCommand{}},
		{name: "with colon", input: ":tour", expected: ParsedCommand{Name: "tour", Args: []string{}}},
		{name: "without colon", input: "theme", expected: ParsedCommand{Name: "theme", Args: []string{}}},
		{
			name:     "multi word argument",
			input:    "  classroom   Intro to   Go ",
			expected: ParsedCommand{Name: "classroom", Args: []string{"Intro", "to", "Go"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCommandInput(tt.input))
		})
	}

	assert.Equal(t, "Intro to Go", ParseCommandInput("classroom Intro to Go").Arg())
}

func TestResolveView(t *testing.T) {
	tests := []struct {
		in   string
		want navigation.View
	}{
		{"analytics", navigation.ViewAnalytics},
		{"Virtual Classroom", navigation.ViewVirtualClassroom},
		{"community hub", navigation.ViewDiscussions},
		{"DISCUSSIONS", navigation.ViewDiscussions},
		{"mystery", navigation.View("mystery")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveView(tt.in))
		})
	}
}

func TestNewCommandPalette_lists_all_commands(t *testing.T) {
	p := NewCommandPalette()

	require.Len(t, p.filteredList, len(paletteCommands))
	assert.Equal(t, cmdGoto, p.filteredList[0].Name)
}

func TestCommandPalette_filter_and_select(t *testing.T) {
	p := NewCommandPalette()

	for _, msg := range tuitest.Type("goto analytics") {
		p, _ = p.Update(msg)
	}
	require.Len(t, p.filteredList, 1)

	_, _, ok := p.SelectedCommand()
	assert.False(t, ok)

	p, _ = p.Update(tuitest.KeyEnter())
	entry, parsed, ok := p.SelectedCommand()
	require.True(t, ok)
	assert.Equal(t, cmdGoto, entry.Name)
	assert.Equal(t, "analytics", parsed.Arg())
}

func TestCommandPalette_substring_fallback(t *testing.T) {
	p := NewCommandPalette()

	for _, msg := range tuitest.Type("notif") {
		p, _ = p.Update(msg)
	}

	require.Len(t, p.filteredList, 1)
	assert.Equal(t, cmdNotifications, p.filteredList[0].Name)

	p.input.SetValue("clear")
	p.updateFilter()
	require.Len(t, p.filteredList, 1)
	assert.Equal(t, cmdClearNotifications, p.filteredList[0].Name)
}

func TestCommandPalette_move_and_tab_fill(t *testing.T) {
	p := NewCommandPalette()

	p, _ = p.Update(tuitest.KeyDown())
	p, _ = p.Update(tuitest.KeyTab())

	assert.Equal(t, "classroom ", p.input.Value())

	p, _ = p.Update(tuitest.KeyUp())
	assert.Equal(t, 0, p.selectedIdx)
}

func TestCommandPalette_Cancel(t *testing.T) {
	p := NewCommandPalette()
	assert.False(t, p.Cancelled())

	p, _ = p.Update(tuitest.KeyEsc())
	assert.True(t, p.Cancelled())
}

func TestCommandPalette_View(t *testing.T) {
	p := NewCommandPalette()
	view := tuitest.StripANSI(p.View())

	assert.Contains(t, view, "Command Palette")
	assert.Contains(t, view, "goto <view>")
	assert.Contains(t, view, "clear-notifications")
}
