package components

import (
	"strings"
	"testing"

	"github.com/colonyops/campus/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("Keyboard Shortcuts", []HelpDialogSection{
		{Title: "Global", Entries: []HelpEntry{{Key: "ctrl+k", Desc: "command palette"}}},
		{Title: "Sidebar", Entries: []HelpEntry{{Key: "j/k", Desc: "move"}}},
	})

	out := tuitest.StripANSI(h.View())

	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "Global")
	assert.Contains(t, out, "ctrl+k")
	assert.Contains(t, out, "command palette")
	assert.Less(t, strings.Index(out, "Global"), strings.Index(out, "Sidebar"))
}

func TestHelpDialog_SkipsEmptySections(t *testing.T) {
	h := NewHelpDialog("Help", []HelpDialogSection{
		{Title: "Global", Entries: []HelpEntry{{Key: "q", Desc: "quit"}}},
		{Title: "This View"},
	})

	out := tuitest.StripANSI(h.View())
	assert.NotContains(t, out, "This View")
}

func TestHelpDialog_TwoColumns(t *testing.T) {
	entry := []HelpEntry{{Key: "x", Desc: "do"}}
	h := NewHelpDialog("Help", []HelpDialogSection{
		{Title: "Alpha", Entries: entry},
		{Title: "Bravo", Entries: entry},
		{Title: "Charlie", Entries: entry},
	})

	out := tuitest.StripANSI(h.View())
	var alphaLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Alpha") {
			alphaLine = line
		}
	}
	assert.Contains(t, alphaLine, "Charlie", "third section starts the right column")
}

func TestRenderHelpSection_AlignsToWidestKey(t *testing.T) {
	out := tuitest.StripANSI(renderHelpSection(HelpDialogSection{
		Entries: []HelpEntry{{Key: "q", Desc: "quit"}, {Key: "ctrl+alt+a", Desc: "admin"}},
	}))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "quit"), strings.Index(lines[1], "admin"))
}

func TestConfirmModal(t *testing.T) {
	tests := []struct {
		key       string
		confirmed bool
		cancelled bool
	}{
		{"y", true, false},
		{"enter", true, false},
		{"n", false, true},
		{"esc", false, true},
		{"x", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := NewConfirmModal("Admin Access", "Enable admin tools?")

			msg := tuitest.KeyPress([]rune(tt.key)[0])
			switch tt.key {
			case "enter":
				msg = tuitest.KeyEnter()
			case "esc":
				msg = tuitest.KeyEsc()
			}

			m, _ = m.Update(msg)
			assert.Equal(t, tt.confirmed, m.Confirmed())
			assert.Equal(t, tt.cancelled, m.Cancelled())
		})
	}
}

func TestConfirmModal_TabMovesFocus(t *testing.T) {
	m := NewConfirmModal("Admin Access", "Enable admin tools?")

	m, _ = m.Update(tuitest.KeyTab())
	m, _ = m.Update(tuitest.KeyEnter())

	assert.True(t, m.Cancelled())
	assert.False(t, m.Confirmed())
}

func TestConfirmModal_IgnoresInputAfterDecision(t *testing.T) {
	m := NewConfirmModal("Admin Access", "Enable admin tools?")

	m, _ = m.Update(tuitest.KeyPress('y'))
	m, _ = m.Update(tuitest.KeyPress('n'))

	assert.True(t, m.Confirmed())
	assert.False(t, m.Cancelled())
}

func TestConfirmModal_View(t *testing.T) {
	out := tuitest.StripANSI(NewConfirmModal("Admin Access", "Enable admin tools?").WithLabels("Grant", "Keep off").View())

	assert.Contains(t, out, "Admin Access")
	assert.Contains(t, out, "Enable admin tools?")
	assert.Contains(t, out, "Grant")
	assert.Contains(t, out, "Keep off")
}
