package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestKeyStrings(t *testing.T) {
	tests := []struct {
		msg  tea.Msg
		want string
	}{
		{KeyPress('q'), "q"},
		{KeyCtrl('k'), "ctrl+k"},
		{KeyCtrl('1'), "ctrl+1"},
		{KeyCtrlAlt('a'), "ctrl+alt+a"},
		{KeyEnter(), "enter"},
		{KeyEsc(), "esc"},
		{KeyLeft(), "left"},
		{KeyRight(), "right"},
		{KeyF1(), "f1"},
		{KeyTab(), "tab"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			k, ok := tt.msg.(tea.KeyPressMsg)
			require.True(t, ok)
			assert.Equal(t, tt.want, k.String())
		})
	}
}

func TestType(t *testing.T) {
	msgs := Type("go")
	require.Len(t, msgs, 2)
	assert.Equal(t, "g", msgs[0].(tea.KeyPressMsg).String())
	assert.Equal(t, "o", msgs[1].(tea.KeyPressMsg).String())
}
