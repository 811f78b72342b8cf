package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/pkg/tuitest"
)

func TestNotify(t *testing.T) {
	in := notify.Input{Severity: notify.SeverityError, Title: "oops"}
	msg, ok := Notify(in)().(NotifyMsg)
	require.True(t, ok)
	assert.Equal(t, in, msg.Input)
}

func TestStats(t *testing.T) {
	assert.Empty(t, Stats(nil))

	out := tuitest.StripANSI(Stats([]Stat{{Label: "Points", Value: "0"}, {Label: "Level", Value: "0"}}))
	assert.Contains(t, out, "Points")
	assert.Contains(t, out, "Level")
}

func TestEmpty(t *testing.T) {
	out := tuitest.StripANSI(Empty("book", "Nothing", "Come back later.", 60))
	assert.Contains(t, out, "Nothing")
	assert.Contains(t, out, "Come back later.")
}

func TestJoin_skips_empty_sections(t *testing.T) {
	assert.Equal(t, "a\n\nb", Join("a", "", "b"))
}
