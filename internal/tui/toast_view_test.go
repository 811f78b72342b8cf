package tui

import (
	"strings"
	"testing"

	"github.com/colonyops/campus/internal/core/notify"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController(ToastOptions{}))

	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_severity(t *testing.T) {
	tests := []struct {
		severity notify.Severity
		icon     string
	}{
		{notify.SeveritySuccess, styles.IconNotifySuccess},
		{notify.SeverityError, styles.IconNotifyError},
		{notify.SeverityWarning, styles.IconNotifyWarning},
		{notify.SeverityInfo, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			c := NewToastController(ToastOptions{})
			v := NewToastView(c)

			c.Push(notify.Notification{Severity: tt.severity, Title: "Heads up", Message: "test msg"})

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "Heads up")
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_category_icon_wins(t *testing.T) {
	c := NewToastController(ToastOptions{})
	v := NewToastView(c)

	c.Push(notify.Notification{
		Severity: notify.SeveritySuccess,
		Category: notify.CategoryCourse,
		Title:    "Virtual Classroom Ready!",
	})

	out := v.View()
	assert.Contains(t, out, styles.IconCategoryCourse)
	assert.NotContains(t, out, styles.IconNotifySuccess)
}

func TestToastView_renders_action_label(t *testing.T) {
	c := NewToastController(ToastOptions{})
	v := NewToastView(c)

	c.Push(notify.Notification{
		Severity: notify.SeverityInfo,
		Title:    "Tour available",
		Action:   &notify.Action{Label: "Start tour", Run: func() {}},
	})

	assert.Contains(t, v.View(), "Start tour")
}

func TestToastView_View_stacks_multiple(t *testing.T) {
	c := NewToastController(ToastOptions{})
	v := NewToastView(c)

	c.Push(notify.Notification{Severity: notify.SeverityInfo, Title: "first"})
	c.Push(notify.Notification{Severity: notify.SeverityError, Title: "second"})

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_Overlay_empty_returns_background(t *testing.T) {
	v := NewToastView(NewToastController(ToastOptions{}))

	bg := "background content"
	assert.Equal(t, bg, v.Overlay(bg, 80, 24))
}

func TestToastView_Overlay_positions_lower_right(t *testing.T) {
	c := NewToastController(ToastOptions{})
	v := NewToastView(c)

	c.Push(notify.Notification{Severity: notify.SeverityInfo, Title: "positioned"})

	width := 120
	height := 40

	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	bg := strings.Join(rows, "\n")

	out := v.Overlay(bg, width, height)
	assert.Contains(t, out, "positioned")

	lines := strings.Split(out, "\n")
	toastLine := -1
	for i, line := range lines {
		if strings.Contains(line, "positioned") {
			toastLine = i
			break
		}
	}
	require.NotEqual(t, -1, toastLine, "toast text not found in output lines")
	assert.Greater(t, toastLine, height/2, "toast should be in the lower half")
}
