package tui

import "strings"

func indexOf(s, substr string) int {
	return strings.Index(s, substr)
}

func blankScreen(width, height int) string {
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
