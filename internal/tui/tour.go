package tui

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/pkg/tmpl"
)

//go:embed tour/*.md
var tourFS embed.FS

const (
	tourWidth     = 72
	tourWrapWidth = tourWidth - 8
)

// TourResult is the outcome of a key press inside the tour overlay.
type TourResult int

const (
	TourContinue TourResult = iota
	TourClosed
	TourCompleted
	TourSnoozed
)

type tourShortcut struct {
	Key   string
	Label string
}

// TourData feeds the templated tour pages.
type TourData struct {
	Version   string
	Shortcuts []tourShortcut
	Commands  []CommandEntry
}

// Tour is the paged onboarding overlay.
type Tour struct {
	pages []string
	index int
}

// loadTourPages returns the raw page templates in file name order.
func loadTourPages() ([]string, error) {
	entries, err := fs.Glob(tourFS, "tour/*.md")
	if err != nil {
		return nil, fmt.Errorf("list tour pages: %w", err)
	}
	slices.Sort(entries)

	pages := make([]string, 0, len(entries))
	for _, name := range entries {
		data, err := tourFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read tour page %s: %w", name, err)
		}
		pages = append(pages, string(data))
	}
	return pages, nil
}

// NewTour renders every page template with data and then through glamour
// using the active theme.
func NewTour(data TourData) (*Tour, error) {
	raw, err := loadTourPages()
	if err != nil {
		return nil, err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(tourWrapWidth),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}

	pages := make([]string, 0, len(raw))
	for i, page := range raw {
		md, err := tmpl.Render(page, data)
		if err != nil {
			return nil, fmt.Errorf("tour page %d: %w", i+1, err)
		}
		out, err := renderer.Render(md)
		if err != nil {
			return nil, fmt.Errorf("render tour page %d: %w", i+1, err)
		}
		pages = append(pages, strings.Trim(out, "\n"))
	}

	return &Tour{pages: pages}, nil
}

// Page returns the zero-based index of the current page.
func (t *Tour) Page() int {
	return t.index
}

// PageCount returns the number of pages.
func (t *Tour) PageCount() int {
	return len(t.pages)
}

func (t *Tour) lastPage() bool {
	return t.index >= len(t.pages)-1
}

// HandleKey moves between pages. Enter on the last page completes the tour,
// esc closes it without completing and r asks to be reminded later.
func (t *Tour) HandleKey(keyStr string) TourResult {
	switch keyStr {
	case "esc", "q":
		return TourClosed
	case "r":
		return TourSnoozed
	case "right", "l", "n":
		if !t.lastPage() {
			t.index++
		}
	case "left", "h", "p":
		if t.index > 0 {
			t.index--
		}
	case "enter":
		if t.lastPage() {
			return TourCompleted
		}
		t.index++
	}
	return TourContinue
}

// View renders the current page with a progress footer.
func (t *Tour) View() string {
	if len(t.pages) == 0 {
		return styles.ModalStyle.Render(styles.EmptyStateStyle.Render("No tour pages"))
	}

	dots := make([]string, len(t.pages))
	for i := range t.pages {
		if i == t.index {
			dots[i] = styles.TextPrimaryStyle.Render("●")
		} else {
			dots[i] = styles.TextMutedStyle.Render("○")
		}
	}

	help := "←/→ page  r remind me later  esc close"
	if t.lastPage() {
		help = "enter finish  ← back  r remind me later  esc close"
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		t.pages[t.index],
		"",
		strings.Join(dots, " ")+styles.TextMutedStyle.Render(fmt.Sprintf("  %d/%d", t.index+1, len(t.pages))),
		styles.ModalHelpStyle.Render(help),
	)

	return styles.ModalStyle.Width(tourWidth).Render(content)
}

// Overlay renders the tour centered over background.
func (t *Tour) Overlay(background string, width, height int) string {
	modal := t.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	modalLayer.X(max((width-modalW)/2, 0)).Y(max((height-modalH)/2, 0)).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
