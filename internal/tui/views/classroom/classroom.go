// Package classroom renders the course classroom and the virtual classroom
// join flow.
package classroom

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/core/styles"
	"github.com/colonyops/campus/internal/tui/views"
)

// View shows the active course, if one was passed when navigating here.
type View struct {
	course *navigation.CoursePayload
}

// New creates the classroom screen for course, which may be nil.
func New(course *navigation.CoursePayload) *View {
	return &View{course: course}
}

func (v *View) Update(tea.Msg) tea.Cmd { return nil }

func (v *View) KeyMap() []key.Binding { return nil }

func (v *View) View(width, _ int) string {
	header := views.Header("book", navigation.ViewClassroom.Label())

	if v.course == nil {
		return views.Join(
			header,
			views.Empty("book", "No course selected",
				"Open a course from the command palette with: classroom <course title>", width),
		)
	}

	return views.Join(
		header,
		courseCard(v.course),
		views.Stats([]views.Stat{
			{Label: "Lessons", Value: "0"},
			{Label: "Progress", Value: "0%"},
			{Label: "Classmates", Value: "0"},
		}),
		views.Empty("book", "No lessons yet", "Lessons for this course will appear here.", width),
	)
}

func courseCard(c *navigation.CoursePayload) string {
	body := styles.TextForegroundBoldStyle.Render(c.Title)
	if c.ID != "" {
		body += "\n" + styles.TextMutedStyle.Render("course "+c.ID)
	}
	return styles.CardStyle.Render(body)
}
