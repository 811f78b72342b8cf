// Package placeholder renders the screens that have no behavior beyond an
// empty state and zeroed counters.
package placeholder

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/campus/internal/core/navigation"
	"github.com/colonyops/campus/internal/tui/views"
)

// Content is the static copy of a placeholder screen.
type Content struct {
	Icon    string
	Stats   []views.Stat
	Heading string
	Body    string
}

var contents = map[navigation.View]Content{
	navigation.ViewDashboard: {
		Icon: "home",
		Stats: []views.Stat{
			{Label: "Enrolled Courses", Value: "0"},
			{Label: "Completed Lessons", Value: "0"},
			{Label: "Study Hours", Value: "0"},
			{Label: "Certificates", Value: "0"},
		},
		Heading: "No recent activity",
		Body:    "Start a course to see your progress here.",
	},
	navigation.ViewCourses: {
		Icon: "library",
		Stats: []views.Stat{
			{Label: "Courses", Value: "0"},
			{Label: "In Progress", Value: "0"},
			{Label: "Completed", Value: "0"},
		},
		Heading: "No courses yet",
		Body:    "Browse the catalog to enroll in your first course.",
	},
	navigation.ViewContentCreator: {
		Icon: "pencil",
		Stats: []views.Stat{
			{Label: "Drafts", Value: "0"},
			{Label: "Published", Value: "0"},
		},
		Heading: "Nothing drafted",
		Body:    "Create a lesson, quiz or video to get started.",
	},
	navigation.ViewAssessments: {
		Icon: "checklist",
		Stats: []views.Stat{
			{Label: "Pending", Value: "0"},
			{Label: "Submitted", Value: "0"},
			{Label: "Average Score", Value: "0%"},
		},
		Heading: "No assessments",
		Body:    "Quizzes and assignments will appear here.",
	},
	navigation.ViewAchievements: {
		Icon: "trophy",
		Stats: []views.Stat{
			{Label: "Points", Value: "0"},
			{Label: "Level", Value: "0"},
			{Label: "Day Streak", Value: "0"},
		},
		Heading: "No badges earned yet",
		Body:    "Complete lessons to earn points and badges.",
	},
	navigation.ViewDiscussions: {
		Icon: "chat",
		Stats: []views.Stat{
			{Label: "Threads", Value: "0"},
			{Label: "Replies", Value: "0"},
			{Label: "Members", Value: "0"},
		},
		Heading: "No discussions yet",
		Body:    "Start a conversation with your classmates.",
	},
	navigation.ViewAnalytics: {
		Icon: "chart",
		Stats: []views.Stat{
			{Label: "Time Spent", Value: "0h"},
			{Label: "Avg. Score", Value: "0%"},
			{Label: "Completion", Value: "0%"},
		},
		Heading: "No data to analyze",
		Body:    "Analytics appear once you complete some activities.",
	},
	navigation.ViewCalendar: {
		Icon: "calendar",
		Stats: []views.Stat{
			{Label: "Events Today", Value: "0"},
			{Label: "This Week", Value: "0"},
		},
		Heading: "Nothing scheduled",
		Body:    "Upcoming classes and deadlines will show here.",
	},
	navigation.ViewStudents: {
		Icon: "people",
		Stats: []views.Stat{
			{Label: "Students", Value: "0"},
			{Label: "Active", Value: "0"},
			{Label: "At Risk", Value: "0"},
		},
		Heading: "No students enrolled",
		Body:    "Invite students to your course to see them here.",
	},
}

var unknown = Content{
	Icon:    "hourglass",
	Heading: "Nothing here",
	Body:    "This view is not available yet.",
}

// ContentFor returns the copy for v. Views without dedicated copy get a
// generic "not available" screen.
func ContentFor(v navigation.View) Content {
	if c, ok := contents[v]; ok {
		return c
	}
	return unknown
}

// View is a static screen.
type View struct {
	title   string
	content Content
}

// New creates the placeholder screen for v.
func New(v navigation.View) *View {
	return &View{title: v.Label(), content: ContentFor(v)}
}

func (v *View) Update(tea.Msg) tea.Cmd { return nil }

func (v *View) KeyMap() []key.Binding { return nil }

func (v *View) View(width, _ int) string {
	return views.Join(
		views.Header(v.content.Icon, v.title),
		views.Stats(v.content.Stats),
		views.Empty(v.content.Icon, v.content.Heading, v.content.Body, width),
	)
}
