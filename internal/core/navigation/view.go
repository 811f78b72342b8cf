// Package navigation implements the view-switching state machine behind the
// sidebar: a transition is requested, shows a loading descriptor for a short
// delay, then commits.
package navigation

// View names a full-panel screen the shell can switch to.
type View string

const (
	ViewDashboard        View = "dashboard"
	ViewClassroom        View = "classroom"
	ViewVirtualClassroom View = "virtual-classroom"
	ViewCourses          View = "courses"
	ViewContentCreator   View = "content-creator"
	ViewAssessments      View = "assessments"
	ViewAchievements     View = "achievements"
	ViewDiscussions      View = "discussions"
	ViewRecommendations  View = "recommendations"
	ViewAnalytics        View = "analytics"
	ViewCalendar         View = "calendar"
	ViewStudents         View = "students"
	ViewSettings         View = "settings"
)

// sidebar lists every known view in display order.
var sidebar = []View{
	ViewDashboard,
	ViewClassroom,
	ViewVirtualClassroom,
	ViewCourses,
	ViewContentCreator,
	ViewAssessments,
	ViewAchievements,
	ViewDiscussions,
	ViewRecommendations,
	ViewAnalytics,
	ViewCalendar,
	ViewStudents,
	ViewSettings,
}

var labels = map[View]string{
	ViewDashboard:        "Dashboard",
	ViewClassroom:        "Classroom",
	ViewVirtualClassroom: "Virtual Classroom",
	ViewCourses:          "Courses",
	ViewContentCreator:   "Content Creator",
	ViewAssessments:      "Assessments",
	ViewAchievements:     "Achievements",
	ViewDiscussions:      "Community Hub",
	ViewRecommendations:  "Recommendations",
	ViewAnalytics:        "Analytics",
	ViewCalendar:         "Calendar",
	ViewStudents:         "Students",
	ViewSettings:         "Settings",
}

// Views returns all known views in sidebar order.
func Views() []View {
	out := make([]View, len(sidebar))
	copy(out, sidebar)
	return out
}

// Known reports whether v is one of the built-in views.
func (v View) Known() bool {
	_, ok := labels[v]
	return ok
}

// Label returns the display name of v. Unknown views return their raw name.
func (v View) Label() string {
	if l, ok := labels[v]; ok {
		return l
	}
	return string(v)
}

// Descriptor is the loading-screen content shown while a view is loading.
// Icon is a symbolic name resolved to a glyph by the renderer.
type Descriptor struct {
	Title       string
	Description string
	Icon        string
}

// FallbackDescriptor is used for views without a dedicated descriptor.
var FallbackDescriptor = Descriptor{
	Title:       "Loading",
	Description: "Preparing your content",
	Icon:        "hourglass",
}

var descriptors = map[View]Descriptor{
	ViewDashboard:        {Title: "Loading Dashboard", Description: "Gathering your learning overview", Icon: "home"},
	ViewClassroom:        {Title: "Loading Classroom", Description: "Opening your course materials", Icon: "book"},
	ViewVirtualClassroom: {Title: "Loading Virtual Classroom", Description: "Setting up video and audio", Icon: "video"},
	ViewCourses:          {Title: "Loading Courses", Description: "Fetching your course catalog", Icon: "library"},
	ViewContentCreator:   {Title: "Loading Content Creator", Description: "Preparing the authoring tools", Icon: "pencil"},
	ViewAssessments:      {Title: "Loading Assessments", Description: "Collecting quizzes and assignments", Icon: "checklist"},
	ViewAchievements:     {Title: "Loading Achievements", Description: "Tallying your points and badges", Icon: "trophy"},
	ViewDiscussions:      {Title: "Loading Community Hub", Description: "Catching up on discussions", Icon: "chat"},
	ViewRecommendations:  {Title: "Loading Recommendations", Description: "Personalizing your learning path", Icon: "sparkles"},
	ViewAnalytics:        {Title: "Loading Analytics", Description: "Crunching your learning data", Icon: "chart"},
	ViewCalendar:         {Title: "Loading Calendar", Description: "Syncing your schedule", Icon: "calendar"},
	ViewStudents:         {Title: "Loading Students", Description: "Loading the class roster", Icon: "people"},
	ViewSettings:         {Title: "Loading Settings", Description: "Loading your preferences", Icon: "gear"},
}

// DescriptorFor returns the loading descriptor for v, or FallbackDescriptor.
func DescriptorFor(v View) Descriptor {
	if d, ok := descriptors[v]; ok {
		return d
	}
	return FallbackDescriptor
}

// heavy views announce themselves with an info notification before loading.
var heavy = map[View]bool{
	ViewVirtualClassroom: true,
	ViewAnalytics:        true,
	ViewContentCreator:   true,
}

// IsHeavy reports whether navigating to v emits a loading notification.
func IsHeavy(v View) bool {
	return heavy[v]
}
