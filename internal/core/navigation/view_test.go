package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViews_AllKnownWithDescriptors(t *testing.T) {
	views := Views()
	assert.Len(t, views, 13)

	for _, v := range views {
		assert.True(t, v.Known(), v)
		assert.NotEqual(t, FallbackDescriptor, DescriptorFor(v), v)
		assert.NotEmpty(t, v.Label(), v)
	}
}

func TestDescriptorFor_Fallback(t *testing.T) {
	d := DescriptorFor(View("nope"))
	assert.Equal(t, "Loading", d.Title)
	assert.Equal(t, "Preparing your content", d.Description)
	assert.False(t, View("nope").Known())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Community Hub", ViewDiscussions.Label())
}

func TestIsHeavy(t *testing.T) {
	assert.True(t, IsHeavy(ViewVirtualClassroom))
	assert.True(t, IsHeavy(ViewAnalytics))
	assert.True(t, IsHeavy(ViewContentCreator))
	assert.False(t, IsHeavy(ViewDashboard))
}

func TestAccepts(t *testing.T) {
	course := CoursePayload{ID: "c1"}
	assert.True(t, Accepts(nil, ViewCalendar))
	assert.True(t, Accepts(course, ViewClassroom))
	assert.True(t, Accepts(course, ViewVirtualClassroom))
	assert.False(t, Accepts(course, ViewDashboard))
}
