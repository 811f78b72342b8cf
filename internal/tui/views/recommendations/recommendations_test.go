package recommendations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/campus/pkg/tuitest"
)

func TestNew_default_delay(t *testing.T) {
	assert.Equal(t, DefaultGenerateDelay, New(0).delay)
	assert.Equal(t, time.Second, New(time.Second).delay)
}

func TestView_generate_then_complete(t *testing.T) {
	v := New(time.Millisecond)

	cmd := v.Update(tuitest.KeyPress('g'))
	require.NotNil(t, cmd)
	assert.True(t, v.Generating())
	assert.Empty(t, v.KeyMap())
	assert.Contains(t, tuitest.StripANSI(v.View(80, 20)), "Analyzing your learning profile")

	assert.Nil(t, v.Update(tuitest.KeyPress('g')), "generate is ignored while in flight")

	v.Update(GeneratedMsg{Gen: v.gen})
	assert.False(t, v.Generating())
	assert.True(t, v.Generated())
	assert.Contains(t, tuitest.StripANSI(v.View(80, 20)), "No recommendations yet")
}

func TestView_stale_completion_is_ignored(t *testing.T) {
	v := New(time.Millisecond)
	v.Update(tuitest.KeyPress('g'))
	first := v.gen

	v.Teardown()
	v.Update(GeneratedMsg{Gen: first})
	assert.False(t, v.Generated(), "completion after teardown is dropped")

	v.Update(tuitest.KeyPress('g'))
	require.NotEqual(t, first, v.gen)

	v.Update(GeneratedMsg{Gen: first})
	assert.True(t, v.Generating(), "older generation does not complete the new one")
}

func TestView_generations_unique_across_instances(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)

	a.Update(tuitest.KeyPress('g'))
	b.Update(tuitest.KeyPress('g'))

	b.Update(GeneratedMsg{Gen: a.gen})
	assert.True(t, b.Generating())
}

func TestView_initial_prompt(t *testing.T) {
	out := tuitest.StripANSI(New(0).View(80, 20))
	assert.Contains(t, out, "Recommendations")
	assert.Contains(t, out, "Press g to generate")
}
