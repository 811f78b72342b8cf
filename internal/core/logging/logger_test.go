package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Hook(ContextHook{})
	return &buf
}

func TestComponent(t *testing.T) {
	buf := captureGlobal(t)

	logger := Component("nav")
	logger.Info().Msg("navigation committed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "nav", entry["component"])
	assert.Equal(t, "navigation committed", entry["message"])
}

func TestComponent_CarriesContextFields(t *testing.T) {
	buf := captureGlobal(t)

	ctx := WithCourseID(WithView(context.Background(), "classroom"), "intro-to-go")
	logger := Component("tui")
	logger.Info().Ctx(ctx).Msg("view mounted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tui", entry["component"])
	assert.Equal(t, "classroom", entry["view"])
	assert.Equal(t, "intro-to-go", entry["course_id"])
}
