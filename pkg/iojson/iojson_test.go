package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, Write(&out, map[string]bool{"completed": true}))

	assert.Equal(t, "{\n  \"completed\": true\n}\n", out.String())
}

func TestWrite_MarshalError(t *testing.T) {
	var out bytes.Buffer

	err := Write(&out, map[string]any{"fn": func() {}})

	assert.ErrorContains(t, err, "encode json output")
	assert.Empty(t, out.String())
}
