// Package iojson writes command output as indented JSON.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Write encodes obj as two-space indented JSON followed by a newline.
func Write(w io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json output: %w", err)
	}

	bits = append(bits, '\n')
	if _, err := w.Write(bits); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}
