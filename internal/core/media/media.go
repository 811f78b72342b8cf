// Package media probes local capture devices for the virtual classroom. No
// media is ever read or transmitted; a stream only proves access was granted.
package media

import (
	"context"
	"errors"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeviceNotFound   = errors.New("device not found")
	ErrDeviceInUse      = errors.New("device in use")
)

// Constraints selects which devices a Request needs.
type Constraints struct {
	Video bool
	Audio bool
}

// Track is one acquired device.
type Track struct {
	Kind string // "video" or "audio"
	Path string
}

// Stream holds the acquired tracks until closed.
type Stream interface {
	Tracks() []Track
	Close() error
}

// Device acquires capture devices.
type Device interface {
	Request(ctx context.Context, c Constraints) (Stream, error)
}

// Message maps a Request error to the text shown in the join dialog.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPermissionDenied):
		return "Camera/microphone access was denied. Allow access and try again, or join as a viewer."
	case errors.Is(err, ErrDeviceNotFound):
		return "No camera or microphone was found. Connect a device or join as a viewer."
	case errors.Is(err, ErrDeviceInUse):
		return "Your camera or microphone is in use by another application. Close it and try again, or join as a viewer."
	default:
		return "Could not access your camera or microphone. You can still join as a viewer."
	}
}
