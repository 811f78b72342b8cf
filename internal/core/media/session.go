package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Mode is how the user joins the virtual classroom.
type Mode string

const (
	ModeCameraMic Mode = "camera+mic"
	ModeAudioOnly Mode = "audio-only"
	ModeViewer    Mode = "viewer"
)

// Modes lists the join options in dialog order.
func Modes() []Mode {
	return []Mode{ModeCameraMic, ModeAudioOnly, ModeViewer}
}

// Label is the dialog text for m.
func (m Mode) Label() string {
	switch m {
	case ModeCameraMic:
		return "Join with camera and microphone"
	case ModeAudioOnly:
		return "Join with audio only"
	case ModeViewer:
		return "Join as viewer"
	default:
		return string(m)
	}
}

func (m Mode) constraints() Constraints {
	switch m {
	case ModeCameraMic:
		return Constraints{Video: true, Audio: true}
	case ModeAudioOnly:
		return Constraints{Audio: true}
	default:
		return Constraints{}
	}
}

// Session is the join state of the virtual classroom. It is owned by the UI
// loop and is not safe for concurrent use.
type Session struct {
	device Device
	logger zerolog.Logger
	stream Stream

	Connected       bool
	Mode            Mode
	DialogOpen      bool
	PermissionError string
}

// NewSession creates a disconnected session with the join dialog open.
func NewSession(device Device, logger zerolog.Logger) *Session {
	return &Session{device: device, logger: logger, DialogOpen: true}
}

// Join connects in mode. On a device failure the session stays disconnected,
// the dialog stays open and PermissionError carries the message. Viewer mode
// never touches the device.
func (s *Session) Join(ctx context.Context, mode Mode) error {
	if s.Connected {
		s.Leave()
	}

	c := mode.constraints()
	if c.Video || c.Audio {
		stream, err := s.device.Request(ctx, c)
		if err != nil {
			s.PermissionError = Message(err)
			s.logger.Warn().Err(err).Str("mode", string(mode)).Msg("media request failed")
			return fmt.Errorf("join %s: %w", mode, err)
		}
		s.stream = stream
	}

	s.Mode = mode
	s.Connected = true
	s.DialogOpen = false
	s.PermissionError = ""
	s.logger.Info().Str("mode", string(mode)).Msg("joined virtual classroom")
	return nil
}

// Leave releases any held devices and reopens the join dialog.
func (s *Session) Leave() {
	if s.stream != nil {
		if err := s.stream.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("releasing media devices")
		}
		s.stream = nil
	}
	s.Connected = false
	s.Mode = ""
	s.DialogOpen = true
}

// Tracks returns the devices currently held.
func (s *Session) Tracks() []Track {
	if s.stream == nil {
		return nil
	}
	return s.stream.Tracks()
}

// IsMediaError reports whether err is one of the classified device errors.
func IsMediaError(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrDeviceNotFound) ||
		errors.Is(err, ErrDeviceInUse)
}
