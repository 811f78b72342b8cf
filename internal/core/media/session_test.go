package media

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDevice struct {
	err      error
	requests []Constraints
}

func (d *stubDevice) Request(_ context.Context, c Constraints) (Stream, error) {
	d.requests = append(d.requests, c)
	if d.err != nil {
		return nil, d.err
	}
	var tracks []Track
	if c.Video {
		tracks = append(tracks, Track{Kind: "video", Path: "/dev/video0"})
	}
	if c.Audio {
		tracks = append(tracks, Track{Kind: "audio", Path: "/dev/snd/pcmC0D0c"})
	}
	return &stubStream{tracks: tracks}, nil
}

type stubStream struct {
	tracks []Track
	closed bool
}

func (s *stubStream) Tracks() []Track { return s.tracks }
func (s *stubStream) Close() error    { s.closed = true; return nil }

func TestSession_JoinDenied(t *testing.T) {
	device := &stubDevice{err: fmt.Errorf("video /dev/video0: %w", ErrPermissionDenied)}
	s := NewSession(device, zerolog.Nop())

	err := s.Join(context.Background(), ModeCameraMic)
	require.ErrorIs(t, err, ErrPermissionDenied)

	assert.False(t, s.Connected)
	assert.True(t, s.DialogOpen)
	assert.Equal(t, Message(ErrPermissionDenied), s.PermissionError)
	assert.Equal(t, []Constraints{{Video: true, Audio: true}}, device.requests)
}

func TestSession_ViewerFallbackAfterFailure(t *testing.T) {
	device := &stubDevice{err: ErrDeviceInUse}
	s := NewSession(device, zerolog.Nop())

	require.Error(t, s.Join(context.Background(), ModeAudioOnly))

	require.NoError(t, s.Join(context.Background(), ModeViewer))
	assert.True(t, s.Connected)
	assert.False(t, s.DialogOpen)
	assert.Empty(t, s.PermissionError)
	assert.Equal(t, ModeViewer, s.Mode)
	assert.Len(t, device.requests, 1, "viewer mode never touches the device")
}

func TestSession_JoinAndLeave(t *testing.T) {
	device := &stubDevice{}
	s := NewSession(device, zerolog.Nop())

	require.NoError(t, s.Join(context.Background(), ModeAudioOnly))
	assert.True(t, s.Connected)
	require.Len(t, s.Tracks(), 1)

	stream := s.stream.(*stubStream)
	s.Leave()

	assert.True(t, stream.closed)
	assert.False(t, s.Connected)
	assert.True(t, s.DialogOpen)
	assert.Nil(t, s.Tracks())
}

func TestModes(t *testing.T) {
	modes := Modes()
	require.Len(t, modes, 3)
	for _, m := range modes {
		assert.NotEqual(t, string(m), m.Label())
	}
	assert.Equal(t, Constraints{}, ModeViewer.constraints())
}

func TestIsMediaError(t *testing.T) {
	assert.True(t, IsMediaError(fmt.Errorf("x: %w", ErrDeviceNotFound)))
	assert.False(t, IsMediaError(context.Canceled))
}
