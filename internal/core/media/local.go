package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// LocalDevice acquires Linux video4linux and ALSA capture nodes.
type LocalDevice struct {
	// Root is the device directory, "/dev" when empty.
	Root string

	open func(path string) (io.Closer, error)
}

// NewLocalDevice returns a device probing root.
func NewLocalDevice(root string) *LocalDevice {
	return &LocalDevice{Root: root}
}

// Request opens the first available node for every requested kind. Either
// all requested tracks are acquired or none are held on return.
func (d *LocalDevice) Request(ctx context.Context, c Constraints) (Stream, error) {
	s := &localStream{}

	kinds := []struct {
		want    bool
		kind    string
		pattern string
	}{
		{c.Video, "video", "video*"},
		{c.Audio, "audio", filepath.Join("snd", "pcmC*D*c")},
	}

	for _, k := range kinds {
		if !k.want {
			continue
		}
		if err := ctx.Err(); err != nil {
			_ = s.Close()
			return nil, err
		}

		track, closer, err := d.acquire(k.kind, k.pattern)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		s.tracks = append(s.tracks, track)
		s.closers = append(s.closers, closer)
	}

	return s, nil
}

func (d *LocalDevice) acquire(kind, pattern string) (Track, io.Closer, error) {
	root := d.Root
	if root == "" {
		root = "/dev"
	}

	matches, err := filepath.Glob(filepath.Join(root, pattern))
	if err != nil {
		return Track{}, nil, fmt.Errorf("probe %s devices: %w", kind, err)
	}
	if len(matches) == 0 {
		return Track{}, nil, fmt.Errorf("%s: %w", kind, ErrDeviceNotFound)
	}

	open := d.open
	if open == nil {
		open = openNode
	}

	// Prefer a free node; report the most specific failure otherwise.
	var firstErr error
	for _, path := range matches {
		closer, err := open(path)
		if err == nil {
			return Track{Kind: kind, Path: path}, closer, nil
		}
		err = classify(kind, path, err)
		if firstErr == nil || errors.Is(err, ErrPermissionDenied) {
			firstErr = err
		}
	}

	return Track{}, nil, firstErr
}

func openNode(path string) (io.Closer, error) {
	return os.OpenFile(path, os.O_RDONLY|syscall.O_NONBLOCK, 0)
}

func classify(kind, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return fmt.Errorf("%s %s: %w", kind, path, ErrPermissionDenied)
	case errors.Is(err, syscall.EBUSY):
		return fmt.Errorf("%s %s: %w", kind, path, ErrDeviceInUse)
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENODEV), errors.Is(err, syscall.ENXIO):
		return fmt.Errorf("%s %s: %w", kind, path, ErrDeviceNotFound)
	default:
		return fmt.Errorf("%s %s: %w", kind, path, err)
	}
}

type localStream struct {
	tracks  []Track
	closers []io.Closer
}

func (s *localStream) Tracks() []Track {
	return append([]Track(nil), s.tracks...)
}

func (s *localStream) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	s.closers = nil
	return errors.Join(errs...)
}
