package report

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"fdtd2d/internal/render"
	"fdtd2d/pkg/fdtd"
)

// FrameSink writes each snapshot as dir/<prefix>_<step>.png.
type FrameSink struct {
	Dir    string
	Prefix string
	// Fixed colour scale; zero rescales every frame to its own peak.
	Scale float64
	Gain  float64

	written []string
}

// NewFrameSink creates dir if needed.
func NewFrameSink(dir, prefix string, scale, gain float64) (*FrameSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "ez"
	}
	return &FrameSink{Dir: dir, Prefix: prefix, Scale: scale, Gain: gain}, nil
}

func (s *FrameSink) Write(snap fdtd.Snapshot) error {
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%06d.png", s.Prefix, snap.Step))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	img := render.Image(snap, render.Scale(snap, s.Scale, s.Gain))
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.written = append(s.written, path)
	return nil
}

// Written returns the frame paths in write order.
func (s *FrameSink) Written() []string { return s.written }

func (s *FrameSink) Close() error { return nil }
