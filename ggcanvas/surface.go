// Package ggcanvas provides a sitefx drawing surface backed by the gg
// software rasterizer, for headless rendering and PNG snapshots.
package ggcanvas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/phanxgames/sitefx"
)

// Surface draws into an in-memory gg context.
type Surface struct {
	dc    *gg.Context
	scale float64
	fills int
}

var _ sitefx.Surface = (*Surface)(nil)

// New creates a surface with a w×h device-pixel backing store. Non-positive
// sizes are raised to 1.
func New(w, h int) *Surface {
	return &Surface{dc: gg.NewContext(max(w, 1), max(h, 1)), scale: 1}
}

// Factory returns a sitefx.SurfaceFactory that gives every canvas a new
// 1×1 surface. The starfield resizes it on attach.
func Factory() sitefx.SurfaceFactory {
	return func(*sitefx.PageElement) sitefx.Surface {
		return New(1, 1)
	}
}

// Resize reallocates the backing store. Pixels are discarded; the scale
// transform is kept.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("ggcanvas: resize to %dx%d: size must be positive", w, h)
	}
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("ggcanvas: %w", err)
	}
	s.applyScale()
	return nil
}

// Clear implements sitefx.Surface.
func (s *Surface) Clear() {
	s.dc.Clear()
}

// SetScale implements sitefx.Surface.
func (s *Surface) SetScale(v float64) {
	s.scale = v
	s.applyScale()
}

func (s *Surface) applyScale() {
	s.dc.Identity()
	s.dc.Scale(s.scale, s.scale)
}

// FillCircle implements sitefx.Surface.
func (s *Surface) FillCircle(x, y, r float64, c sitefx.Color, alpha float64) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A*alpha)
	s.dc.DrawCircle(x, y, r)
	if err := s.dc.Fill(); err != nil {
		sitefx.Logger().Warn("ggcanvas: fill failed", "err", err)
		return
	}
	s.fills++
}

// Fills returns how many circles have been filled since creation.
func (s *Surface) Fills() int { return s.fills }

// Size returns the backing-store size in device pixels.
func (s *Surface) Size() (w, h int) { return s.dc.Width(), s.dc.Height() }

// Image returns the current pixels.
func (s *Surface) Image() image.Image {
	s.flush()
	return s.dc.Image()
}

func (s *Surface) flush() {
	if err := s.dc.FlushGPU(); err != nil {
		sitefx.Logger().Warn("ggcanvas: flush failed", "err", err)
	}
}

// SavePNG writes the current pixels to path.
func (s *Surface) SavePNG(path string) error {
	s.flush()
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggcanvas: save png: %w", err)
	}
	return nil
}

// EncodePNG writes the current pixels as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	s.flush()
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("ggcanvas: encode png: %w", err)
	}
	return nil
}
