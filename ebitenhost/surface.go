package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/sitefx"
)

// Surface draws starfield circles into an offscreen ebiten.Image.
type Surface struct {
	img   *ebiten.Image
	scale float64
}

var _ sitefx.Surface = (*Surface)(nil)

// NewSurface creates a surface with a w×h device-pixel backing image.
func NewSurface(w, h int) *Surface {
	return &Surface{img: ebiten.NewImage(max(w, 1), max(h, 1)), scale: 1}
}

// Resize reallocates the backing image when the size changes.
func (s *Surface) Resize(w, h int) error {
	w, h = max(w, 1), max(h, 1)
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return nil
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
	return nil
}

// Clear implements sitefx.Surface.
func (s *Surface) Clear() { s.img.Clear() }

// SetScale implements sitefx.Surface.
func (s *Surface) SetScale(v float64) { s.scale = v }

// FillCircle implements sitefx.Surface.
func (s *Surface) FillCircle(x, y, r float64, c sitefx.Color, alpha float64) {
	vector.DrawFilledCircle(s.img,
		float32(x*s.scale), float32(y*s.scale), float32(r*s.scale),
		toNRGBA(c, alpha), true)
}

// Image returns the backing image.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Scale returns the CSS-to-device pixel scale last set by the starfield.
func (s *Surface) Scale() float64 { return s.scale }

func toNRGBA(c sitefx.Color, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*alpha*255 + 0.5),
	}
}
