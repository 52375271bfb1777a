// Package ebitenhost runs a sitefx page live in an Ebitengine window. Real
// cursor, wheel, keyboard and window focus are translated into page events,
// the frame loop is ticked from the game loop, and page elements are drawn
// as flat boxes so the effects can be watched.
package ebitenhost

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/sitefx"
)

// wheelStep is the scroll distance in CSS pixels per wheel notch.
const wheelStep = 60

// Config controls the live window.
type Config struct {
	Title  string
	Width  int
	Height int
	// ShowStats overlays scroll, timeline and frame-loop counters.
	ShowStats bool
}

// Game is an ebiten.Game driving one page.
type Game struct {
	cfg      Config
	page     *sitefx.Page
	loop     *sitefx.FrameLoop
	ui       *sitefx.UIState
	surfaces map[*sitefx.PageElement]*Surface

	start   time.Time
	lastX   int
	lastY   int
	focused bool
	w, h    int
}

// SurfaceFactory returns a factory that records each canvas surface on g so
// Draw can composite it. Pass it in sitefx.PageConfig.Surfaces before
// loading the page.
func (g *Game) SurfaceFactory() sitefx.SurfaceFactory {
	return func(el *sitefx.PageElement) sitefx.Surface {
		s := NewSurface(1, 1)
		g.surfaces[el] = s
		return s
	}
}

// NewGame creates an unattached game. Call Attach once the page is loaded.
func NewGame(cfg Config) *Game {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	return &Game{
		cfg:      cfg,
		surfaces: make(map[*sitefx.PageElement]*Surface),
		lastX:    -1,
		lastY:    -1,
		focused:  true,
		w:        cfg.Width,
		h:        cfg.Height,
	}
}

// Attach binds the page and its frame loop and attaches sitefx to it.
func (g *Game) Attach(page *sitefx.Page, loop *sitefx.FrameLoop, opts ...sitefx.Option) *sitefx.UIState {
	g.page = page
	g.loop = loop
	g.start = time.Now()
	g.ui = sitefx.Attach(page, opts...)
	return g.ui
}

// DevicePixelRatio returns the current monitor's device scale factor, or 1
// when no monitor is known yet.
func DevicePixelRatio() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.page == nil {
		return nil
	}

	if f := ebiten.IsFocused(); f != g.focused {
		g.focused = f
		g.page.InjectVisibility(!f)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.page.InjectScrollBy(-dy * wheelStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		_, vh := g.page.Viewport()
		g.page.InjectScrollBy(vh * 0.9)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		_, vh := g.page.Viewport()
		g.page.InjectScrollBy(-vh * 0.9)
	}

	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < g.w && y < g.h
	switch {
	case !inside && g.lastX >= 0:
		g.page.InjectPointerOut()
		g.lastX, g.lastY = -1, -1
	case inside && (x != g.lastX || y != g.lastY):
		g.page.InjectPointerMove(float64(x), float64(y))
		g.lastX, g.lastY = x, y
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.page.InjectFocusNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.page.InjectBlur()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.page.InjectKey("Enter")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.page.InjectKey(" ")
	}

	if g.focused {
		g.loop.Tick(time.Since(g.start))
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xf5, G: 0xf7, B: 0xfb, A: 0xff})
	if g.page == nil {
		return
	}
	vw, vh := g.page.Viewport()
	view := sitefx.Rect{Width: vw, Height: vh}
	for _, el := range g.page.Elements() {
		b := el.Bounds()
		if b.Empty() || !b.Intersects(view) {
			continue
		}
		if s, ok := g.surfaces[el]; ok {
			g.drawCanvas(screen, s, b)
			continue
		}
		g.drawBox(screen, el, b)
	}
	if g.cfg.ShowStats {
		g.drawStats(screen)
	}
}

func (g *Game) drawCanvas(screen *ebiten.Image, s *Surface, b sitefx.Rect) {
	op := &ebiten.DrawImageOptions{}
	if sc := s.Scale(); sc > 0 {
		op.GeoM.Scale(1/sc, 1/sc)
	}
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(s.Image(), op)
}

func (g *Game) drawBox(screen *ebiten.Image, el *sitefx.PageElement, b sitefx.Rect) {
	alpha := 1.0
	if el.HasClass("reveal") && !el.HasClass(sitefx.ClassRevealVisible) {
		alpha = 0.2
	}
	if dx, dy, ok := parseTranslate(el.Style(sitefx.StyleTransform)); ok {
		b.X += dx
		b.Y += dy
	}

	fill := boxColor(el)
	fill.A = uint8(float64(fill.A) * alpha)
	w := b.Width
	if pct, ok := parsePercent(el.Style(sitefx.StyleWidth)); ok {
		w = b.Width * pct / 100
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(w), float32(b.Height), fill, false)
	if el.Style(sitefx.StyleTransform) != "" && strings.Contains(el.Style(sitefx.StyleTransform), "rotate") {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2,
			color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, false)
	}
	if el.HasClass(sitefx.ClassActive) {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 2,
			color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}, false)
	}
	if el.HasClass("counter") {
		ebitenutil.DebugPrintAt(screen, el.Text(), int(b.X)+4, int(b.Y)+4)
	}
}

func boxColor(el *sitefx.PageElement) color.NRGBA {
	switch {
	case el.HasClass("blob"):
		return color.NRGBA{R: 0xa5, G: 0xb4, B: 0xfc, A: 0x90}
	case el.HasClass("bar"), el.HasClass("progress"):
		return color.NRGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xff}
	case el.HasClass("milestone"):
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case el.HasClass("counter"):
		return color.NRGBA{R: 0xe0, G: 0xe7, B: 0xff, A: 0xff}
	default:
		return color.NRGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0x10}
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	st := g.loop.Stats()
	line := fmt.Sprintf("FPS %.0f  ticks %d  ran %d  pending %d",
		ebiten.ActualFPS(), st.Ticks, st.Ran, g.loop.Pending())
	if sp := g.ui.ScrollProgress(); sp != nil {
		line += fmt.Sprintf("  scroll %.1f%%", sp.Percent())
	}
	if tl := g.ui.Timeline(); tl != nil {
		line += fmt.Sprintf("  timeline %.1f%% (%s)", tl.Progress(), tl.State())
	}
	ebitenutil.DebugPrintAt(screen, line, 8, g.h-20)
}

// Layout implements ebiten.Game. Window resizes become viewport changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.page != nil && (outsideWidth != g.w || outsideHeight != g.h) {
		g.page.InjectViewport(float64(outsideWidth), float64(outsideHeight))
	}
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

// parseTranslate reads "translate(Xpx, Ypx)".
func parseTranslate(v string) (dx, dy float64, ok bool) {
	rest, found := strings.CutPrefix(v, "translate(")
	if !found {
		return 0, 0, false
	}
	rest = strings.TrimSuffix(rest, ")")
	xs, ys, found := strings.Cut(rest, ",")
	if !found {
		return 0, 0, false
	}
	x, err1 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(xs), "px"), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(ys), "px"), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, y, true
}

// parsePercent reads "NN%".
func parsePercent(v string) (float64, bool) {
	s, found := strings.CutSuffix(v, "%")
	if !found {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
