// Package raster implements pixgui.Renderer on in-memory RGBA images.
//
// It needs no GPU or window, which makes it suitable for tests, screenshots
// and headless tools. Offscreen targets are separate images composited with
// golang.org/x/image/draw.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/pixgui"
	"github.com/go-theft-auto/pixgui/backend/fontface"
)

var (
	// ErrUnknownTarget is returned for operations on targets that were never
	// created or have been deleted.
	ErrUnknownTarget = errors.New("raster: unknown target")
	// ErrInvalidTargetSize is returned when a target size is not positive.
	ErrInvalidTargetSize = errors.New("raster: invalid target size")
)

// surface is one drawable image and its clip rectangle.
type surface struct {
	img  *image.RGBA
	clip image.Rectangle
}

func newSurface(w, h int) *surface {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &surface{img: img, clip: img.Bounds()}
}

// dst returns the image restricted to the clip rectangle.
func (s *surface) dst() *image.RGBA {
	return s.img.SubImage(s.clip).(*image.RGBA)
}

// Renderer draws into an RGBA screen image and offscreen RGBA targets.
type Renderer struct {
	screen  *surface
	targets map[pixgui.TargetID]*surface
	current *surface
	nextID  pixgui.TargetID
	face    font.Face
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFace sets the font face used for text. The default is the 7x13
// bitmap face.
func WithFace(face font.Face) Option {
	return func(r *Renderer) { r.face = face }
}

// New creates a renderer with a width x height screen.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		screen:  newSurface(max(width, 0), max(height, 0)),
		targets: make(map[pixgui.TargetID]*surface),
		nextID:  1,
		face:    fontface.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.current = r.screen
	return r
}

// Screen returns the screen image.
func (r *Renderer) Screen() *image.RGBA {
	return r.screen.img
}

// Target returns the image of an offscreen target.
func (r *Renderer) Target(t pixgui.TargetID) (*image.RGBA, bool) {
	s, ok := r.targets[t]
	if !ok {
		return nil, false
	}
	return s.img, true
}

// TargetCount returns the number of live offscreen targets.
func (r *Renderer) TargetCount() int {
	return len(r.targets)
}

// Resize replaces the screen image. Drawing returns to the screen.
func (r *Renderer) Resize(width, height int) {
	r.screen = newSurface(max(width, 0), max(height, 0))
	r.current = r.screen
}

// CreateTarget allocates a transparent offscreen target.
func (r *Renderer) CreateTarget(width, height int) (pixgui.TargetID, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("create %dx%d: %w", width, height, ErrInvalidTargetSize)
	}
	id := r.nextID
	r.nextID++
	r.targets[id] = newSurface(width, height)
	return id, nil
}

// DeleteTarget frees an offscreen target. Drawing returns to the screen if
// it was the current target.
func (r *Renderer) DeleteTarget(t pixgui.TargetID) error {
	s, ok := r.targets[t]
	if !ok {
		return fmt.Errorf("delete target %d: %w", t, ErrUnknownTarget)
	}
	if r.current == s {
		r.current = r.screen
	}
	delete(r.targets, t)
	return nil
}

// SetTarget directs drawing to t, or to the screen for pixgui.ScreenTarget.
func (r *Renderer) SetTarget(t pixgui.TargetID) error {
	if t == pixgui.ScreenTarget {
		r.current = r.screen
		return nil
	}
	s, ok := r.targets[t]
	if !ok {
		return fmt.Errorf("set target %d: %w", t, ErrUnknownTarget)
	}
	r.current = s
	return nil
}

// SetClip restricts drawing on the current target to rect.
func (r *Renderer) SetClip(rect pixgui.Rect) error {
	r.current.clip = toImageRect(rect).Intersect(r.current.img.Bounds())
	return nil
}

// ClearClip removes the clip of the current target.
func (r *Renderer) ClearClip() error {
	r.current.clip = r.current.img.Bounds()
	return nil
}

// Clear replaces every pixel of the current target, ignoring the clip.
func (r *Renderer) Clear(c uint32) error {
	img := r.current.img
	draw.Draw(img, img.Bounds(), image.NewUniform(toColor(c)), image.Point{}, draw.Src)
	return nil
}

// FillRect blends a filled rectangle.
func (r *Renderer) FillRect(rect pixgui.Rect, c uint32) error {
	if rect.Empty() {
		return nil
	}
	dst := r.current.dst()
	draw.Draw(dst, toImageRect(rect), image.NewUniform(toColor(c)), image.Point{}, draw.Over)
	return nil
}

// StrokeRect blends a one pixel outline inside rect.
func (r *Renderer) StrokeRect(rect pixgui.Rect, c uint32) error {
	if rect.Empty() {
		return nil
	}
	edges := []pixgui.Rect{
		{X: rect.X, Y: rect.Y, W: rect.W, H: 1},
		{X: rect.X, Y: rect.Bottom() - 1, W: rect.W, H: 1},
		{X: rect.X, Y: rect.Y + 1, W: 1, H: rect.H - 2},
		{X: rect.Right() - 1, Y: rect.Y + 1, W: 1, H: rect.H - 2},
	}
	if rect.H == 1 {
		edges = edges[:1]
	}
	for _, e := range edges {
		if err := r.FillRect(e, c); err != nil {
			return err
		}
	}
	return nil
}

// FillEllipse blends the ellipse inscribed in bounds.
func (r *Renderer) FillEllipse(bounds pixgui.Rect, c uint32) error {
	r.ellipse(bounds, c, false)
	return nil
}

// StrokeEllipse blends a one pixel outline of the ellipse inscribed in bounds.
func (r *Renderer) StrokeEllipse(bounds pixgui.Rect, c uint32) error {
	r.ellipse(bounds, c, true)
	return nil
}

func (r *Renderer) ellipse(bounds pixgui.Rect, c uint32, outline bool) {
	if bounds.Empty() {
		return
	}
	src := image.NewUniform(toColor(c))
	dst := r.current.dst()

	a := float64(bounds.W) / 2
	b := float64(bounds.H) / 2
	cx := float64(bounds.X) + a
	cy := float64(bounds.Y) + b
	inside := func(px, py int, a, b float64) bool {
		if a <= 0 || b <= 0 {
			return false
		}
		dx := (float64(px) + 0.5 - cx) / a
		dy := (float64(py) + 0.5 - cy) / b
		return dx*dx+dy*dy <= 1
	}

	for y := bounds.Y; y < bounds.Bottom(); y++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			if !inside(x, y, a, b) {
				continue
			}
			if outline && inside(x, y, a-1, b-1) {
				continue
			}
			draw.Draw(dst, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
		}
	}
}

// Line blends a line from a to b. Weights above one draw a square pen.
func (r *Renderer) Line(a, b pixgui.Point, c uint32, weight int) error {
	src := image.NewUniform(toColor(c))
	dst := r.current.dst()
	weight = max(weight, 1)
	lo := -(weight - 1) / 2

	plot := func(x, y int) {
		p := image.Rect(x+lo, y+lo, x+lo+weight, y+lo+weight)
		draw.Draw(dst, p, src, image.Point{}, draw.Over)
	}

	// Bresenham
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	x, y := a.X, a.Y
	for {
		plot(x, y)
		if x == b.X && y == b.Y {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawText draws text with its top-left corner at pos and returns its size.
// Glyphs are filled with fill; the bitmap faces have no outline so stroke
// is unused.
func (r *Renderer) DrawText(pos pixgui.Point, text string, fill, stroke uint32) (int, int, error) {
	w, h, _ := r.MeasureText(text)
	if text == "" {
		return w, h, nil
	}
	d := font.Drawer{
		Dst:  r.current.dst(),
		Src:  image.NewUniform(toColor(fill)),
		Face: r.face,
		Dot:  fixed.P(pos.X, pos.Y+fontface.Ascent(r.face)),
	}
	d.DrawString(text)
	return w, h, nil
}

// MeasureText returns the size text would take.
func (r *Renderer) MeasureText(text string) (int, int, error) {
	return fontface.MeasureString(r.face, text), fontface.LineHeight(r.face), nil
}

// DrawTarget composites t onto the current target, scaled to dst.
func (r *Renderer) DrawTarget(t pixgui.TargetID, dst pixgui.Rect) error {
	s, ok := r.targets[t]
	if !ok {
		return fmt.Errorf("draw target %d: %w", t, ErrUnknownTarget)
	}
	if s == r.current {
		return fmt.Errorf("draw target %d onto itself", t)
	}
	if dst.Empty() {
		return nil
	}
	draw.NearestNeighbor.Scale(r.current.dst(), toImageRect(dst), s.img, s.img.Bounds(), draw.Over, nil)
	return nil
}

func toImageRect(r pixgui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func toColor(c uint32) color.NRGBA {
	r, g, b, a := pixgui.UnpackRGBA(c)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// At returns the packed color of the screen pixel at (x, y).
func (r *Renderer) At(x, y int) uint32 {
	return pack(r.screen.img.RGBAAt(x, y))
}

// TargetAt returns the packed color of a target pixel, or 0 for unknown
// targets.
func (r *Renderer) TargetAt(t pixgui.TargetID, x, y int) uint32 {
	s, ok := r.targets[t]
	if !ok {
		return 0
	}
	return pack(s.img.RGBAAt(x, y))
}

// pack converts a premultiplied pixel back to a packed straight color.
func pack(c color.RGBA) uint32 {
	if c.A == 0 {
		return 0
	}
	if c.A == math.MaxUint8 {
		return pixgui.RGBA(c.R, c.G, c.B, c.A)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return pixgui.RGBA(n.R, n.G, n.B, n.A)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var (
	_ pixgui.Renderer  = (*Renderer)(nil)
	_ pixgui.Scissorer = (*Renderer)(nil)
)
