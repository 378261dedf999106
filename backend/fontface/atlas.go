package fontface

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rune's bitmap in an Atlas.
type Glyph struct {
	Advance  int // Pen advance in pixels
	BearingX int // Offset from the pen to the bitmap's left edge
	BearingY int // Offset from the baseline to the bitmap's top edge (negative above)
	W, H     int // Bitmap size, zero for blank glyphs
	U0, V0   float32
	U1, V1   float32
}

// Atlas is a coverage bitmap holding the glyphs of a face.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	Ascent     int
	LineHeight int
	face       font.Face
}

const (
	atlasPadding = 1
	atlasMaxSize = 4096
)

// BuildAtlas rasterizes the runes first..last of face into a shelf-packed
// coverage atlas.
func BuildAtlas(face font.Face, first, last rune) (*Atlas, error) {
	type meas struct {
		r      rune
		bounds image.Rectangle
		adv    int
	}
	measure := make([]meas, 0, last-first+1)
	for r := first; r <= last; r++ {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		measure = append(measure, meas{r: r, bounds: rect, adv: adv.Round()})
	}

	// Grow the atlas until every glyph fits on the shelves.
	size := 128
	var pos map[rune]image.Point
	for {
		pos = make(map[rune]image.Point, len(measure))
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		for _, m := range measure {
			w, h := m.bounds.Dx(), m.bounds.Dy()
			if w == 0 || h == 0 {
				continue
			}
			if x+w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if w+2*atlasPadding > size || y+h+atlasPadding > size {
				fits = false
				break
			}
			pos[m.r] = image.Pt(x, y)
			x += w + atlasPadding
			rowH = max(rowH, h)
		}
		if fits {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}
	glyphs := make(map[rune]Glyph, len(measure))
	for _, m := range measure {
		g := Glyph{
			Advance:  m.adv,
			BearingX: m.bounds.Min.X,
			BearingY: m.bounds.Min.Y,
			W:        m.bounds.Dx(),
			H:        m.bounds.Dy(),
		}
		if p, ok := pos[m.r]; ok {
			drawer.Dot = fixed.P(p.X-m.bounds.Min.X, p.Y-m.bounds.Min.Y)
			drawer.DrawString(string(m.r))
			g.U0 = float32(p.X) / float32(size)
			g.V0 = float32(p.Y) / float32(size)
			g.U1 = float32(p.X+g.W) / float32(size)
			g.V1 = float32(p.Y+g.H) / float32(size)
		}
		glyphs[m.r] = g
	}

	return &Atlas{
		Image:      dst,
		Glyphs:     glyphs,
		Ascent:     Ascent(face),
		LineHeight: LineHeight(face),
		face:       face,
	}, nil
}

// Glyph returns the glyph for r, falling back to '?'.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	g, ok := a.Glyphs['?']
	return g, ok
}

// Kern returns the kerning adjustment between two runes in pixels.
func (a *Atlas) Kern(prev, r rune) int {
	return a.face.Kern(prev, r).Round()
}

// Measure returns the advance width of s in pixels, as laid out by Layout.
func (a *Atlas) Measure(s string) int {
	w := 0
	prev := rune(-1)
	for _, r := range s {
		g, _ := a.Glyph(r)
		if prev >= 0 {
			w += a.Kern(prev, r)
		}
		w += g.Advance
		prev = r
	}
	return w
}

// Layout calls fn for each non-blank glyph of s with its top-left corner,
// for a line whose top-left is (x, y).
func (a *Atlas) Layout(s string, x, y int, fn func(g Glyph, gx, gy int)) {
	baseline := y + a.Ascent
	prev := rune(-1)
	for _, r := range s {
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			x += a.Kern(prev, r)
		}
		if g.W > 0 && g.H > 0 {
			fn(g, x+g.BearingX, baseline+g.BearingY)
		}
		x += g.Advance
		prev = r
	}
}
