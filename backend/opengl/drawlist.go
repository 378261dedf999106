package opengl

import "math"

// Vertex is a single vertex in the draw list.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // Packed RGBA (0xAABBGGRR)
}

// DrawCmd is a batch of triangles sharing a texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]int32 // x, y, w, h in target pixels, top-left origin
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// maxBatchVertices keeps command-relative indices within uint16.
const maxBatchVertices = math.MaxUint16

// DrawList accumulates draw commands for one target until it is flushed.
// It batches primitives by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	// Clear color to apply before the commands, if set.
	ClearColor uint32
	HasClear   bool

	currentClip  [4]int32
	fullClip     [4]int32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

func newDrawList() *DrawList {
	return &DrawList{
		VtxBuffer: make([]Vertex, 0, 1024),
		IdxBuffer: make([]uint16, 0, 2048),
		CmdBuffer: make([]DrawCmd, 0, 16),
	}
}

// Reset empties the list for a target of the given size.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Reset(width, height int) {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.HasClear = false
	dl.fullClip = [4]int32{0, 0, int32(width), int32(height)}
	dl.currentClip = dl.fullClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// Empty reports whether the list would draw nothing.
func (dl *DrawList) Empty() bool {
	return !dl.HasClear && len(dl.IdxBuffer) == 0
}

// Clear drops everything recorded so far and fills the target with color
// before later commands.
func (dl *DrawList) Clear(color uint32) {
	clip, tex := dl.currentClip, dl.textureID
	w, h := dl.fullClip[2], dl.fullClip[3]
	dl.Reset(int(w), int(h))
	dl.currentClip, dl.textureID = clip, tex
	dl.ClearColor = color
	dl.HasClear = true
}

// SetClip restricts later primitives to x, y, w, h.
func (dl *DrawList) SetClip(x, y, w, h int) {
	dl.currentClip = [4]int32{int32(x), int32(y), int32(max(w, 0)), int32(max(h, 0))}
	dl.splitDraw()
}

// ClearClip removes the clip rectangle.
func (dl *DrawList) ClearClip() {
	dl.currentClip = dl.fullClip
	dl.splitDraw()
}

// SetTexture sets the texture for later primitives. Zero draws untextured.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the index of the first one,
// relative to the current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxBatchVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.AddQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddQuad draws an axis-aligned quad with texture coordinates.
func (dl *DrawList) AddQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline inside x, y, w, h.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// ellipseSegments returns the number of segments for a smooth ellipse.
func ellipseSegments(rx, ry float32) int {
	n := int(math.Pi * float64(rx+ry) / 2)
	return min(max(n, 12), 64)
}

// AddEllipse draws a filled ellipse inscribed in x, y, w, h.
func (dl *DrawList) AddEllipse(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	n := ellipseSegments(rx, ry)

	verts := make([]Vertex, 0, n+1)
	verts = append(verts, Vertex{Pos: [2]float32{cx, cy}, Color: color})
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts = append(verts, Vertex{
			Pos:   [2]float32{cx + rx*float32(math.Cos(a)), cy + ry*float32(math.Sin(a))},
			Color: color,
		})
	}
	idx := dl.addVertices(verts...)
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		dl.addIndices(idx, idx+uint16(i+1), idx+uint16(next))
	}
}

// AddEllipseOutline draws the outline of the ellipse inscribed in x, y, w, h.
func (dl *DrawList) AddEllipseOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	n := ellipseSegments(rx, ry)

	verts := make([]Vertex, 0, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		cos, sin := float32(math.Cos(a)), float32(math.Sin(a))
		verts = append(verts,
			Vertex{Pos: [2]float32{cx + rx*cos, cy + ry*sin}, Color: color},
			Vertex{Pos: [2]float32{cx + (rx-thickness)*cos, cy + (ry-thickness)*sin}, Color: color},
		)
	}
	idx := dl.addVertices(verts...)
	for i := 0; i < n; i++ {
		o0 := idx + uint16(2*i)
		o1 := idx + uint16(2*((i+1)%n))
		dl.addIndices(o0, o1, o1+1, o0, o1+1, o0+1)
	}
}

// GlyphQuad is one character's screen and atlas rectangle.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	for _, q := range quads {
		dl.AddQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Finalize closes the last command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
