// Package opengl provides an OpenGL 4.1 backend for pixgui.
//
// Draw calls are batched per target and submitted when the target changes
// or at Flush. Offscreen targets are framebuffer objects with an RGBA color
// texture.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/pixgui"
	"github.com/go-theft-auto/pixgui/backend/fontface"
)

var (
	// ErrUnknownTarget is returned for operations on targets that were never
	// created or have been deleted.
	ErrUnknownTarget = errors.New("opengl: unknown target")
	// ErrInvalidTargetSize is returned when a target size is not positive.
	ErrInvalidTargetSize = errors.New("opengl: invalid target size")
)

// framebuffer is an offscreen target.
type framebuffer struct {
	fbo, tex uint32
	w, h     int
}

// Renderer implements pixgui.Renderer using OpenGL.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	fontTex      uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32 // Uniform for RGBA vs alpha-only texture mode
	width        int
	height       int

	atlas   *fontface.Atlas
	targets map[pixgui.TargetID]*framebuffer
	nextID  pixgui.TargetID
	current pixgui.TargetID
	dl      *DrawList
	quads   []GlyphQuad

	// Track which textures are RGBA (vs alpha-only)
	rgbaTextures map[uint32]bool
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source
// Supports two texture modes:
// - Alpha-only (R-channel): glyph atlas coverage
// - RGBA: offscreen targets
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (useTexture) {
        vec4 texColor = texture(fontTexture, TexCoord);
        if (isRGBATexture) {
            FragColor = texColor * Color;
        } else {
            FragColor = vec4(Color.rgb, Color.a * texColor.r);
        }
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	face font.Face
}

// WithFace sets the font face used for text. The default is the 7x13
// bitmap face.
func WithFace(face font.Face) Option {
	return func(o *options) { o.face = face }
}

// NewRenderer creates a renderer for a width x height window. A GL context
// must be current.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	o := options{face: fontface.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		width:        width,
		height:       height,
		targets:      make(map[pixgui.TargetID]*framebuffer),
		nextID:       1,
		dl:           newDrawList(),
		rgbaTextures: make(map[uint32]bool),
	}
	r.dl.Reset(width, height)

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	r.atlas, err = fontface.BuildAtlas(o.face, 32, 126)
	if err != nil {
		r.Delete()
		return nil, fmt.Errorf("build glyph atlas: %w", err)
	}
	r.fontTex = uploadAtlas(r.atlas)

	return r, nil
}

// uploadAtlas creates an alpha-only texture from the glyph atlas.
func uploadAtlas(a *fontface.Atlas) uint32 {
	b := a.Image.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.Image.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Resize updates the window size. Call between frames.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	if r.current == pixgui.ScreenTarget && r.dl.Empty() {
		r.dl.Reset(width, height)
	}
}

// targetSize returns the size of the current target.
func (r *Renderer) targetSize() (int, int) {
	if fb, ok := r.targets[r.current]; ok {
		return fb.w, fb.h
	}
	return r.width, r.height
}

// CreateTarget creates a framebuffer with an RGBA color texture.
func (r *Renderer) CreateTarget(width, height int) (pixgui.TargetID, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("create %dx%d: %w", width, height, ErrInvalidTargetSize)
	}
	fb := &framebuffer{w: width, h: height}

	gl.GenTextures(1, &fb.tex)
	gl.BindTexture(gl.TEXTURE_2D, fb.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	var prev int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.tex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))

	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &fb.fbo)
		gl.DeleteTextures(1, &fb.tex)
		return 0, fmt.Errorf("create %dx%d: framebuffer incomplete (0x%x)", width, height, status)
	}

	id := r.nextID
	r.nextID++
	r.targets[id] = fb
	r.rgbaTextures[fb.tex] = true
	return id, nil
}

// DeleteTarget frees a framebuffer. Pending draws to it are discarded.
func (r *Renderer) DeleteTarget(t pixgui.TargetID) error {
	fb, ok := r.targets[t]
	if !ok {
		return fmt.Errorf("delete target %d: %w", t, ErrUnknownTarget)
	}
	if r.current == t {
		r.current = pixgui.ScreenTarget
		r.dl.Reset(r.width, r.height)
	}
	delete(r.rgbaTextures, fb.tex)
	gl.DeleteFramebuffers(1, &fb.fbo)
	gl.DeleteTextures(1, &fb.tex)
	delete(r.targets, t)
	return nil
}

// SetTarget submits the pending draws of the current target and directs
// drawing to t.
func (r *Renderer) SetTarget(t pixgui.TargetID) error {
	if t == r.current {
		return nil
	}
	if t != pixgui.ScreenTarget {
		if _, ok := r.targets[t]; !ok {
			return fmt.Errorf("set target %d: %w", t, ErrUnknownTarget)
		}
	}
	if err := r.Flush(); err != nil {
		return err
	}
	r.current = t
	w, h := r.targetSize()
	r.dl.Reset(w, h)
	return nil
}

// SetClip restricts drawing on the current target to rect.
func (r *Renderer) SetClip(rect pixgui.Rect) error {
	r.dl.SetClip(rect.X, rect.Y, rect.W, rect.H)
	return nil
}

// ClearClip removes the clip of the current target.
func (r *Renderer) ClearClip() error {
	r.dl.ClearClip()
	return nil
}

// Clear fills the current target with c.
func (r *Renderer) Clear(c uint32) error {
	r.dl.Clear(c)
	return nil
}

// FillRect draws a filled rectangle.
func (r *Renderer) FillRect(rect pixgui.Rect, c uint32) error {
	if rect.Empty() {
		return nil
	}
	r.dl.SetTexture(0)
	r.dl.AddRect(float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c)
	return nil
}

// StrokeRect draws a one pixel outline inside rect.
func (r *Renderer) StrokeRect(rect pixgui.Rect, c uint32) error {
	if rect.Empty() {
		return nil
	}
	r.dl.SetTexture(0)
	r.dl.AddRectOutline(float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, 1)
	return nil
}

// FillEllipse draws the filled ellipse inscribed in bounds.
func (r *Renderer) FillEllipse(bounds pixgui.Rect, c uint32) error {
	r.dl.SetTexture(0)
	r.dl.AddEllipse(float32(bounds.X), float32(bounds.Y), float32(bounds.W), float32(bounds.H), c)
	return nil
}

// StrokeEllipse draws a one pixel outline of the ellipse inscribed in bounds.
func (r *Renderer) StrokeEllipse(bounds pixgui.Rect, c uint32) error {
	r.dl.SetTexture(0)
	r.dl.AddEllipseOutline(float32(bounds.X), float32(bounds.Y), float32(bounds.W), float32(bounds.H), c, 1)
	return nil
}

// Line draws a line from a to b through pixel centers.
func (r *Renderer) Line(a, b pixgui.Point, c uint32, weight int) error {
	r.dl.SetTexture(0)
	r.dl.AddLine(float32(a.X)+0.5, float32(a.Y)+0.5, float32(b.X)+0.5, float32(b.Y)+0.5, c, float32(max(weight, 1)))
	return nil
}

// DrawText draws text with its top-left corner at pos from the glyph atlas.
// stroke is unused.
func (r *Renderer) DrawText(pos pixgui.Point, text string, fill, stroke uint32) (int, int, error) {
	w, h, _ := r.MeasureText(text)
	if text == "" {
		return w, h, nil
	}
	r.quads = r.quads[:0]
	r.atlas.Layout(text, pos.X, pos.Y, func(g fontface.Glyph, x, y int) {
		r.quads = append(r.quads, GlyphQuad{
			X0: float32(x), Y0: float32(y),
			X1: float32(x + g.W), Y1: float32(y + g.H),
			U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
		})
	})
	r.dl.SetTexture(r.fontTex)
	r.dl.AddGlyphQuads(r.quads, fill)
	return w, h, nil
}

// MeasureText returns the size text would take.
func (r *Renderer) MeasureText(text string) (int, int, error) {
	return r.atlas.Measure(text), r.atlas.LineHeight, nil
}

// DrawTarget draws the color texture of t into dst on the current target.
func (r *Renderer) DrawTarget(t pixgui.TargetID, dst pixgui.Rect) error {
	fb, ok := r.targets[t]
	if !ok {
		return fmt.Errorf("draw target %d: %w", t, ErrUnknownTarget)
	}
	if t == r.current {
		return fmt.Errorf("draw target %d onto itself", t)
	}
	// Framebuffer textures are stored bottom-up: the top of the target is v=1.
	r.dl.SetTexture(fb.tex)
	r.dl.AddQuad(float32(dst.X), float32(dst.Y), float32(dst.Right()), float32(dst.Bottom()), 0, 1, 1, 0, pixgui.ColorWhite)
	return nil
}

// Flush submits the pending draws of the current target.
func (r *Renderer) Flush() error {
	dl := r.dl
	if dl.Empty() {
		return nil
	}
	dl.Finalize()

	fbo := uint32(0)
	w, h := r.width, r.height
	if fb, ok := r.targets[r.current]; ok {
		fbo, w, h = fb.fbo, fb.w, fb.h
	}
	r.render(dl, fbo, w, h)
	dl.Reset(w, h)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("render target %d: gl error 0x%x", r.current, e)
	}
	return nil
}

// render draws dl into fbo, restoring the GL state it changes.
func (r *Renderer) render(dl *DrawList, fbo uint32, width, height int) {
	var lastProgram, lastFBO int32
	var lastBlendSrc, lastBlendDst int32
	var lastViewport, lastScissorBox [4]int32
	var blendEnabled, depthEnabled, cullEnabled, scissorEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &lastFBO)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled = gl.IsEnabled(gl.SCISSOR_TEST)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	if fbo != 0 {
		gl.Viewport(0, 0, int32(width), int32(height))
	}

	if dl.HasClear {
		cr, cg, cb, ca := pixgui.UnpackRGBA(dl.ClearColor)
		gl.Disable(gl.SCISSOR_TEST)
		gl.ClearColor(float32(cr)/255, float32(cg)/255, float32(cb)/255, float32(ca)/255)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)

	// Top-left origin in target pixels
	proj := orthoMatrix(0, float32(width), float32(height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	if len(dl.VtxBuffer) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(Vertex{})),
			gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
			gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)
	}

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}

		// Scissor boxes have a bottom-left origin
		clipX, clipW, clipH := cmd.ClipRect[0], cmd.ClipRect[2], cmd.ClipRect[3]
		clipY := int32(height) - (cmd.ClipRect[1] + clipH)
		if clipX < 0 {
			clipW += clipX
			clipX = 0
		}
		if clipY < 0 {
			clipH += clipY
			clipY = 0
		}
		if clipW <= 0 || clipH <= 0 {
			continue
		}
		gl.Scissor(clipX, clipY, clipW, clipH)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			if r.rgbaTextures[cmd.TextureID] {
				gl.Uniform1i(r.isRGBATexLoc, 1)
			} else {
				gl.Uniform1i(r.isRGBATexLoc, 0)
			}
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	// Restore GL state
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(lastFBO))
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
}

func setEnabled(capability uint32, enabled bool) {
	if enabled {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources, including every offscreen target.
func (r *Renderer) Delete() {
	for id := range r.targets {
		_ = r.DeleteTarget(id)
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

var (
	_ pixgui.Renderer  = (*Renderer)(nil)
	_ pixgui.Scissorer = (*Renderer)(nil)
	_ pixgui.Flusher   = (*Renderer)(nil)
)
