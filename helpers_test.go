package pixgui_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-theft-auto/pixgui"
)

// Mock text metrics: fixed-width glyphs.
const (
	glyphW = 8
	glyphH = 10
)

// call is one recorded renderer call.
type call struct {
	op     string
	target pixgui.TargetID
	rect   pixgui.Rect
	color  uint32
	text   string
	a, b   pixgui.Point
}

// mockRenderer records draw calls and tracks offscreen targets.
type mockRenderer struct {
	calls   []call
	targets map[pixgui.TargetID]pixgui.Point
	next    pixgui.TargetID
	current pixgui.TargetID

	created int
	deleted int

	failCreate error
	failFill   error
}

var errUnknownTarget = errors.New("mock: unknown target")

func newMockRenderer() *mockRenderer {
	return &mockRenderer{targets: make(map[pixgui.TargetID]pixgui.Point), next: 1}
}

func (m *mockRenderer) record(c call) {
	c.target = m.current
	m.calls = append(m.calls, c)
}

func (m *mockRenderer) CreateTarget(w, h int) (pixgui.TargetID, error) {
	if m.failCreate != nil {
		return 0, m.failCreate
	}
	id := m.next
	m.next++
	m.targets[id] = pixgui.Point{X: w, Y: h}
	m.created++
	return id, nil
}

func (m *mockRenderer) DeleteTarget(t pixgui.TargetID) error {
	if _, ok := m.targets[t]; !ok {
		return fmt.Errorf("delete %d: %w", t, errUnknownTarget)
	}
	delete(m.targets, t)
	m.deleted++
	return nil
}

func (m *mockRenderer) SetTarget(t pixgui.TargetID) error {
	if _, ok := m.targets[t]; !ok && t != pixgui.ScreenTarget {
		return fmt.Errorf("set %d: %w", t, errUnknownTarget)
	}
	m.current = t
	return nil
}

func (m *mockRenderer) Clear(c uint32) error {
	m.record(call{op: "clear", color: c})
	return nil
}

func (m *mockRenderer) FillRect(r pixgui.Rect, c uint32) error {
	if m.failFill != nil {
		return m.failFill
	}
	m.record(call{op: "fill", rect: r, color: c})
	return nil
}

func (m *mockRenderer) StrokeRect(r pixgui.Rect, c uint32) error {
	m.record(call{op: "stroke", rect: r, color: c})
	return nil
}

func (m *mockRenderer) FillEllipse(r pixgui.Rect, c uint32) error {
	m.record(call{op: "fillEllipse", rect: r, color: c})
	return nil
}

func (m *mockRenderer) StrokeEllipse(r pixgui.Rect, c uint32) error {
	m.record(call{op: "strokeEllipse", rect: r, color: c})
	return nil
}

func (m *mockRenderer) Line(a, b pixgui.Point, c uint32, weight int) error {
	m.record(call{op: "line", a: a, b: b, color: c})
	return nil
}

func (m *mockRenderer) DrawText(pos pixgui.Point, text string, fill, stroke uint32) (int, int, error) {
	m.record(call{op: "text", a: pos, text: text, color: fill})
	w, h, _ := m.MeasureText(text)
	return w, h, nil
}

func (m *mockRenderer) MeasureText(text string) (int, int, error) {
	return len(text) * glyphW, glyphH, nil
}

func (m *mockRenderer) DrawTarget(t pixgui.TargetID, dst pixgui.Rect) error {
	if _, ok := m.targets[t]; !ok {
		return fmt.Errorf("draw %d: %w", t, errUnknownTarget)
	}
	m.record(call{op: "drawTarget", rect: dst, text: fmt.Sprint(t)})
	return nil
}

// callsOn returns the recorded calls of one kind made on target.
func (m *mockRenderer) callsOn(op string, target pixgui.TargetID) []call {
	var out []call
	for _, c := range m.calls {
		if c.op == op && c.target == target {
			out = append(out, c)
		}
	}
	return out
}

// offscreen returns the only live offscreen target.
func (m *mockRenderer) offscreen(t *testing.T) pixgui.TargetID {
	t.Helper()
	if len(m.targets) != 1 {
		t.Fatalf("live targets = %d, want 1", len(m.targets))
	}
	for id := range m.targets {
		return id
	}
	return 0
}

// scissorRenderer adds scissor clipping to mockRenderer.
type scissorRenderer struct {
	*mockRenderer
	clips  []pixgui.Rect
	clears int
}

func (s *scissorRenderer) SetClip(r pixgui.Rect) error {
	s.clips = append(s.clips, r)
	return nil
}

func (s *scissorRenderer) ClearClip() error {
	s.clears++
	return nil
}

// harness drives frames of one GUI with a persistent input state.
type harness struct {
	t  *testing.T
	r  *mockRenderer
	ui *pixgui.GUI
	in *pixgui.InputState
}

func newHarness(t *testing.T, opts ...pixgui.GUIOption) *harness {
	t.Helper()
	r := newMockRenderer()
	return &harness{t: t, r: r, ui: pixgui.New(r, opts...), in: pixgui.NewInputState()}
}

// newScissorHarness drives a GUI whose renderer supports scissor clipping.
func newScissorHarness(t *testing.T, opts ...pixgui.GUIOption) (*harness, *scissorRenderer) {
	t.Helper()
	s := &scissorRenderer{mockRenderer: newMockRenderer()}
	return &harness{t: t, r: s.mockRenderer, ui: pixgui.New(s, opts...), in: pixgui.NewInputState()}, s
}

// frame runs one frame with the input events set since the last frame,
// then clears the per-frame edges.
func (h *harness) frame(draw func(ctx *pixgui.Context)) {
	h.t.Helper()
	h.r.calls = h.r.calls[:0]
	ctx := h.ui.Begin(h.in, pixgui.Point{X: 800, Y: 600})
	draw(ctx)
	if err := h.ui.End(); err != nil {
		h.t.Fatalf("End() returned error: %v", err)
	}
	h.in.Reset()
}

func (h *harness) move(x, y int) { h.in.SetMousePos(x, y) }
func (h *harness) press()        { h.in.SetMouseButton(pixgui.MouseButtonLeft, true) }
func (h *harness) release()      { h.in.SetMouseButton(pixgui.MouseButtonLeft, false) }

// tap presses and releases a key in the next frame.
func (h *harness) tap(k pixgui.Key) {
	h.in.SetKey(k, true)
	h.in.SetKey(k, false)
}

// widget runs the arbitration steps of a plain widget.
func widget(ctx *pixgui.Context, id pixgui.ID, r pixgui.Rect) bool {
	hovered := ctx.TryHover(id, r)
	ctx.TryFocus(id)
	ctx.HandleEvents(id)
	return hovered
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
