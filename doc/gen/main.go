// Command gen renders every widget with sample data on the raster backend
// and saves JPEG screenshots to doc/imgs/. It needs no window or GPU.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-theft-auto/pixgui"
	"github.com/go-theft-auto/pixgui/backend/raster"
)

func main() {
	out := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	flag.Parse()

	if err := run(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                                 // filename without extension
	width  int                                    // viewport width
	height int                                    // viewport height
	theme  *pixgui.Theme                          // nil for the default theme
	clip   pixgui.ClipMode                        // scroll area clip mode
	draw   func(ctx *pixgui.Context) error        // widget drawing function
	input  func(frame int, in *pixgui.InputState) // input events per frame, optional
	frames int                                    // frames to render (0 = default 2)
}

func run(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	r := raster.New(s.width, s.height)

	// Fresh GUI per screenshot to avoid state leaking between captures.
	opts := []pixgui.GUIOption{pixgui.WithClipMode(s.clip)}
	if s.theme != nil {
		opts = append(opts, pixgui.WithTheme(*s.theme))
	}
	ui := pixgui.New(r, opts...)
	defer ui.Close()

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	in := pixgui.NewInputState()
	for i := 0; i < frames; i++ {
		in.Reset()
		if s.input != nil {
			s.input(i, in)
		}
		if err := r.Clear(ui.Theme().Surface); err != nil {
			return err
		}
		ctx := ui.Begin(in, pixgui.Point{X: s.width, Y: s.height})
		if err := s.draw(ctx); err != nil {
			return err
		}
		if err := ui.End(); err != nil {
			return err
		}
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, r.Screen(), &jpeg.Options{Quality: 90})
}

// hoverAt moves the mouse to (x, y) on every frame.
func hoverAt(x, y int) func(int, *pixgui.InputState) {
	return func(_ int, in *pixgui.InputState) {
		in.SetMousePos(x, y)
	}
}

// wheelAt scrolls the area under (x, y) by notches on the first frame.
func wheelAt(x, y, notchesX, notchesY int) func(int, *pixgui.InputState) {
	return func(frame int, in *pixgui.InputState) {
		in.SetMousePos(x, y)
		if frame == 0 {
			in.AddMouseWheel(notchesX, notchesY)
		}
	}
}

func textLines(n int, prefix string) func(*pixgui.Context) error {
	return func(ctx *pixgui.Context) error {
		for i := 0; i < n; i++ {
			if err := ctx.Text(fmt.Sprintf("%s %d", prefix, i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked   = true
		unchecked = false
		radioIdx  = 1
	)
	light := pixgui.LightTheme()

	return []screenshot{
		{
			name: "text", width: 300, height: 80,
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				if err := ctx.Text("Plain text"); err != nil {
					return err
				}
				ctx.SetDisabled(true)
				defer ctx.SetDisabled(false)
				return ctx.Text("Disabled text")
			},
		},
		{
			name: "button", width: 400, height: 80,
			input: hoverAt(150, 25),
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				if _, err := ctx.Button("Standard"); err != nil {
					return err
				}
				ctx.SameLine()
				if _, err := ctx.Button("Hovered"); err != nil {
					return err
				}
				ctx.SameLine()
				_, err := ctx.Button("Disabled", pixgui.WithDisabled(true))
				return err
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				if _, err := ctx.Checkbox("Enabled feature", &checked); err != nil {
					return err
				}
				_, err := ctx.Checkbox("Unchecked feature", &unchecked)
				return err
			},
		},
		{
			name: "radio", width: 360, height: 60,
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				for i, l := range []string{"Small", "Medium", "Large"} {
					if i > 0 {
						ctx.SameLine()
					}
					if _, err := ctx.Radio(l+"##size", &radioIdx, i); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			name: "scroll_area", width: 300, height: 200,
			input: wheelAt(100, 100, 0, -4),
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				return ctx.ScrollArea("Log", 240, 140, textLines(30, "Entry"))
			},
		},
		{
			name: "scroll_area_both", width: 300, height: 200,
			input: wheelAt(100, 100, 3, -2),
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				return ctx.ScrollArea("Wide##both", 240, 140, func(ctx *pixgui.Context) error {
					for i := 0; i < 20; i++ {
						line := fmt.Sprintf("%02d %s", i, strings.Repeat("wide ", 10))
						if err := ctx.Text(line); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
		{
			name: "scroll_area_scissor", width: 300, height: 200,
			clip:  pixgui.ClipScissor,
			input: wheelAt(100, 100, 0, -4),
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				return ctx.ScrollArea("Scissor", 240, 140, textLines(30, "Entry"))
			},
		},
		{
			name: "scroll_area_nested", width: 360, height: 260,
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				return ctx.ScrollArea("Outer", 320, 200, func(ctx *pixgui.Context) error {
					if err := ctx.Text("Before"); err != nil {
						return err
					}
					if err := ctx.ScrollArea("Inner", 200, 80, textLines(12, "Inner")); err != nil {
						return err
					}
					return textLines(8, "After")(ctx)
				})
			},
		},
		{
			name: "light_theme", width: 300, height: 200, theme: &light,
			draw: func(ctx *pixgui.Context) error {
				ctx.SetCursorPos(12, 12)
				if _, err := ctx.Checkbox("Light", &checked); err != nil {
					return err
				}
				return ctx.ScrollArea("##light", 240, 120, textLines(20, "Row"))
			},
		},
	}
}
