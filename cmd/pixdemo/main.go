// Command pixdemo opens a window with the pixgui widgets: buttons, check
// boxes, radio buttons and two scroll areas, one holding a virtualized list.
//
// Usage:
//
//	go run ./cmd/pixdemo [-config pixdemo.toml] [-verbose]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/pixgui"
	"github.com/go-theft-auto/pixgui/backend/fontface"
	"github.com/go-theft-auto/pixgui/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	verbose := flag.Bool("verbose", false, "log interaction events")
	flag.Parse()

	if err := run(*configPath, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	pixgui.SetVerbose(verbose || cfg.Verbose)

	face, err := loadFace(cfg.Font)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height, opengl.WithFace(face))
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := pixgui.New(renderer, cfg.guiOptions()...)
	defer ui.Close()

	state := newDemoState(cfg.Rows)
	bg := cfg.theme().Surface
	r, g, b, _ := pixgui.UnpackRGBA(bg)

	for !window.ShouldClose() {
		in := input.Poll()

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, pixgui.Point{X: w, Y: h})
		if err := drawDemo(ctx, state); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func loadFace(cfg fontConfig) (font.Face, error) {
	if cfg.Path == "" {
		return fontface.Default(), nil
	}
	face, err := fontface.Load(cfg.Path, cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", cfg.Path, err)
	}
	return face, nil
}
