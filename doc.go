/*
Package pixgui provides the widget core of an immediate-mode GUI: stable
widget identity, hover/focus/active arbitration and a scroll compositor that
renders oversized content through offscreen targets.

# Overview

The UI is rebuilt every frame. Widgets are plain method calls on a Context
that return their interaction result directly; the Context rebuilds the
state needed across frames (focus, the active widget, scroll offsets) from
the widget labels, so callers keep no widget objects.

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	ui := pixgui.New(renderer)
	input := pixgui.NewInputState()

	for !window.ShouldClose() {
	    adapter.Poll() // fills input

	    ctx := ui.Begin(input, pixgui.Point{X: 800, Y: 600})
	    if ok, _ := ctx.Button("Click Me"); ok {
	        // Button was clicked
	    }
	    _, _ = ctx.Checkbox("Enabled", &enabled)
	    _ = ctx.ScrollArea("Log", 300, 200, func(ctx *pixgui.Context) error {
	        for _, line := range lines {
	            if err := ctx.Text(line); err != nil {
	                return err
	            }
	        }
	        return nil
	    })

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Identity

A widget's ID is the FNV-1a hash of its full label. Text after '#' is hashed
but not displayed, so "OK#save" and "OK#load" are two buttons that both read
"OK". Two widgets with the same full label share state.

# Interaction

Each widget runs, in order, TryHover, TryFocus and HandleEvents. Hover goes
to the last widget declared under the pointer. A press on a hovered widget
makes it active until the button is released anywhere; the click fires only
if the release happens over the same widget. Focus follows presses and
Tab/Shift+Tab, and a press on empty space clears it.

# Scroll Areas

	Mouse wheel      Scroll vertically; a horizontal wheel scrolls X
	Up / Down        Scroll by ScrollSpeed (area or vertical bar focused)
	Left / Right     Scroll horizontally by ScrollSpeed
	Page Up          Scroll up by one viewport
	Page Down        Scroll down by one viewport
	Home / End       Scroll to top / bottom
	Drag thumb       Scroll to the pointer position along the track

Content is drawn into an offscreen target the size of the viewport. Its
measured size is known only after drawing, so scroll ranges lag content
changes by one frame. Use ListClipper with Dummy to skip rows outside the
viewport of long lists.

# Clipping

By default content that overlaps the frame margins is painted over with the
background color (ClipBorderFill). WithClipMode(ClipScissor) uses the
renderer's scissor support instead when it implements Scissorer.
*/
package pixgui
