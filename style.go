package pixgui

// Theme defines the colors and metrics of the built-in widgets.
type Theme struct {
	// Colors
	Background  uint32 // Scroll area background and clip margins
	Surface     uint32 // Scrollbar track
	Primary     uint32 // Widget fill
	Secondary   uint32 // Hovered checkbox/radio fill, scrollbar thumb
	Highlight   uint32 // Hovered button, focus outline, check marks
	Muted       uint32 // Unfocused outline
	Text        uint32
	Border      uint32 // Scroll area frame
	OnSecondary uint32 // Text drawn on Secondary

	// Sizing
	ItemPad     Point // Padding inside buttons and below scroll area labels
	ItemSpacing Point // Gap between consecutive items
	FramePad    Point // Margin inside scroll areas

	CheckboxSize int
	RadioRadius  int

	// Scrolling
	ScrollbarSize int // Scrollbar thickness
	ThumbMin      int // Smallest thumb length
	ScrollSpeed   int // Pixels per wheel notch or arrow key step
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  RGBA(30, 30, 34, 255),
		Surface:     RGBA(45, 45, 50, 255),
		Primary:     RGBA(60, 60, 68, 255),
		Secondary:   RGBA(95, 95, 110, 255),
		Highlight:   RGBA(70, 130, 220, 255),
		Muted:       RGBA(110, 110, 120, 255),
		Text:        ColorWhite,
		Border:      RGBA(80, 80, 88, 255),
		OnSecondary: RGBA(20, 20, 24, 255),

		ItemPad:     Point{X: 8, Y: 6},
		ItemSpacing: Point{X: 8, Y: 6},
		FramePad:    Point{X: 8, Y: 8},

		CheckboxSize: 16,
		RadioRadius:  8,

		ScrollbarSize: 12,
		ThumbMin:      10,
		ScrollSpeed:   3,
	}
}

// LightTheme returns a light variant of DefaultTheme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Background = RGBA(240, 240, 242, 255)
	t.Surface = RGBA(220, 220, 224, 255)
	t.Primary = RGBA(200, 200, 206, 255)
	t.Secondary = RGBA(170, 170, 180, 255)
	t.Highlight = RGBA(40, 100, 200, 255)
	t.Muted = RGBA(140, 140, 150, 255)
	t.Text = ColorBlack
	t.Border = RGBA(160, 160, 168, 255)
	t.OnSecondary = ColorWhite
	return t
}
