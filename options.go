package pixgui

// Option configures a single widget call.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptTint = pixgui.NewOptKey("tint", uint32(0))
//	ctx.Button("OK", pixgui.WithOpt(OptTint, pixgui.ColorWhite))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in option keys.
var (
	OptWidth    = NewOptKey("width", 0)
	OptHeight   = NewOptKey("height", 0)
	OptDisabled = NewOptKey("disabled", false)
)

// WithWidth overrides the widget width in pixels.
func WithWidth(width int) Option { return WithOpt(OptWidth, width) }

// WithHeight overrides the widget height in pixels.
func WithHeight(height int) Option { return WithOpt(OptHeight, height) }

// WithDisabled disables this widget only. The layout is unchanged.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithTheme sets the widget theme.
func WithTheme(theme Theme) GUIOption {
	return func(g *GUI) { g.theme = theme }
}

// WithClipMode selects how scroll areas hide content outside their viewport.
func WithClipMode(mode ClipMode) GUIOption {
	return func(g *GUI) { g.clipMode = mode }
}
