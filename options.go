package scrollview

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures an Engine.
type Option func(*options)

// options holds all engine configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for engine options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Set options
//	e := scrollview.New(node, loop,
//	    scrollview.WithOpt(scrollview.OptDelay, 2*time.Second),
//	    scrollview.WithOpt(scrollview.OptVisibility, scrollview.ScrollbarAlways),
//	)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
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

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
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

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

var (
	// OptDelay is how long the thumb stays visible after activity.
	OptDelay = NewOptKey("delay", DefaultDelay)
	// OptVisibility is the three-state visibility override.
	OptVisibility = NewOptKey("visibility", ScrollbarAuto)
	// OptMinThumbSize is the smallest thumb the geometry produces.
	OptMinThumbSize = NewOptKey("minThumbSize", DefaultMinThumbSize)
	// OptLogger receives diagnostics. Defaults to the package logger.
	OptLogger = NewOptKey[*zerolog.Logger]("logger", nil)
	// OptThumbDispatcher re-targets track presses onto the thumb.
	OptThumbDispatcher = NewOptKey[ThumbDispatcher]("thumbDispatcher", nil)
	// OptAnimation is the duration applied when SetPosition is given none.
	OptAnimation = NewOptKey[time.Duration]("animation", 0)
)

// Delay is shorthand for WithOpt(OptDelay, d).
func Delay(d time.Duration) Option { return WithOpt(OptDelay, d) }

// Visibility is shorthand for WithOpt(OptVisibility, v).
func Visibility(v ScrollbarVisibility) Option { return WithOpt(OptVisibility, v) }

// MinThumbSize is shorthand for WithOpt(OptMinThumbSize, px).
func MinThumbSize(px float32) Option { return WithOpt(OptMinThumbSize, px) }

// Logger is shorthand for WithOpt(OptLogger, &l).
func Logger(l zerolog.Logger) Option { return WithOpt(OptLogger, &l) }

// Dispatcher is shorthand for WithOpt(OptThumbDispatcher, d).
func Dispatcher(d ThumbDispatcher) Option { return WithOpt(OptThumbDispatcher, d) }
