package render

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidDimensions is returned for negative width, height or thread count.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrInvalidConfig is returned when a Config field is out of range.
	ErrInvalidConfig = errors.New("render: invalid config")
)

// Defaults of the original renderer.
const (
	DefaultWidth       = 3000
	DefaultHeight      = 3000
	DefaultThreads     = 4
	DefaultMaxIter     = 256
	DefaultContrast    = 16.0
	DefaultMeanScale   = 15.0
	DefaultBlurRadius  = 2
	SmoothEscape       = 30.0
	DiscreteEscape     = 2.0
	defaultSupersample = 1
)

// Mode selects how a pixel's escape behaviour becomes a scalar.
type Mode int

const (
	// ModeSmooth accumulates exp(-|z|²) over the orbit.
	ModeSmooth Mode = iota
	// ModeDiscrete counts iterations before escape.
	ModeDiscrete
)

func (m Mode) String() string {
	switch m {
	case ModeSmooth:
		return "smooth"
	case ModeDiscrete:
		return "discrete"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smooth", "":
		return ModeSmooth, nil
	case "discrete":
		return ModeDiscrete, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// defaultEscape is the escape threshold on |z|² used when Config.Escape is zero.
func (m Mode) defaultEscape() float64 {
	if m == ModeDiscrete {
		return DiscreteEscape
	}
	return SmoothEscape
}

// Normalization is the closed set of strategies applied to a raw field.
type Normalization int

const (
	// NormalizeScale divides every value by mean*MeanScale.
	NormalizeScale Normalization = iota
	// NormalizeEqualize replaces values by rank/N raised to Contrast.
	NormalizeEqualize
	// NormalizeNone leaves the raw field untouched.
	NormalizeNone
)

func (n Normalization) String() string {
	switch n {
	case NormalizeScale:
		return "scale"
	case NormalizeEqualize:
		return "equalize"
	case NormalizeNone:
		return "none"
	}
	return fmt.Sprintf("Normalization(%d)", int(n))
}

// ParseNormalization is the inverse of Normalization.String.
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scale", "":
		return NormalizeScale, nil
	case "equalize", "equalise":
		return NormalizeEqualize, nil
	case "none":
		return NormalizeNone, nil
	}
	return 0, fmt.Errorf("%w: unknown normalization %q", ErrInvalidConfig, s)
}

// Window is the region of the complex plane mapped onto the image.
// Row 0 sits at MaxY and column 0 at MinX.
type Window struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultWindow is the square [-1.5,1.5]×[-1.5,1.5].
var DefaultWindow = Window{MinX: -1.5, MaxX: 1.5, MinY: -1.5, MaxY: 1.5}

func (w Window) valid() bool {
	for _, v := range []float64{w.MinX, w.MaxX, w.MinY, w.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return w.MaxX > w.MinX && w.MaxY > w.MinY
}

// Config holds every tunable of the pipeline. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	Window Window
	Mode   Mode

	// MaxIter bounds the orbit length per pixel.
	MaxIter int

	// Escape is the threshold on |z|². Zero picks the mode's default.
	Escape float64

	// Threads is the number of row bands computed in parallel. Zero picks DefaultThreads.
	Threads int

	Normalization Normalization
	Contrast      float64
	MeanScale     float64

	Palette Palette

	// Blur is the gaussian sigma applied to the coloured image. Zero disables it.
	Blur       float64
	BlurRadius int

	// Supersample renders Image at k times the size and downscales.
	Supersample int
}

// DefaultConfig returns the configuration of the original renderer, without blur.
func DefaultConfig() Config {
	return Config{
		Window:        DefaultWindow,
		Mode:          ModeSmooth,
		MaxIter:       DefaultMaxIter,
		Threads:       DefaultThreads,
		Normalization: NormalizeScale,
		Contrast:      DefaultContrast,
		MeanScale:     DefaultMeanScale,
		Palette:       DefaultPalette(),
		BlurRadius:    DefaultBlurRadius,
		Supersample:   defaultSupersample,
	}
}

// Option overrides a single Config field.
type Option func(*Config)

// WithThreads sets the number of parallel row bands.
func WithThreads(n int) Option { return func(c *Config) { c.Threads = n } }

// WithMaxIter sets the orbit length bound.
func WithMaxIter(n int) Option { return func(c *Config) { c.MaxIter = n } }

// WithMode selects smooth or discrete escape values.
func WithMode(m Mode) Option { return func(c *Config) { c.Mode = m } }

// WithEscape sets the threshold on |z|².
func WithEscape(v float64) Option { return func(c *Config) { c.Escape = v } }

// WithNormalization selects the normalisation strategy.
func WithNormalization(n Normalization) Option { return func(c *Config) { c.Normalization = n } }

// WithContrast sets the exponent applied after equalisation.
func WithContrast(v float64) Option { return func(c *Config) { c.Contrast = v } }

// WithMeanScale sets the constant k of mean-relative scaling.
func WithMeanScale(v float64) Option { return func(c *Config) { c.MeanScale = v } }

// WithWindow sets the complex plane window.
func WithWindow(w Window) Option { return func(c *Config) { c.Window = w } }

// WithPalette replaces the control-point table.
func WithPalette(p Palette) Option { return func(c *Config) { c.Palette = p } }

// WithBlur enables the gaussian post-process.
func WithBlur(sigma float64, radius int) Option {
	return func(c *Config) {
		c.Blur = sigma
		c.BlurRadius = radius
	}
}

// WithSupersample sets the supersampling factor used by Renderer.Image.
func WithSupersample(k int) Option { return func(c *Config) { c.Supersample = k } }

// Apply returns a copy of c with opts applied.
func (c Config) Apply(opts ...Option) Config {
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c Config) escape() float64 {
	if c.Escape > 0 {
		return c.Escape
	}
	return c.Mode.defaultEscape()
}

func (c Config) threads() int {
	if c.Threads == 0 {
		return DefaultThreads
	}
	return c.Threads
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Threads < 0:
		return fmt.Errorf("%w: threads %d", ErrInvalidDimensions, c.Threads)
	case c.MaxIter <= 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIter)
	case c.Escape < 0 || math.IsNaN(c.Escape):
		return fmt.Errorf("%w: escape threshold %v", ErrInvalidConfig, c.Escape)
	case !c.Window.valid():
		return fmt.Errorf("%w: window %+v", ErrInvalidConfig, c.Window)
	case c.Mode != ModeSmooth && c.Mode != ModeDiscrete:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Mode)
	case c.Blur < 0 || c.BlurRadius < 0:
		return fmt.Errorf("%w: blur %v radius %d", ErrInvalidConfig, c.Blur, c.BlurRadius)
	case c.Supersample < 0:
		return fmt.Errorf("%w: supersample %d", ErrInvalidConfig, c.Supersample)
	}

	switch c.Normalization {
	case NormalizeScale:
		if c.MeanScale == 0 || math.IsNaN(c.MeanScale) || math.IsInf(c.MeanScale, 0) {
			return fmt.Errorf("%w: mean scale %v", ErrInvalidConfig, c.MeanScale)
		}
	case NormalizeEqualize:
		if c.Contrast < 0 || math.IsNaN(c.Contrast) || math.IsInf(c.Contrast, 0) {
			return fmt.Errorf("%w: contrast %v", ErrInvalidConfig, c.Contrast)
		}
	case NormalizeNone:
	default:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Normalization)
	}

	if err := c.Palette.Validate(); err != nil {
		return err
	}
	return nil
}
