package render

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"
	"time"
)

// Animation defaults of the original renderer.
const (
	DefaultFrames      = 360
	DefaultRadius      = 0.8785
	DefaultFrameWidth  = 512
	DefaultFrameHeight = 512
	DefaultFPS         = 20.0
)

// Animation describes one revolution of c around the origin.
type Animation struct {
	Frames int
	Radius float64
	Width  int
	Height int
	FPS    float64
}

// DefaultAnimation returns the sweep of the original renderer.
func DefaultAnimation() Animation {
	return Animation{
		Frames: DefaultFrames,
		Radius: DefaultRadius,
		Width:  DefaultFrameWidth,
		Height: DefaultFrameHeight,
		FPS:    DefaultFPS,
	}
}

// Validate reports the first invalid field.
func (a Animation) Validate() error {
	switch {
	case a.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalidDimensions, a.Frames)
	case a.Width < 0 || a.Height < 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidDimensions, a.Width, a.Height)
	case !(a.FPS > 0) || math.IsInf(a.FPS, 0):
		return fmt.Errorf("%w: fps %v", ErrInvalidConfig, a.FPS)
	case math.IsNaN(a.Radius) || math.IsInf(a.Radius, 0):
		return fmt.Errorf("%w: radius %v", ErrInvalidConfig, a.Radius)
	}
	return nil
}

// Delay is the per-frame display time in centiseconds.
func (a Animation) Delay() int {
	return int(100 / a.FPS)
}

// Frame is one rendered image of an animation.
type Frame struct {
	Index  int
	C      complex128
	Width  int
	Height int
	Pix    []byte // packed RGB
	Delay  int    // centiseconds
}

// Params returns the parameters of a sweep: frame f sits at angle 2πf/n on
// the circle of the given radius.
func Params(n int, radius float64) []complex128 {
	if n <= 0 {
		return nil
	}
	out := make([]complex128, n)
	for f := range n {
		angle := 2 * math.Pi * float64(f) / float64(n)
		out[f] = cmplx.Rect(radius, angle)
	}
	return out
}

// PixelRenderer produces packed RGB images. *Renderer is the canonical
// implementation; wrappers may add caching or deduplication.
type PixelRenderer interface {
	Render(ctx context.Context, c complex128, width, height int) ([]byte, error)
}

var _ PixelRenderer = (*Renderer)(nil)

// Sweep renders the frames of a in index order and hands each one to fn.
// The first error, from rendering or from fn, stops the sweep.
func Sweep(ctx context.Context, r PixelRenderer, a Animation, fn func(Frame) error) error {
	if err := a.Validate(); err != nil {
		return err
	}
	start := time.Now()
	delay := a.Delay()
	for f, c := range Params(a.Frames, a.Radius) {
		if err := ctx.Err(); err != nil {
			return err
		}
		frameStart := time.Now()
		pix, err := r.Render(ctx, c, a.Width, a.Height)
		if err != nil {
			return fmt.Errorf("frame %d/%d: %w", f+1, a.Frames, err)
		}
		Logger().Debug("frame rendered", "frame", f+1, "of", a.Frames, "elapsed", time.Since(frameStart))

		err = fn(Frame{
			Index:  f,
			C:      c,
			Width:  a.Width,
			Height: a.Height,
			Pix:    pix,
			Delay:  delay,
		})
		if err != nil {
			return fmt.Errorf("frame %d/%d: %w", f+1, a.Frames, err)
		}
	}
	Logger().Info("animation rendered", "frames", a.Frames, "elapsed", time.Since(start))
	return nil
}

// GenerateFrames renders the whole sweep and returns the frames in order.
func GenerateFrames(ctx context.Context, r PixelRenderer, a Animation) ([]Frame, error) {
	frames := make([]Frame, 0, max(a.Frames, 0))
	err := Sweep(ctx, r, a, func(f Frame) error {
		frames = append(frames, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return frames, nil
}
