package render

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/image/draw"
)

// Renderer runs the field → normalise → palette pipeline for one validated
// Config. A Renderer holds no mutable state and may be shared by goroutines.
type Renderer struct {
	cfg Config
}

// New validates cfg with opts applied and returns a Renderer for it.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	cfg = cfg.Apply(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{cfg: cfg}, nil
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.cfg }

func checkSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Field computes the raw scalar field of c, row-major, width*height values.
func (r *Renderer) Field(ctx context.Context, c complex128, width, height int) ([]float64, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return computeBands(ctx, c, width, height, r.cfg)
}

// Render returns the colour image of c as packed RGB bytes, row-major,
// width*height*3 long.
func (r *Renderer) Render(ctx context.Context, c complex128, width, height int) ([]byte, error) {
	start := time.Now()

	field, err := r.Field(ctx, c, width, height)
	if err != nil {
		return nil, err
	}
	Normalize(field, r.cfg)

	pix := make([]byte, 3*len(field))
	if err := r.cfg.Palette.Colorize(pix, field); err != nil {
		return nil, fmt.Errorf("colorize: %w", err)
	}
	if r.cfg.Blur > 0 {
		Blur(pix, width, height, r.cfg.BlurRadius, r.cfg.Blur)
	}

	Logger().Info("rendered",
		"c", c, "width", width, "height", height,
		"normalization", r.cfg.Normalization, "elapsed", time.Since(start))
	return pix, nil
}

// Image renders c into an RGBA image of width×height. With Supersample k > 1
// the pipeline runs at k times the size and the result is downscaled.
func (r *Renderer) Image(ctx context.Context, c complex128, width, height int) (*image.RGBA, error) {
	k := max(r.cfg.Supersample, 1)
	pix, err := r.Render(ctx, c, width*k, height*k)
	if err != nil {
		return nil, err
	}
	img := ToRGBA(pix, width*k, height*k)
	if k == 1 {
		return img, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

// ToRGBA wraps a packed RGB buffer into an opaque RGBA image.
func ToRGBA(pix []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, o := 0, 0; i+2 < len(pix) && o+3 < len(img.Pix); i, o = i+3, o+4 {
		img.Pix[o] = pix[i]
		img.Pix[o+1] = pix[i+1]
		img.Pix[o+2] = pix[i+2]
		img.Pix[o+3] = 0xff
	}
	return img
}
