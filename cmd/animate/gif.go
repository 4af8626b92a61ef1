package main

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/marben/dist_julia/render"
)

// gifEncoder collects frames as paletted images for image/gif.
type gifEncoder struct {
	palette color.Palette
	anim    gif.GIF
}

func newGIFEncoder(p []color.Color) *gifEncoder {
	return &gifEncoder{palette: color.Palette(p)}
}

// add quantises f onto the encoder palette with Floyd–Steinberg dithering.
func (e *gifEncoder) add(f render.Frame) {
	src := render.ToRGBA(f.Pix, f.Width, f.Height)
	dst := image.NewPaletted(src.Bounds(), e.palette)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, image.Point{})

	e.anim.Image = append(e.anim.Image, dst)
	e.anim.Delay = append(e.anim.Delay, f.Delay)
}

func (e *gifEncoder) encode(w io.Writer) error {
	return gif.EncodeAll(w, &e.anim)
}
