package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrPaletteInvalid is returned for control tables that break the
	// ordering or cyclic closure rules.
	ErrPaletteInvalid = errors.New("render: invalid palette")

	// ErrPaletteDomain is returned when no control pair covers a query.
	ErrPaletteDomain = errors.New("render: palette does not cover value")
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// ControlPoint pins a colour at a position of the [0,1] gradient.
type ControlPoint struct {
	Pos   float64
	Color Color
}

// Palette is a cyclic piecewise-linear gradient.
type Palette struct {
	Points []ControlPoint
}

// DefaultPalette is deep blue → sky blue → white → orange → black → deep blue.
func DefaultPalette() Palette {
	return Palette{Points: []ControlPoint{
		{Pos: 0.0, Color: Color{0, 7, 100}},
		{Pos: 0.16, Color: Color{32, 107, 203}},
		{Pos: 0.42, Color: Color{237, 255, 255}},
		{Pos: 0.6425, Color: Color{255, 170, 0}},
		{Pos: 0.8575, Color: Color{0, 2, 0}},
		{Pos: 1.0, Color: Color{0, 7, 100}},
	}}
}

// NewPalette validates points and returns the palette built on a copy of them.
func NewPalette(points []ControlPoint) (Palette, error) {
	p := Palette{Points: append([]ControlPoint(nil), points...)}
	if err := p.Validate(); err != nil {
		return Palette{}, err
	}
	return p, nil
}

// Validate checks that positions start at 0, strictly increase and end at 1,
// and that the last colour repeats the first.
func (p Palette) Validate() error {
	pts := p.Points
	if len(pts) < 2 {
		return fmt.Errorf("%w: need at least 2 control points, have %d", ErrPaletteInvalid, len(pts))
	}
	if pts[0].Pos != 0 {
		return fmt.Errorf("%w: first position %v, want 0", ErrPaletteInvalid, pts[0].Pos)
	}
	for i := 1; i < len(pts); i++ {
		if !(pts[i].Pos > pts[i-1].Pos) {
			return fmt.Errorf("%w: position %d (%v) not above %v", ErrPaletteInvalid, i, pts[i].Pos, pts[i-1].Pos)
		}
	}
	last := pts[len(pts)-1]
	if last.Pos != 1 {
		return fmt.Errorf("%w: last position %v, want 1", ErrPaletteInvalid, last.Pos)
	}
	if last.Color != pts[0].Color {
		return fmt.Errorf("%w: last colour %v does not close the cycle on %v", ErrPaletteInvalid, last.Color, pts[0].Color)
	}
	return nil
}

// ColorOf maps x onto the gradient after wrapping it into [0,1).
func (p Palette) ColorOf(x float64) (Color, error) {
	t := x - math.Floor(x)
	pts := p.Points
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if b.Pos >= t {
			k := (t - a.Pos) / (b.Pos - a.Pos)
			return Color{
				R: lerp8(a.Color.R, b.Color.R, k),
				G: lerp8(a.Color.G, b.Color.G, k),
				B: lerp8(a.Color.B, b.Color.B, k),
			}, nil
		}
	}
	return Color{}, fmt.Errorf("%w: %v", ErrPaletteDomain, x)
}

func lerp8(a, b uint8, k float64) uint8 {
	return uint8(math.Round((1-k)*float64(a) + k*float64(b)))
}

// Colorize writes the colour of every field value into dst as RGB triples.
// dst must hold 3*len(field) bytes.
func (p Palette) Colorize(dst []byte, field []float64) error {
	for i, v := range field {
		c, err := p.ColorOf(v)
		if err != nil {
			return fmt.Errorf("pixel %d: %w", i, err)
		}
		dst[3*i] = c.R
		dst[3*i+1] = c.G
		dst[3*i+2] = c.B
	}
	return nil
}

// Sample returns n colours taken at evenly spaced positions of [0,1).
func (p Palette) Sample(n int) ([]color.Color, error) {
	out := make([]color.Color, 0, n)
	for i := range n {
		c, err := p.ColorOf(float64(i) / float64(n))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// String formats p in the form accepted by ParsePalette.
func (p Palette) String() string {
	parts := make([]string, len(p.Points))
	for i, cp := range p.Points {
		hex := colorful.Color{
			R: float64(cp.Color.R) / 255,
			G: float64(cp.Color.G) / 255,
			B: float64(cp.Color.B) / 255,
		}.Hex()
		parts[i] = strconv.FormatFloat(cp.Pos, 'g', -1, 64) + ":" + hex
	}
	return strings.Join(parts, ",")
}

// ParsePalette reads a comma separated list of pos:#rrggbb entries, e.g.
// "0:#000764,0.5:#ffffff,1:#000764".
func ParsePalette(s string) (Palette, error) {
	var pts []ControlPoint
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		posStr, hex, ok := strings.Cut(entry, ":")
		if !ok {
			return Palette{}, fmt.Errorf("%w: entry %q lacks ':'", ErrPaletteInvalid, entry)
		}
		pos, err := strconv.ParseFloat(strings.TrimSpace(posStr), 64)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: position %q: %v", ErrPaletteInvalid, posStr, err)
		}
		c, err := colorful.Hex(strings.TrimSpace(hex))
		if err != nil {
			return Palette{}, fmt.Errorf("%w: colour %q: %v", ErrPaletteInvalid, hex, err)
		}
		r, g, b := c.RGB255()
		pts = append(pts, ControlPoint{Pos: pos, Color: Color{R: r, G: g, B: b}})
	}
	return NewPalette(pts)
}
