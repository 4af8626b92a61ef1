package julia

import (
	"fmt"
	"sort"
	"strings"
)

// Default is the parameter rendered when none is given.
const Default = complex(-0.221, -0.713)

// Classic parameters / landmarks of the Julia family z² + c
var (
	// Douady rabbit: three-lobed basins around a period-3 cycle
	Rabbit = complex(-0.123, 0.745)

	// Dendrite: connected tree with no interior, c = i
	Dendrite = complex(0, 1)

	// San Marco: the basilica, real axis symmetric
	SanMarco = complex(-0.75, 0)

	// Siegel disk: rotation domain around an irrationally indifferent point
	SiegelDisk = complex(-0.390541, -0.586788)

	// Dragon: spiralling filaments near the main cardioid
	Dragon = complex(-0.8, 0.156)

	// Dust: disconnected Cantor dust just outside the Mandelbrot set
	Dust = complex(0.285, 0.01)
)

var presets = map[string]complex128{
	"default":  Default,
	"rabbit":   Rabbit,
	"dendrite": Dendrite,
	"sanmarco": SanMarco,
	"siegel":   SiegelDisk,
	"dragon":   Dragon,
	"dust":     Dust,
}

// Preset looks up a named parameter, case-insensitively.
func Preset(name string) (complex128, bool) {
	c, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// PresetNames lists the known preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FileName formats c the way rendered images are named, e.g.
// "-0.221000-0.713000j.png".
func FileName(c complex128, ext string) string {
	sign := func(v float64) string {
		if v >= 0 {
			return "+"
		}
		return ""
	}
	return fmt.Sprintf("%s%f%s%fj%s", sign(real(c)), real(c), sign(imag(c)), imag(c), ext)
}
