package render

import (
	"math"
)

// GaussianKernel returns a normalised 1D kernel of 2*radius+1 taps for sigma.
// A non-positive radius or sigma yields the identity kernel.
func GaussianKernel(radius int, sigma float64) []float64 {
	if radius <= 0 || sigma <= 0 {
		return []float64{1}
	}
	kernel := make([]float64, 2*radius+1)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// Blur applies a separable gaussian blur to a packed RGB buffer in place.
// Samples outside the image repeat the nearest edge pixel.
func Blur(pix []byte, width, height, radius int, sigma float64) {
	if width <= 0 || height <= 0 || radius <= 0 || sigma <= 0 {
		return
	}
	kernel := GaussianKernel(radius, sigma)
	tmp := make([]float64, len(pix))

	// Horizontal: pix -> tmp
	for y := range height {
		row := y * width
		for x := range width {
			var r, g, b float64
			for k, w := range kernel {
				sx := clampInt(x+k-radius, 0, width-1)
				idx := 3 * (row + sx)
				r += float64(pix[idx]) * w
				g += float64(pix[idx+1]) * w
				b += float64(pix[idx+2]) * w
			}
			idx := 3 * (row + x)
			tmp[idx], tmp[idx+1], tmp[idx+2] = r, g, b
		}
	}

	// Vertical: tmp -> pix
	for y := range height {
		for x := range width {
			var r, g, b float64
			for k, w := range kernel {
				sy := clampInt(y+k-radius, 0, height-1)
				idx := 3 * (sy*width + x)
				r += tmp[idx] * w
				g += tmp[idx+1] * w
				b += tmp[idx+2] * w
			}
			idx := 3 * (y*width + x)
			pix[idx] = toByte(r)
			pix[idx+1] = toByte(g)
			pix[idx+2] = toByte(b)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
