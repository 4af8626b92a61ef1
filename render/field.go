package render

import (
	"math"
)

// ComputeField returns the escape values of rows [rowBegin, rowEnd) of a
// width×height image, row-major, (rowEnd-rowBegin)*width entries.
// Values lie in [0,1].
func ComputeField(c complex128, width, height, rowBegin, rowEnd int, cfg Config) []float64 {
	if width <= 0 || height <= 0 || rowEnd <= rowBegin {
		return []float64{}
	}

	maxIter := cfg.MaxIter
	escape := cfg.escape()
	win := cfg.Window
	spanX := win.MaxX - win.MinX
	spanY := win.MaxY - win.MinY

	pix := make([]float64, 0, (rowEnd-rowBegin)*width)
	for i := rowBegin; i < rowEnd; i++ {
		y := win.MaxY - spanY*float64(i)/float64(height)
		for j := 0; j < width; j++ {
			x := win.MinX + spanX*float64(j)/float64(width)

			var v float64
			if cfg.Mode == ModeDiscrete {
				v = escapeCount(complex(x, y), c, maxIter, escape)
			} else {
				v = smoothEscape(complex(x, y), c, maxIter, escape)
			}
			pix = append(pix, v)
		}
	}
	return pix
}

// smoothEscape accumulates exp(-|z|²) along the orbit of z.
func smoothEscape(z, c complex128, maxIter int, escape float64) float64 {
	smooth := 0.0
	for iter := 0; iter < maxIter; iter++ {
		norm := real(z)*real(z) + imag(z)*imag(z)
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			break
		}
		smooth += math.Exp(-norm)
		if norm > escape {
			break
		}
		z = z*z + c
	}
	return clampUnit(smooth / float64(maxIter))
}

// escapeCount is the number of iterations spent before |z|² exceeds escape.
func escapeCount(z, c complex128, maxIter int, escape float64) float64 {
	iter := 0
	for ; iter < maxIter; iter++ {
		norm := real(z)*real(z) + imag(z)*imag(z)
		if !(norm <= escape) {
			break
		}
		z = z*z + c
	}
	return float64(iter) / float64(maxIter)
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
