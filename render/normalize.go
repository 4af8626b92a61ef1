package render

import (
	"math"
	"sort"
)

// Normalize applies the strategy selected by cfg to field in place.
func Normalize(field []float64, cfg Config) {
	switch cfg.Normalization {
	case NormalizeEqualize:
		Equalize(field)
		Contrast(field, cfg.Contrast)
	case NormalizeScale:
		Scale(field, cfg.MeanScale)
	case NormalizeNone:
	}
}

// Equalize replaces every value by its rank divided by len(field), so the
// result is exactly {0, 1/N, ..., (N-1)/N}. Ties are ranked in no particular
// order.
func Equalize(field []float64) {
	n := len(field)
	if n == 0 {
		return
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return field[order[a]] < field[order[b]]
	})
	for rank, idx := range order {
		field[idx] = float64(rank) / float64(n)
	}
}

// Contrast raises every value to exp.
func Contrast(field []float64, exp float64) {
	for i, v := range field {
		field[i] = math.Pow(v, exp)
	}
}

// Scale divides every value by mean*k. Empty fields and fields whose mean is
// zero or not finite are left unchanged.
func Scale(field []float64, k float64) {
	if len(field) == 0 {
		return
	}
	sum := 0.0
	for _, v := range field {
		sum += v
	}
	mean := sum / float64(len(field))
	div := mean * k
	if div == 0 || math.IsNaN(div) || math.IsInf(div, 0) {
		Logger().Debug("scale skipped", "mean", mean, "k", k)
		return
	}
	for i := range field {
		field[i] /= div
	}
}
