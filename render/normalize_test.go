package render

import (
	"math"
	"slices"
	"testing"
)

func TestEqualize_Uniform(t *testing.T) {
	field := []float64{0.3, 0.9, 0.1, 0.5, 0.5, 0.0, 0.7, 0.2}
	Equalize(field)

	n := len(field)
	got := slices.Clone(field)
	slices.Sort(got)
	for i, v := range got {
		if want := float64(i) / float64(n); v != want {
			t.Errorf("sorted[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestEqualize_PreservesOrder(t *testing.T) {
	field := []float64{5, 1, 3}
	Equalize(field)
	want := []float64{2.0 / 3, 0, 1.0 / 3}
	for i := range want {
		if field[i] != want[i] {
			t.Errorf("field[%d] = %v, want %v", i, field[i], want[i])
		}
	}
}

func TestEqualize_Empty(t *testing.T) {
	var field []float64
	Equalize(field)
	if len(field) != 0 {
		t.Errorf("len = %d, want 0", len(field))
	}
}

func TestContrast(t *testing.T) {
	field := []float64{0, 0.5, 1}
	Contrast(field, DefaultContrast)
	want := []float64{0, math.Pow(0.5, 16), 1}
	for i := range want {
		if field[i] != want[i] {
			t.Errorf("field[%d] = %v, want %v", i, field[i], want[i])
		}
	}
}

func TestScale(t *testing.T) {
	field := []float64{1, 1, 1, 1}
	Scale(field, 15)
	for i, v := range field {
		if v != 1.0/15 {
			t.Errorf("field[%d] = %v, want %v", i, v, 1.0/15)
		}
	}
	if math.Abs(field[0]-0.0667) > 1e-4 {
		t.Errorf("field[0] = %v, want about 0.0667", field[0])
	}
}

func TestScale_Degenerate(t *testing.T) {
	var empty []float64
	Scale(empty, 15)
	if len(empty) != 0 {
		t.Errorf("empty field grew to %d", len(empty))
	}

	zeros := []float64{0, 0, 0}
	Scale(zeros, 15)
	for i, v := range zeros {
		if v != 0 {
			t.Errorf("zeros[%d] = %v, want 0", i, v)
		}
	}
}

func TestNormalize_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		norm Normalization
		want []float64
	}{
		{"scale", NormalizeScale, []float64{2.0 / 30, 2.0 / 30}},
		{"equalize", NormalizeEqualize, nil},
		{"none", NormalizeNone, []float64{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := []float64{2, 2}
			cfg := DefaultConfig().Apply(WithNormalization(tt.norm))
			Normalize(field, cfg)

			if tt.norm == NormalizeEqualize {
				got := slices.Clone(field)
				slices.Sort(got)
				if got[0] != 0 || got[1] != math.Pow(0.5, DefaultContrast) {
					t.Errorf("equalized = %v", field)
				}
				return
			}
			for i := range tt.want {
				if field[i] != tt.want[i] {
					t.Errorf("field[%d] = %v, want %v", i, field[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseNormalization(t *testing.T) {
	for _, n := range []Normalization{NormalizeScale, NormalizeEqualize, NormalizeNone} {
		got, err := ParseNormalization(n.String())
		if err != nil || got != n {
			t.Errorf("ParseNormalization(%q) = %v, %v; want %v", n.String(), got, err, n)
		}
	}
	if _, err := ParseNormalization("histogram"); err == nil {
		t.Error("ParseNormalization(histogram) should fail")
	}
}
