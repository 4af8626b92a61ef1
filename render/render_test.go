package render

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"negative threads", []Option{WithThreads(-1)}, ErrInvalidDimensions},
		{"zero iterations", []Option{WithMaxIter(0)}, ErrInvalidConfig},
		{"negative escape", []Option{WithEscape(-1)}, ErrInvalidConfig},
		{"empty window", []Option{WithWindow(Window{MinX: 1, MaxX: 1, MinY: 0, MaxY: 1})}, ErrInvalidConfig},
		{"zero mean scale", []Option{WithMeanScale(0)}, ErrInvalidConfig},
		{"bad palette", []Option{WithPalette(Palette{})}, ErrPaletteInvalid},
		{"unknown normalization", []Option{WithNormalization(Normalization(9))}, ErrInvalidConfig},
		{"negative supersample", []Option{WithSupersample(-2)}, ErrInvalidConfig},
		{"negative contrast", []Option{WithNormalization(NormalizeEqualize), WithContrast(-2)}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(DefaultConfig(), tt.opts...); !errors.Is(err, tt.want) {
				t.Errorf("New err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(DefaultConfig(), WithThreads(0)); err != nil {
		t.Errorf("New with zero threads: %v", err)
	}
}

func TestRender_BufferShape(t *testing.T) {
	r, err := New(DefaultConfig(), WithMaxIter(32))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pix, err := r.Render(context.Background(), complex(-0.221, -0.713), 13, 7)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(pix) != 13*7*3 {
		t.Errorf("len = %d, want %d", len(pix), 13*7*3)
	}
}

func TestRender_Deterministic(t *testing.T) {
	for _, norm := range []Normalization{NormalizeScale, NormalizeEqualize} {
		r, err := New(DefaultConfig(), WithMaxIter(64), WithNormalization(norm), WithBlur(0.4, 2))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		c := complex(0.285, 0.01)
		a, err := r.Render(context.Background(), c, 24, 18)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		b, err := r.Render(context.Background(), c, 24, 18)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%v: two renders differ", norm)
		}
	}
}

func TestRender_MatchesStages(t *testing.T) {
	r, err := New(DefaultConfig(), WithMaxIter(48), WithThreads(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	c := complex(-0.8, 0.156)
	field, err := r.Field(context.Background(), c, 10, 10)
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	Normalize(field, r.Config())
	want := make([]byte, 300)
	if err := DefaultPalette().Colorize(want, field); err != nil {
		t.Fatalf("Colorize: %v", err)
	}

	got, err := r.Render(context.Background(), c, 10, 10)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Error("Render differs from field → normalize → colorize")
	}
}

func TestRender_EmptyImage(t *testing.T) {
	r, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, size := range [][2]int{{0, 0}, {0, 10}, {10, 0}} {
		pix, err := r.Render(context.Background(), 0, size[0], size[1])
		if err != nil {
			t.Fatalf("Render(%v): %v", size, err)
		}
		if len(pix) != 0 {
			t.Errorf("Render(%v) len = %d, want 0", size, len(pix))
		}
	}
	if _, err := r.Render(context.Background(), 0, -1, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width err = %v, want ErrInvalidDimensions", err)
	}
}

func TestImage_Supersample(t *testing.T) {
	r, err := New(DefaultConfig(), WithMaxIter(32), WithSupersample(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := r.Image(context.Background(), complex(-0.4, 0.6), 12, 9)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("bounds = %v, want 12x9", b)
	}
}

func TestToRGBA(t *testing.T) {
	img := ToRGBA([]byte{1, 2, 3, 4, 5, 6}, 2, 1)
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Pix = %v, want %v", img.Pix, want)
	}
}
