package render

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestParams_QuarterTurns(t *testing.T) {
	got := Params(4, 1.0)
	want := []complex128{1, 1i, -1, -1i}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(real(got[i])-real(want[i])) > 1e-12 || math.Abs(imag(got[i])-imag(want[i])) > 1e-12 {
			t.Errorf("Params(4, 1)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParams_Radius(t *testing.T) {
	for i, c := range Params(7, DefaultRadius) {
		if r := math.Hypot(real(c), imag(c)); math.Abs(r-DefaultRadius) > 1e-12 {
			t.Errorf("Params[%d] modulus = %v, want %v", i, r, DefaultRadius)
		}
	}
	if p := Params(0, 1); p != nil {
		t.Errorf("Params(0, 1) = %v, want nil", p)
	}
}

func TestGenerateFrames_Order(t *testing.T) {
	r, err := New(DefaultConfig(), WithMaxIter(16))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := Animation{Frames: 4, Radius: 1.0, Width: 6, Height: 5, FPS: 20}
	frames, err := GenerateFrames(context.Background(), r, a)
	if err != nil {
		t.Fatalf("GenerateFrames: %v", err)
	}
	if len(frames) != 4 {
		t.Fatalf("len = %d, want 4", len(frames))
	}
	params := Params(4, 1.0)
	for i, f := range frames {
		if f.Index != i {
			t.Errorf("frames[%d].Index = %d", i, f.Index)
		}
		if f.C != params[i] {
			t.Errorf("frames[%d].C = %v, want %v", i, f.C, params[i])
		}
		if f.Delay != 5 {
			t.Errorf("frames[%d].Delay = %d, want 5", i, f.Delay)
		}
		if len(f.Pix) != 6*5*3 {
			t.Errorf("frames[%d] len = %d, want %d", i, len(f.Pix), 6*5*3)
		}
	}
}

func TestAnimation_Delay(t *testing.T) {
	tests := []struct {
		fps  float64
		want int
	}{
		{20, 5},
		{10, 10},
		{30, 3},
		{100, 1},
	}
	for _, tt := range tests {
		if got := (Animation{FPS: tt.fps}).Delay(); got != tt.want {
			t.Errorf("Delay(fps=%v) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestSweep_AbortsOnFailure(t *testing.T) {
	// A renderer built around validation: the palette leaves (0.5, 1) uncovered.
	r := &Renderer{cfg: DefaultConfig().Apply(
		WithMaxIter(16),
		WithNormalization(NormalizeNone),
		WithPalette(Palette{Points: []ControlPoint{{0, Color{}}, {1e-9, Color{}}}}),
	)}
	calls := 0
	err := Sweep(context.Background(), r, Animation{Frames: 3, Radius: 0.5, Width: 4, Height: 4, FPS: 10},
		func(Frame) error {
			calls++
			return nil
		})
	if !errors.Is(err, ErrPaletteDomain) {
		t.Fatalf("Sweep err = %v, want ErrPaletteDomain", err)
	}
	if calls != 0 {
		t.Errorf("callback ran %d times, want 0", calls)
	}
}

func TestSweep_CallbackErrorStops(t *testing.T) {
	r, err := New(DefaultConfig(), WithMaxIter(8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	stop := errors.New("stop")
	calls := 0
	err = Sweep(context.Background(), r, Animation{Frames: 5, Radius: 0.7, Width: 3, Height: 3, FPS: 20},
		func(Frame) error {
			calls++
			if calls == 2 {
				return stop
			}
			return nil
		})
	if !errors.Is(err, stop) {
		t.Errorf("Sweep err = %v, want %v", err, stop)
	}
	if calls != 2 {
		t.Errorf("callback ran %d times, want 2", calls)
	}
}

func TestAnimation_Validate(t *testing.T) {
	bad := []Animation{
		{Frames: -1, FPS: 20},
		{Frames: 1, Width: -1, FPS: 20},
		{Frames: 1, FPS: 0},
		{Frames: 1, FPS: 20, Radius: math.NaN()},
	}
	for _, a := range bad {
		if err := a.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", a)
		}
	}
	if err := DefaultAnimation().Validate(); err != nil {
		t.Errorf("DefaultAnimation().Validate() = %v", err)
	}
}
