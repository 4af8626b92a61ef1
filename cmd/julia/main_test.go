package main

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	julia "github.com/marben/dist_julia"
)

func TestReadParam(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"(0.285,0.01)", complex(0.285, 0.01)},
		{"rabbit", julia.Rabbit},
		{"-0.8+0.156i\n", complex(-0.8, 0.156)},
	}
	for _, tt := range tests {
		got, err := readParam(strings.NewReader(""), tt.in)
		if err != nil {
			t.Errorf("readParam(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readParam(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := readParam(strings.NewReader(""), "not a number"); !errors.Is(err, julia.ErrParam) {
		t.Errorf("readParam(garbage) error = %v, want ErrParam", err)
	}
}

func TestReadParam_Stdin(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"(0.285,0.01)\n", complex(0.285, 0.01)},
		{"dragon", julia.Dragon},
		{"\n", julia.Default},
		{"", julia.Default},
	}
	for _, tt := range tests {
		got, err := readParam(strings.NewReader(tt.in), "")
		if err != nil {
			t.Errorf("readParam(stdin %q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("readParam(stdin %q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReadParam_ReadError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	if _, err := readParam(iotest.ErrReader(errBroken), ""); !errors.Is(err, errBroken) {
		t.Errorf("readParam error = %v, want %v", err, errBroken)
	}
}
