// Package config loads render settings from a JSON, YAML or TOML file.
// Keys left out of the file keep the values of the Config they are applied to.
package config

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/conf"

	"github.com/marben/dist_julia/render"
)

// File is the on-disk form of render.Config and render.Animation.
// Keys for which zero is a meaningful setting are pointers, so that
// "blur": 0 turns the blur off instead of reading as absent.
type File struct {
	Threads       int      `json:"threads,optional"`
	MaxIter       int      `json:"maxIter,optional"`
	Mode          string   `json:"mode,optional"`
	Escape        *float64 `json:"escape,optional"`
	Normalization string   `json:"normalization,optional"`
	Contrast      *float64 `json:"contrast,optional"`
	MeanScale     float64  `json:"meanScale,optional"`
	Palette       string   `json:"palette,optional"`
	Blur          *float64 `json:"blur,optional"`
	BlurRadius    *int     `json:"blurRadius,optional"`
	Supersample   int      `json:"supersample,optional"`

	Window *Window `json:"window,optional"`

	Animation *Animation `json:"animation,optional"`
}

// Window overrides the complex plane window.
type Window struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// Animation overrides the parameter sweep.
type Animation struct {
	Frames int     `json:"frames,optional"`
	Radius float64 `json:"radius,optional"`
	Size   int     `json:"size,optional"`
	FPS    float64 `json:"fps,optional"`
}

// Load reads path; the format follows the file extension.
func Load(path string) (File, error) {
	var f File
	if err := conf.Load(path, &f); err != nil {
		return File{}, fmt.Errorf("config.Load %q: %w", path, err)
	}
	return f, nil
}

// Apply returns cfg with every key set in f overridden.
func (f File) Apply(cfg render.Config) (render.Config, error) {
	if f.Threads != 0 {
		cfg.Threads = f.Threads
	}
	if f.MaxIter != 0 {
		cfg.MaxIter = f.MaxIter
	}
	if f.Mode != "" {
		m, err := render.ParseMode(f.Mode)
		if err != nil {
			return cfg, err
		}
		cfg.Mode = m
	}
	if f.Escape != nil {
		cfg.Escape = *f.Escape
	}
	if f.Normalization != "" {
		n, err := render.ParseNormalization(f.Normalization)
		if err != nil {
			return cfg, err
		}
		cfg.Normalization = n
	}
	if f.Contrast != nil {
		cfg.Contrast = *f.Contrast
	}
	if f.MeanScale != 0 {
		cfg.MeanScale = f.MeanScale
	}
	if f.Palette != "" {
		p, err := render.ParsePalette(f.Palette)
		if err != nil {
			return cfg, err
		}
		cfg.Palette = p
	}
	if f.Blur != nil {
		cfg.Blur = *f.Blur
	}
	if f.BlurRadius != nil {
		cfg.BlurRadius = *f.BlurRadius
	}
	if f.Supersample != 0 {
		cfg.Supersample = f.Supersample
	}
	if f.Window != nil {
		cfg.Window = render.Window{MinX: f.Window.MinX, MaxX: f.Window.MaxX, MinY: f.Window.MinY, MaxY: f.Window.MaxY}
	}
	return cfg, nil
}

// ApplyAnimation returns a with every animation key set in f overridden.
func (f File) ApplyAnimation(a render.Animation) render.Animation {
	if f.Animation == nil {
		return a
	}
	if f.Animation.Frames != 0 {
		a.Frames = f.Animation.Frames
	}
	if f.Animation.Radius != 0 {
		a.Radius = f.Animation.Radius
	}
	if f.Animation.Size != 0 {
		a.Width, a.Height = f.Animation.Size, f.Animation.Size
	}
	if f.Animation.FPS != 0 {
		a.FPS = f.Animation.FPS
	}
	return a
}
