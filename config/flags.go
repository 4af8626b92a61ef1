package config

import (
	"flag"

	"github.com/marben/dist_julia/render"
)

// Flags are the render flags shared by the commands.
type Flags struct {
	fs *flag.FlagSet

	path        *string
	maxIter     *int
	threads     *int
	norm        *string
	mode        *string
	blur        *float64
	supersample *int
	palette     *string
}

// RegisterFlags defines the render flags on fs. blur is the default sigma of
// the gaussian post-process.
func RegisterFlags(fs *flag.FlagSet, blur float64) *Flags {
	return &Flags{
		fs:          fs,
		path:        fs.String("config", "", "optional config file (json, yaml or toml)"),
		maxIter:     fs.Int("iter", render.DefaultMaxIter, "maximum iterations per pixel"),
		threads:     fs.Int("threads", render.DefaultThreads, "parallel row bands"),
		norm:        fs.String("norm", "scale", "normalization: scale, equalize or none"),
		mode:        fs.String("mode", "smooth", "escape values: smooth or discrete"),
		blur:        fs.Float64("blur", blur, "gaussian blur sigma, 0 disables"),
		supersample: fs.Int("ss", 1, "supersampling factor"),
		palette:     fs.String("palette", "", "control points, e.g. 0:#000764,0.5:#ffffff,1:#000764"),
	}
}

// File loads the -config file, or returns an empty File when none is given.
func (f *Flags) File() (File, error) {
	if *f.path == "" {
		return File{}, nil
	}
	return Load(*f.path)
}

// Config layers explicitly set flags over the config file over the defaults.
func (f *Flags) Config() (render.Config, error) {
	cfg := render.DefaultConfig()
	cfg.Blur = *f.blur

	file, err := f.File()
	if err != nil {
		return cfg, err
	}
	if cfg, err = file.Apply(cfg); err != nil {
		return cfg, err
	}

	f.fs.Visit(func(fl *flag.Flag) {
		if err != nil {
			return
		}
		switch fl.Name {
		case "iter":
			cfg.MaxIter = *f.maxIter
		case "threads":
			cfg.Threads = *f.threads
		case "norm":
			cfg.Normalization, err = render.ParseNormalization(*f.norm)
		case "mode":
			cfg.Mode, err = render.ParseMode(*f.mode)
		case "blur":
			cfg.Blur = *f.blur
		case "ss":
			cfg.Supersample = *f.supersample
		case "palette":
			cfg.Palette, err = render.ParsePalette(*f.palette)
		}
	})
	return cfg, err
}
