// animate renders one revolution of the Julia parameter around the origin
// and saves it as an animated GIF.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/marben/dist_julia/config"
	"github.com/marben/dist_julia/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	def := render.DefaultAnimation()
	var (
		frames  = flag.Int("frames", def.Frames, "number of frames in one revolution")
		radius  = flag.Float64("radius", def.Radius, "modulus of c")
		size    = flag.Int("size", def.Width, "frame width and height")
		fps     = flag.Float64("fps", def.FPS, "frames per second")
		output  = flag.String("out", "output/animation.gif", "output file")
		verbose = flag.Bool("v", false, "verbose render logging")

		renderFlags = config.RegisterFlags(flag.CommandLine, 0.4)
	)
	flag.Parse()

	if *verbose {
		render.SetLogger(slog.Default())
	}

	cfg, err := renderFlags.Config()
	if err != nil {
		return err
	}
	r, err := render.New(cfg)
	if err != nil {
		return fmt.Errorf("render.New: %w", err)
	}

	file, err := renderFlags.File()
	if err != nil {
		return err
	}
	anim := file.ApplyAnimation(def)
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frames":
			anim.Frames = *frames
		case "radius":
			anim.Radius = *radius
		case "size":
			anim.Width, anim.Height = *size, *size
		case "fps":
			anim.FPS = *fps
		}
	})

	gifPalette, err := cfg.Palette.Sample(256)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	enc := newGIFEncoder(gifPalette)

	start := time.Now()
	err = render.Sweep(context.Background(), r, anim, func(f render.Frame) error {
		log.Printf("Currently on frame %d/%d...", f.Index+1, anim.Frames)
		enc.add(f)
		return nil
	})
	if err != nil {
		return fmt.Errorf("animation: %w", err)
	}
	log.Printf("Finished generating animation, took %dms.", time.Since(start).Milliseconds())

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	out, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := enc.encode(out); err != nil {
		return fmt.Errorf("failed to encode GIF: %w", err)
	}
	log.Printf("Animation saved to %q", *output)
	return nil
}
