// julia renders a single Julia set image to a PNG file.
// The parameter c of f(z) = z² + c is read from -c, or from stdin when -c is empty.

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/config"
	"github.com/marben/dist_julia/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	var (
		param   = flag.String("c", "", "complex parameter: (re,im), re+imi or a preset name")
		width   = flag.Int("width", render.DefaultWidth, "image width")
		height  = flag.Int("height", render.DefaultHeight, "image height")
		outDir  = flag.String("out", "output", "output directory")
		open    = flag.Bool("open", false, "open the image when done")
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

	c, err := readParam(os.Stdin, *param)
	if err != nil {
		return err
	}

	log.Printf("Computing the Julia set for f(z) = z^2 + c; c = %v", c)
	start := time.Now()
	img, err := r.Image(context.Background(), c, *width, *height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("Finished generating image, took %dms.", time.Since(start).Milliseconds())

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	filename := filepath.Join(*outDir, julia.FileName(c, ".png"))
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	log.Printf("Image saved to %q", filename)

	if *open {
		if err := openFile(filename); err != nil {
			log.Printf("open %q: %v", filename, err)
		}
	}
	return nil
}

// readParam parses s, or prompts for a parameter on in when s is empty.
func readParam(in io.Reader, s string) (complex128, error) {
	if s == "" {
		fmt.Print("Computing the Julia set for f(z) = z^2 + c; c = ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read parameter: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return julia.Default, nil
		}
		s = line
	}
	return julia.ParseParam(s)
}

// openFile hands path to the platform's default viewer.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
