// framegrab is a CLI client for the Julia frame server.
// It requests an animation sweep over websocket and saves every streamed frame as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"

	julia "github.com/marben/dist_julia"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting frame grabber...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run() error {
	def := julia.DefaultAnimationRequest()
	var (
		addr   = flag.String("addr", "ws://localhost:8080/ws", "server websocket url")
		frames = flag.Int("frames", 36, "number of frames")
		radius = flag.Float64("radius", def.Radius, "modulus of c")
		size   = flag.Int("size", 256, "frame width and height")
		fps    = flag.Float64("fps", def.FPS, "frames per second")
		norm   = flag.String("norm", "", "normalization override: scale, equalize or none")
		outDir = flag.String("out", "output/frames", "output directory")
	)
	flag.Parse()

	req := julia.AnimationRequest{
		Frames:        *frames,
		Radius:        *radius,
		Size:          *size,
		FPS:           *fps,
		Normalization: *norm,
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	n, err := grab(context.Background(), *addr, req, func(h julia.FrameHeader, img []byte) error {
		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.png", h.Index))
		log.Printf("Saving frame %d/%d (c = %v) to %q", h.Index+1, h.Total, complex(h.Re, h.Im), filename)
		return os.WriteFile(filename, img, 0o644)
	})
	if err != nil {
		return err
	}
	log.Printf("Saved %d frames to %q", n, *outDir)
	return nil
}

// grab connects to addr, sends req and hands each header and PNG pair to fn.
// It returns the number of frames received before the server closed normally.
func grab(ctx context.Context, addr string, req julia.AnimationRequest, fn func(julia.FrameHeader, []byte) error) (int, error) {
	// Step 1: Connect to the server
	log.Printf("Connecting to Julia server at %s...", addr)
	c, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer c.CloseNow()
	c.SetReadLimit(32 << 20)

	// Step 2: Send the animation request
	data, err := sonic.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("encode request: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageText, data); err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}

	// Step 3: Receive header / image pairs until the server closes
	count := 0
	for {
		typ, data, err := c.Read(ctx)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("read header: %w", err)
		}
		if typ != websocket.MessageText {
			return count, fmt.Errorf("expected frame header, got %v", typ)
		}
		var h julia.FrameHeader
		if err := sonic.Unmarshal(data, &h); err != nil {
			return count, fmt.Errorf("decode header: %w", err)
		}

		typ, img, err := c.Read(ctx)
		if err != nil {
			return count, fmt.Errorf("read frame %d: %w", h.Index, err)
		}
		if typ != websocket.MessageBinary {
			return count, fmt.Errorf("expected frame %d image, got %v", h.Index, typ)
		}
		if err := fn(h, img); err != nil {
			return count, err
		}
		count++
	}
}
