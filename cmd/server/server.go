package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/gops/agent"

	"github.com/marben/dist_julia/config"
	"github.com/marben/dist_julia/render"
)

// main is the entry point for the Julia frame server.
// Browsers load ./static and stream frames over /ws; cmd/framegrab does the same from the command line.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		port    = flag.Int("port", 8080, "http and websocket port")
		gops    = flag.Bool("gops", true, "start the gops diagnostics agent")
		verbose = flag.Bool("v", false, "verbose render logging")

		renderFlags = config.RegisterFlags(flag.CommandLine, 0.4)
	)
	flag.Parse()

	if *verbose {
		render.SetLogger(slog.Default())
	}

	if *gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("gops agent: %w", err)
		}
		defer agent.Close()
	}

	cfg, err := renderFlags.Config()
	if err != nil {
		return err
	}

	// frameStreamer renders animation sweeps on request and shares frames
	// between clients asking for the same parameters at the same time
	streamer, err := newFrameStreamer(cfg)
	if err != nil {
		return err
	}

	httpServer := webServer(*port, streamer)
	log.Printf("julia server waiting for websocket connections")
	if err := httpServer.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
