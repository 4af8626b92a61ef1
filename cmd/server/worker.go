package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"math"
	"sync"

	"github.com/zeromicro/go-zero/core/syncx"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/render"
)

// sharedRenderer renders each (normalization, c, size) once no matter how
// many streams ask for it at the same time.
type sharedRenderer struct {
	r      *render.Renderer
	flight syncx.SingleFlight
}

func (sr *sharedRenderer) Render(ctx context.Context, c complex128, width, height int) ([]byte, error) {
	key := fmt.Sprintf("%s|%x|%x|%dx%d",
		sr.r.Config().Normalization, math.Float64bits(real(c)), math.Float64bits(imag(c)), width, height)
	v, err := sr.flight.Do(key, func() (any, error) {
		// Other streams may be waiting on this render; a leaving client must not cancel it.
		return sr.r.Render(context.WithoutCancel(ctx), c, width, height)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func newFlight() syncx.SingleFlight { return syncx.NewSingleFlight() }

// frameStreamer implements julia.FrameProvider on top of the render package.
type frameStreamer struct {
	renderers map[render.Normalization]*sharedRenderer
	normDef   render.Normalization

	streams int
	m       sync.Mutex
}

var _ julia.FrameProvider = (*frameStreamer)(nil)

// newFrameStreamer prepares one shared renderer per normalization so that
// requests may pick their own.
func newFrameStreamer(cfg render.Config) (*frameStreamer, error) {
	fs := &frameStreamer{
		renderers: make(map[render.Normalization]*sharedRenderer),
		normDef:   cfg.Normalization,
	}
	for _, n := range []render.Normalization{render.NormalizeScale, render.NormalizeEqualize, render.NormalizeNone} {
		r, err := render.New(cfg, render.WithNormalization(n))
		if err != nil {
			return nil, fmt.Errorf("renderer %v: %w", n, err)
		}
		fs.renderers[n] = &sharedRenderer{r: r, flight: newFlight()}
	}
	return fs, nil
}

func (fs *frameStreamer) incStreams() {
	fs.m.Lock()
	fs.streams++
	n := fs.streams
	fs.m.Unlock()

	log.Printf("streams: %d", n)
}

func (fs *frameStreamer) decStreams() {
	fs.m.Lock()
	fs.streams--
	n := fs.streams
	fs.m.Unlock()

	log.Printf("streams: %d", n)
}

// Frames renders the sweep described by req and hands every frame, PNG
// encoded, to fn in index order.
func (fs *frameStreamer) Frames(ctx context.Context, req julia.AnimationRequest, fn func(julia.FrameHeader, []byte) error) error {
	anim, err := req.Animation()
	if err != nil {
		return err
	}
	norm := fs.normDef
	if req.Normalization != "" {
		if norm, err = render.ParseNormalization(req.Normalization); err != nil {
			return err
		}
	}

	fs.incStreams()
	defer fs.decStreams()

	return render.Sweep(ctx, fs.renderers[norm], anim, func(f render.Frame) error {
		var buf bytes.Buffer
		if err := png.Encode(&buf, render.ToRGBA(f.Pix, f.Width, f.Height)); err != nil {
			return fmt.Errorf("png.Encode: %w", err)
		}
		return fn(julia.NewFrameHeader(f, anim.Frames), buf.Bytes())
	})
}
