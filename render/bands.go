package render

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Band is a half-open range of image rows [Begin, End).
type Band struct {
	Begin, End int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.End - b.Begin }

// Bands splits [0,height) into threads contiguous bands using integer
// division; band t is [t*height/threads, (t+1)*height/threads). Bands may be
// empty when height < threads, but together they cover every row exactly once.
func Bands(height, threads int) []Band {
	if threads <= 0 || height < 0 {
		return nil
	}
	bands := make([]Band, threads)
	for t := range threads {
		bands[t] = Band{
			Begin: t * height / threads,
			End:   (t + 1) * height / threads,
		}
	}
	return bands
}

// computeBands fans the bands out to one goroutine each and concatenates the
// private results in band order once every goroutine has returned.
func computeBands(ctx context.Context, c complex128, width, height int, cfg Config) ([]float64, error) {
	bands := Bands(height, cfg.threads())
	parts := make([][]float64, len(bands))

	g, ctx := errgroup.WithContext(ctx)
	for t, b := range bands {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			parts[t] = ComputeField(c, width, height, b.Begin, b.End, cfg)
			Logger().Debug("band computed",
				"band", t, "rows", b.Rows(), "elapsed", time.Since(start))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute bands: %w", err)
	}

	field := make([]float64, 0, width*height)
	for _, p := range parts {
		field = append(field, p...)
	}
	return field, nil
}
