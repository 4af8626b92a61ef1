package julia

import (
	"context"
	"fmt"
	"image"

	"github.com/marben/dist_julia/render"
)

// ImgProvider renders one Julia image for a parameter.
type ImgProvider interface {
	Image(ctx context.Context, c complex128, width, height int) (*image.RGBA, error)
}

// FrameProvider streams the frames of an animation, in order, as encoded images.
type FrameProvider interface {
	Frames(ctx context.Context, req AnimationRequest, fn func(FrameHeader, []byte) error) error
}

var _ ImgProvider = (*render.Renderer)(nil)

// Limits on what a remote client may request.
const (
	MaxFrames    = 720
	MaxFrameSize = 1024
)

// AnimationRequest is the first message a streaming client sends.
type AnimationRequest struct {
	Frames        int     `json:"frames"`
	Radius        float64 `json:"radius"`
	Size          int     `json:"size"`
	FPS           float64 `json:"fps"`
	Normalization string  `json:"normalization,omitempty"`
}

// DefaultAnimationRequest mirrors render.DefaultAnimation.
func DefaultAnimationRequest() AnimationRequest {
	a := render.DefaultAnimation()
	return AnimationRequest{
		Frames: a.Frames,
		Radius: a.Radius,
		Size:   a.Width,
		FPS:    a.FPS,
	}
}

// Animation converts the request into a validated render.Animation.
// Remote requests must ask for at least one frame of at least one pixel.
func (r AnimationRequest) Animation() (render.Animation, error) {
	if r.Frames < 1 || r.Size < 1 {
		return render.Animation{}, fmt.Errorf("%w: %d frames of size %d", render.ErrInvalidDimensions, r.Frames, r.Size)
	}
	if r.Frames > MaxFrames {
		return render.Animation{}, fmt.Errorf("%w: %d frames, limit %d", render.ErrInvalidDimensions, r.Frames, MaxFrames)
	}
	if r.Size > MaxFrameSize {
		return render.Animation{}, fmt.Errorf("%w: size %d, limit %d", render.ErrInvalidDimensions, r.Size, MaxFrameSize)
	}
	a := render.Animation{
		Frames: r.Frames,
		Radius: r.Radius,
		Width:  r.Size,
		Height: r.Size,
		FPS:    r.FPS,
	}
	if err := a.Validate(); err != nil {
		return render.Animation{}, err
	}
	return a, nil
}

// FrameHeader precedes every encoded frame on the stream.
type FrameHeader struct {
	Index  int     `json:"index"`
	Total  int     `json:"total"`
	Re     float64 `json:"re"`
	Im     float64 `json:"im"`
	Delay  int     `json:"delay"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
}

// NewFrameHeader describes f as frame f.Index of total.
func NewFrameHeader(f render.Frame, total int) FrameHeader {
	return FrameHeader{
		Index:  f.Index,
		Total:  total,
		Re:     real(f.C),
		Im:     imag(f.C),
		Delay:  f.Delay,
		Width:  f.Width,
		Height: f.Height,
	}
}
