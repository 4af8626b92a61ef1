// Package render computes Julia-set images.
//
// A render runs in three stages. The raw escape field of the parameter c is
// computed in parallel row bands (ComputeField, Bands). The field is then
// normalised in place (Normalize) and mapped through a cyclic control-point
// gradient (Palette.ColorOf) into packed RGB bytes. Sweep and GenerateFrames
// repeat the pipeline for parameters on a circle to build animations.
//
//	r, err := render.New(render.DefaultConfig(), render.WithThreads(8))
//	if err != nil {
//		return err
//	}
//	pix, err := r.Render(ctx, complex(-0.221, -0.713), 1024, 1024)
package render
