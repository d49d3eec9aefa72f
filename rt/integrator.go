package rt

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RadianceIntegrator is the interface implemented by every rendering
// algorithm (direct lighting, path tracing). Grounded in
// vislab/graphics/include/vislab/graphics/radiance_integrator.hpp.
//
// Render's (bool, error) return is a deliberate departure from the
// original's bare bool: a Go render pass can be stopped mid-flight by
// cancelling its context, and the error tells callers why it stopped.
// Render performs no scene or configuration checks of its own.
type RadianceIntegrator interface {
	// Render fills image with the integrator's estimate of the scene's
	// radiance, returning whether it completed a full pass and any error
	// encountered along the way.
	Render(ctx context.Context, scene *Scene, image *Image, sampler Sampler) (bool, error)
}

// MonteCarloRadianceIntegrator is the shared base every Monte Carlo
// integrator embeds: it owns the parallel per-pixel dispatch, per-pixel
// sampler cloning/seeding and sample averaging; the image it fills holds
// linear radiance, and gamma encoding happens later in Image.ToRGBA.
// Subclasses only implement Sample (the per-ray radiance estimate).
// Ported from monte_carlo_radiance_integrator.cpp.
type MonteCarloRadianceIntegrator struct {
	// SamplesPerPixel is how many camera-ray samples each pixel averages.
	SamplesPerPixel int
	// Sample estimates the radiance arriving at the camera along ray r,
	// implemented by DirectRadianceIntegrator/PathRadianceIntegrator.
	Sample func(scene *Scene, r Ray, sampler Sampler) Spectrum
}

// Render dispatches one goroutine per pixel row, each with its own
// cloned-and-reseeded Sampler so that the same (scene, seed) always
// produces the same image regardless of how many workers ran concurrently.
func (m *MonteCarloRadianceIntegrator) Render(ctx context.Context, scene *Scene, image *Image, sampler Sampler) (bool, error) {
	width, height := image.GetResolution()

	g, ctx := errgroup.WithContext(ctx)

	for y := 0; y < height; y++ {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rowSampler := sampler.Clone()
			for x := 0; x < width; x++ {
				rowSampler.Seed(uint64(y*width + x))
				sum := Spectrum{}
				for s := 0; s < m.SamplesPerPixel; s++ {
					jitter := rowSampler.Next2D()
					px := float64(x) + jitter.X
					py := float64(y) + jitter.Y
					r := scene.Camera.SampleRay(px, py)
					sum = sum.Add(m.Sample(scene, r, rowSampler))
					GlobalRenderStats.SamplesComputed.Add(1)
				}
				image.SetValue(x, y, sum.Scale(1/float64(m.SamplesPerPixel)))
				GlobalRenderStats.PixelsRendered.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}
	return true, nil
}

// misWeight computes the power-heuristic (exponent 2) multiple
// importance sampling weight for a sample drawn with density pdfA, when
// a second technique with density pdfB also contributes to the same
// estimator. NaN is guarded against (0/0 when both pdfs are zero) by
// returning 0, matching monte_carlo_radiance_integrator.cpp's misWeight.
func misWeight(pdfA, pdfB float64) float64 {
	a2 := pdfA * pdfA
	b2 := pdfB * pdfB
	denom := a2 + b2
	if denom == 0 {
		return 0
	}
	return a2 / denom
}
