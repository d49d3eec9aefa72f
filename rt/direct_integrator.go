package rt

// DirectRadianceIntegrator estimates only direct illumination (a single
// bounce off the first surface a camera ray hits), combining explicit
// light sampling and BSDF sampling with multiple importance sampling.
// Ported from vislab/graphics/src/direct_radiance_integrator.cpp.
type DirectRadianceIntegrator struct {
	MonteCarloRadianceIntegrator
	// LightSamples/BSDFSamples are how many of each strategy to draw per
	// camera-ray sample, matching direct_radiance_integrator.cpp's
	// independently configurable sample counts for each technique.
	LightSamples int
	BSDFSamples  int
}

func NewDirectRadianceIntegrator(samplesPerPixel, lightSamples, bsdfSamples int) *DirectRadianceIntegrator {
	d := &DirectRadianceIntegrator{LightSamples: lightSamples, BSDFSamples: bsdfSamples}
	d.MonteCarloRadianceIntegrator = MonteCarloRadianceIntegrator{
		SamplesPerPixel: samplesPerPixel,
		Sample:          d.sample,
	}
	return d
}

func (d *DirectRadianceIntegrator) sample(scene *Scene, r Ray, sampler Sampler) Spectrum {
	si := scene.Intersect(r)
	if !si.Valid {
		return Spectrum{}
	}

	result := Spectrum{}

	// The camera ray's first hit may itself be an emitter.
	if light := shapeLight(si.Shape); light != nil {
		result = result.Add(light.Evaluate(si))
	}

	bsdf := shapeBSDF(si.Shape)
	if bsdf == nil {
		return result
	}
	wo := si.ToLocal(si.Wi)

	// Each technique's pdf enters the MIS weights scaled by its share of
	// the samples, so a technique that draws no samples leaves the other
	// one with full weight.
	totalSamples := float64(d.LightSamples + d.BSDFSamples)
	fracLight := float64(d.LightSamples) / totalSamples
	fracBSDF := float64(d.BSDFSamples) / totalSamples

	// --- Light sampling ---
	if d.LightSamples > 0 && len(scene.Lights) > 0 {
		lightContrib := Spectrum{}
		for i := 0; i < d.LightSamples; i++ {
			lightSel := sampler.Next1D()
			dirSample := sampler.Next2D()
			ds, radiance, light := scene.SampleLightDirection(si.Interaction, lightSel, dirSample)
			if ds.PDF <= 0 || radiance.IsZero() {
				continue
			}

			wi := si.ToLocal(ds.Direction)
			if CosTheta(wi) <= 0 {
				continue
			}

			shadow := si.SpawnRayTo(ds.P)
			if scene.AnyHit(shadow) {
				continue
			}

			f := bsdf.Eval(si, wo, wi)
			if f.IsZero() {
				continue
			}

			weight := 1.0
			if !light.Flags().Has(LightDelta) && !bsdf.Flags().Has(Delta) {
				bsdfPDF := bsdf.PDF(si, wo, wi)
				weight = misWeight(ds.PDF*fracLight, bsdfPDF*fracBSDF)
			}

			lightContrib = lightContrib.Add(f.Mult(radiance).Scale(weight / ds.PDF))
		}
		result = result.Add(lightContrib.Scale(1 / float64(d.LightSamples)))
	}

	// --- BSDF sampling ---
	if d.BSDFSamples > 0 {
		bsdfContrib := Spectrum{}
		for i := 0; i < d.BSDFSamples; i++ {
			bs, weight := bsdf.Sample(si, wo, sampler.Next2D())
			if bs.PDF <= 0 && !bsdf.Flags().Has(Delta) {
				continue
			}
			if weight.IsZero() {
				continue
			}

			wiWorld := si.ToWorld(bs.Wo)
			bsdfRay := si.SpawnRay(wiWorld)
			hit := scene.Intersect(bsdfRay)
			if !hit.Valid {
				continue
			}

			light := shapeLight(hit.Shape)
			if light == nil {
				continue
			}
			radiance := light.Evaluate(hit)
			if radiance.IsZero() {
				continue
			}

			misW := 1.0
			if !bs.SampledType.Has(Delta) {
				lightPDF := scene.PDFLightDirection(si.Interaction, light, DirectionSample{
					PositionSample: PositionSample{P: hit.P, N: hit.N},
					Direction:      wiWorld,
					Distance:       hit.T,
				})
				misW = misWeight(bs.PDF*fracBSDF, lightPDF*fracLight)
			}

			bsdfContrib = bsdfContrib.Add(weight.Mult(radiance).Scale(misW))
		}
		result = result.Add(bsdfContrib.Scale(1 / float64(d.BSDFSamples)))
	}

	return result
}

// shapeBSDF/shapeLight read the optional BSDF/Light attached to a shape,
// since Shape itself carries no such fields in its interface - only the
// concrete shape types (Sphere, Rectangle, Triangle, Mesh) do.
func shapeBSDF(s Shape) BSDF {
	switch v := s.(type) {
	case *Sphere:
		return v.BSDF
	case *Rectangle:
		return v.BSDF
	case *Triangle:
		return v.BSDF
	case *Mesh:
		if len(v.Triangles) > 0 {
			return v.Triangles[0].BSDF
		}
	}
	return nil
}

func shapeLight(s Shape) Light {
	switch v := s.(type) {
	case *Sphere:
		return v.Light
	case *Rectangle:
		return v.Light
	case *Triangle:
		return v.Light
	}
	return nil
}
