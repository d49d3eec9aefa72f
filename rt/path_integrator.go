package rt

import "math"

// PathRadianceIntegrator traces a full light path per camera-ray sample,
// accumulating throughput across bounces and terminating stochastically
// via Russian roulette. Ported from
// vislab/graphics/src/path_radiance_integrator.cpp.
type PathRadianceIntegrator struct {
	MonteCarloRadianceIntegrator
	MaxDepth      int
	RouletteDepth int
}

func NewPathRadianceIntegrator(samplesPerPixel, maxDepth, rouletteDepth int) *PathRadianceIntegrator {
	p := &PathRadianceIntegrator{MaxDepth: maxDepth, RouletteDepth: rouletteDepth}
	p.MonteCarloRadianceIntegrator = MonteCarloRadianceIntegrator{
		SamplesPerPixel: samplesPerPixel,
		Sample:          p.sample,
	}
	return p
}

func (p *PathRadianceIntegrator) sample(scene *Scene, ray Ray, sampler Sampler) Spectrum {
	result := Spectrum{}
	beta := Spectrum{X: 1, Y: 1, Z: 1} // accumulated throughput
	eta := 1.0                         // accumulated relative IOR, scales Russian-roulette survival

	r := ray
	// specularBounce marks that the previous vertex was sampled from a
	// delta BSDF lobe, in which case an emitter hit next has no
	// competing light-sampling pdf to MIS against.
	specularBounce := true
	prevBSDFPdf := 0.0
	var prevInteraction Interaction

	for depth := 1; ; depth++ {
		si := scene.Intersect(r)
		if !si.Valid {
			break
		}

		if light := shapeLight(si.Shape); light != nil {
			emissionWeight := 1.0
			if !specularBounce {
				ds := DirectionSample{
					PositionSample: PositionSample{P: si.P, N: si.N},
					Direction:      r.Direction,
					Distance:       si.T,
				}
				lightPDF := scene.PDFLightDirection(prevInteraction, light, ds)
				emissionWeight = misWeight(prevBSDFPdf, lightPDF)
			}
			result = result.Add(beta.Mult(light.Evaluate(si)).Scale(emissionWeight))
		}

		// The vertex the final permitted BSDF bounce landed on has already
		// had its emission folded in above; stop before extending further.
		if depth > p.MaxDepth {
			break
		}

		bsdf := shapeBSDF(si.Shape)
		if bsdf == nil {
			break
		}
		wo := si.ToLocal(si.Wi)

		// Next-event estimation against a randomly chosen light.
		if len(scene.Lights) > 0 {
			lightSel := sampler.Next1D()
			dirSample := sampler.Next2D()
			ds, radiance, light := scene.SampleLightDirection(si.Interaction, lightSel, dirSample)
			if ds.PDF > 0 && !radiance.IsZero() {
				wi := si.ToLocal(ds.Direction)
				if CosTheta(wi) > 0 {
					shadow := si.SpawnRayTo(ds.P)
					if !scene.AnyHit(shadow) {
						f := bsdf.Eval(si, wo, wi)
						if !f.IsZero() {
							weight := 1.0
							if !light.Flags().Has(LightDelta) && !bsdf.Flags().Has(Delta) {
								bsdfPDF := bsdf.PDF(si, wo, wi)
								weight = misWeight(ds.PDF, bsdfPDF)
							}
							result = result.Add(beta.Mult(f).Mult(radiance).Scale(weight / ds.PDF))
						}
					}
				}
			}
		}

		// Extend the path by importance-sampling the BSDF.
		bs, weight := bsdf.Sample(si, wo, sampler.Next2D())
		if weight.IsZero() || (bs.PDF <= 0 && !bs.SampledType.Has(Delta)) {
			break
		}

		beta = beta.Mult(weight)
		eta *= bs.Eta
		specularBounce = bs.SampledType.Has(Delta)
		prevBSDFPdf = bs.PDF
		prevInteraction = si.Interaction

		r = si.SpawnRay(si.ToWorld(bs.Wo))

		if depth >= p.RouletteDepth {
			q := math.Min(beta.MaxComponent()*eta*eta, 0.95)
			if sampler.Next1D() >= q {
				break
			}
			beta = beta.Scale(1 / q)
		}
	}

	return result
}
