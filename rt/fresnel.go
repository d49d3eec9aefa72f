package rt

import "math"

// Fresnel evaluates the unpolarized Fresnel reflectance for a dielectric
// interface. cosThetaI is the cosine of the angle between the incident
// direction and the (possibly flipped) surface normal, measured in the
// convention that cosThetaI > 0 means the ray arrives from the side the
// normal points to. eta is the relative index of refraction of the side
// the normal points away from over the side it points to (interior over
// exterior); when cosThetaI < 0 it is inverted, so the returned etaIt is
// always eta_transmitted / eta_incident. Returns the reflectance F, the cosine of
// the refracted direction cosThetaT (signed, pointing into the new
// medium), the relative IOR actually used etaIt and its inverse etaTi -
// ported from vislab/graphics/src/fresnel.cpp, which returns exactly these
// four values so callers never need to re-derive eta after flipping sides.
func Fresnel(cosThetaI, eta float64) (F, cosThetaT, etaIt, etaTi float64) {
	outsideIn := cosThetaI >= 0
	if !outsideIn {
		eta = 1 / eta
		cosThetaI = -cosThetaI
	}

	// Snell's law: sinThetaT^2 = eta_i^2 / eta_t^2 * sinThetaI^2, expressed
	// here with eta = eta_t/eta_i already folded in.
	cosThetaT2 := 1 - (1-cosThetaI*cosThetaI)/(eta*eta)

	if cosThetaT2 <= 0 {
		// Total internal reflection.
		F = 1
		cosThetaT = 0
		etaIt = eta
		etaTi = 1 / eta
		return F, cosThetaT, etaIt, etaTi
	}

	cosThetaT = math.Sqrt(cosThetaT2)

	rs := (cosThetaI - eta*cosThetaT) / (cosThetaI + eta*cosThetaT)
	rp := (eta*cosThetaI - cosThetaT) / (eta*cosThetaI + cosThetaT)

	F = 0.5 * (rs*rs + rp*rp)

	if outsideIn {
		cosThetaT = -cosThetaT
	}

	etaIt = eta
	etaTi = 1 / eta
	return F, cosThetaT, etaIt, etaTi
}

// Reflect mirrors a local-space direction wi about the local shading
// normal (0,0,1), matching fresnel.cpp's reflect().
func Reflect(wi Vec3) Vec3 {
	return Vec3{X: -wi.X, Y: -wi.Y, Z: wi.Z}
}

// Refract bends a local-space direction wi (pointing away from the
// surface, towards where it came from) through an interface with
// relative IOR eta (transmitted/incident, as returned by Fresnel's
// etaIt), given the cosine of the refracted angle cosThetaT already
// solved for by Fresnel. The result also points away from the surface,
// into the transmitted medium. Mirrors fresnel.cpp's refract(), which
// reuses cosThetaT rather than recomputing it to avoid a second,
// possibly inconsistent, square root.
func Refract(wi Vec3, cosThetaT, eta float64) Vec3 {
	ratio := 1 / eta // incident/transmitted
	n := Vec3{X: 0, Y: 0, Z: math.Copysign(1, wi.Z)}
	cosThetaI := AbsDot(wi, n)
	return wi.Scale(-ratio).Add(n.Scale(ratio*cosThetaI - math.Abs(cosThetaT)))
}
