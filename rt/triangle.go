package rt

import "math"

// Triangle is a flat triangle given by three world-space vertices,
// intersected with the Moller-Trumbore algorithm. Ported from
// vislab/graphics/src/triangle.cpp (mesh triangles there are indices into
// a shared vertex buffer; this package keeps vertices inline since
// obj-file loading is out of scope and meshes here are small and
// hand-authored).
type Triangle struct {
	V0, V1, V2 Point3
	N0, N1, N2 Vec3 // per-vertex normals for Phong shading interpolation
	BSDF       BSDF
	Light      Light
}

func NewTriangle(v0, v1, v2 Point3, bsdf BSDF) *Triangle {
	n := Cross(v1.Sub(v0), v2.Sub(v0)).Unit()
	return &Triangle{V0: v0, V1: v1, V2: v2, N0: n, N1: n, N2: n, BSDF: bsdf}
}

func NewTriangleShaded(v0, v1, v2 Point3, n0, n1, n2 Vec3, bsdf BSDF) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, N0: n0, N1: n1, N2: n2, BSDF: bsdf}
}

func (t *Triangle) geometricNormal() Vec3 {
	return Cross(t.V1.Sub(t.V0), t.V2.Sub(t.V0)).Unit()
}

func (t *Triangle) PreliminaryHit(r Ray) PreliminaryIntersection {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)

	h := Cross(r.Direction, edge2)
	a := Dot(edge1, h)
	if math.Abs(a) < 1e-12 {
		return PreliminaryIntersection{}
	}

	f := 1 / a
	s := r.Origin.Sub(t.V0)
	u := f * Dot(s, h)
	if u < 0 || u > 1 {
		return PreliminaryIntersection{}
	}

	q := Cross(s, edge1)
	v := f * Dot(r.Direction, q)
	if v < 0 || u+v > 1 {
		return PreliminaryIntersection{}
	}

	hitT := f * Dot(edge2, q)
	if hitT < r.TMin || hitT > r.TMax {
		return PreliminaryIntersection{}
	}

	return PreliminaryIntersection{Valid: true, T: hitT, Shape: t}
}

func (t *Triangle) AnyHit(r Ray) bool {
	return t.PreliminaryHit(r).Valid
}

func (t *Triangle) barycentric(p Point3) (u, v, w float64) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	ep := p.Sub(t.V0)

	d00 := Dot(edge1, edge1)
	d01 := Dot(edge1, edge2)
	d11 := Dot(edge2, edge2)
	d20 := Dot(ep, edge1)
	d21 := Dot(ep, edge2)
	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

func (t *Triangle) ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction {
	p := r.At(pi.T)
	u, v, w := t.barycentric(p)

	shadingN := t.N0.Scale(u).Add(t.N1.Scale(v)).Add(t.N2.Scale(w)).Unit()
	geoN := t.geometricNormal()

	wi := r.Direction.Neg().Unit()
	if Dot(wi, geoN) < 0 {
		geoN = geoN.Neg()
		shadingN = shadingN.Neg()
	}

	return SurfaceInteraction{
		Interaction: Interaction{Valid: true, T: pi.T, P: p, N: geoN},
		Shading:     NewFrame(shadingN),
		Wi:          wi,
		UV:          Point2{X: v, Y: w},
		Shape:       t,
	}
}

func (t *Triangle) WorldBounds() AABB {
	box := NewAABBFromPoints(t.V0, t.V1)
	return NewAABBFromBoxes(box, NewAABBFromPoints(t.V2, t.V2))
}

func (t *Triangle) Area() float64 {
	return 0.5 * Cross(t.V1.Sub(t.V0), t.V2.Sub(t.V0)).Len()
}

func (t *Triangle) SamplePosition(timeSample float64, sample Point2) PositionSample {
	u, v := SquareToUniformTriangle(sample)
	w := 1 - u - v
	p := t.V0.Scale(u).Add(t.V1.Scale(v)).Add(t.V2.Scale(w))
	n := t.geometricNormal()
	return PositionSample{P: p, N: n, PDF: 1 / t.Area(), UV: Point2{X: u, Y: v}, Time: timeSample}
}

func (t *Triangle) PDFPosition(ps PositionSample) float64 {
	return 1 / t.Area()
}

func (t *Triangle) SampleDirection(ref Interaction, sample Point2) DirectionSample {
	return defaultSampleDirection(t, ref, sample)
}

func (t *Triangle) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return defaultPDFDirection(t, ref, ds)
}

// Mesh is a flat collection of triangles sharing one BSDF, the lightweight
// stand-in for vislab's indexed TriangleMesh now that obj-file loading is
// out of scope. SamplePosition/PDFPosition pick a triangle proportional to
// its area so the mesh as a whole samples its surface uniformly.
type Mesh struct {
	Triangles []*Triangle
	cdf       []float64
	totalArea float64
}

func NewMesh(triangles []*Triangle) *Mesh {
	m := &Mesh{Triangles: triangles}
	m.cdf = make([]float64, len(triangles))
	sum := 0.0
	for i, tri := range triangles {
		sum += tri.Area()
		m.cdf[i] = sum
	}
	m.totalArea = sum
	return m
}

func (m *Mesh) PreliminaryHit(r Ray) PreliminaryIntersection {
	best := PreliminaryIntersection{}
	closest := r
	for i, tri := range m.Triangles {
		pi := tri.PreliminaryHit(closest)
		if pi.Valid {
			pi.PrimIndex = i
			pi.Shape = m
			best = pi
			closest.TMax = pi.T
		}
	}
	return best
}

func (m *Mesh) AnyHit(r Ray) bool {
	for _, tri := range m.Triangles {
		if tri.AnyHit(r) {
			return true
		}
	}
	return false
}

func (m *Mesh) ComputeSurfaceInteraction(r Ray, pi PreliminaryIntersection) SurfaceInteraction {
	tri := m.Triangles[pi.PrimIndex]
	si := tri.ComputeSurfaceInteraction(r, PreliminaryIntersection{Valid: true, T: pi.T, Shape: tri})
	si.Shape = m
	return si
}

func (m *Mesh) WorldBounds() AABB {
	box := NewAABB()
	for _, tri := range m.Triangles {
		box = NewAABBFromBoxes(box, tri.WorldBounds())
	}
	return box
}

func (m *Mesh) Area() float64 { return m.totalArea }

func (m *Mesh) pickTriangle(u float64) int {
	lo, hi := 0, len(m.cdf)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if m.cdf[mid] < u*m.totalArea {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (m *Mesh) SamplePosition(timeSample float64, sample Point2) PositionSample {
	idx := m.pickTriangle(sample.X)
	// Rescale sample.X to [0,1] within the picked triangle's CDF interval
	// so the point is still uniform over that triangle.
	lo := 0.0
	if idx > 0 {
		lo = m.cdf[idx-1]
	}
	if span := m.cdf[idx] - lo; span > 0 {
		sample.X = Clamp((sample.X*m.totalArea-lo)/span, 0, 1)
	}
	ps := m.Triangles[idx].SamplePosition(timeSample, sample)
	ps.PDF = 1 / m.totalArea
	return ps
}

func (m *Mesh) PDFPosition(ps PositionSample) float64 {
	return 1 / m.totalArea
}

func (m *Mesh) SampleDirection(ref Interaction, sample Point2) DirectionSample {
	return defaultSampleDirection(m, ref, sample)
}

func (m *Mesh) PDFDirection(ref Interaction, ds DirectionSample) float64 {
	return defaultPDFDirection(m, ref, ds)
}
