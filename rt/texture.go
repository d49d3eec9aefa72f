package rt

// Texture is a 2D (u, v) -> Spectrum field evaluated at a surface
// interaction's texture coordinates, grounded in
// vislab/graphics/include/vislab/graphics/const_texture.hpp and
// colormap_texture.hpp. Image-based and procedural-noise textures are
// explicitly out of scope; every material in this renderer is either a
// flat color or a small analytic gradient.
type Texture interface {
	Eval(uv Point2) Spectrum
}

// ConstTexture returns the same value everywhere, the texture equivalent
// of a plain material color (const_texture.hpp).
type ConstTexture struct {
	Value Spectrum
}

func NewConstTexture(c Spectrum) *ConstTexture {
	return &ConstTexture{Value: c}
}

func (t *ConstTexture) Eval(uv Point2) Spectrum {
	return t.Value
}

// ColormapTexture linearly interpolates between a small ramp of color
// stops along u, ignoring v - a lightweight stand-in for a 1D transfer
// function, matching colormap_texture.hpp's role of mapping a scalar
// field to color without touching image I/O.
type ColormapTexture struct {
	Stops []Spectrum
}

func NewColormapTexture(stops ...Spectrum) *ColormapTexture {
	return &ColormapTexture{Stops: stops}
}

func (t *ColormapTexture) Eval(uv Point2) Spectrum {
	n := len(t.Stops)
	if n == 0 {
		return Spectrum{}
	}
	if n == 1 {
		return t.Stops[0]
	}
	u := Clamp(uv.X, 0, 1)
	pos := u * float64(n-1)
	i0 := int(pos)
	if i0 >= n-1 {
		return t.Stops[n-1]
	}
	frac := pos - float64(i0)
	a, b := t.Stops[i0], t.Stops[i0+1]
	return Vec3{
		X: Lerp(frac, a.X, b.X),
		Y: Lerp(frac, a.Y, b.Y),
		Z: Lerp(frac, a.Z, b.Z),
	}
}
