package rt

import "math"

// Camera is a perspective projective camera: a look-at placement plus a
// horizontal field of view, near/far clip planes and an output
// resolution. Ported from vislab/graphics/src/perspective_camera.cpp and
// projective_camera.cpp, which build the analogous
// camera-to-screen/raster matrices; this port folds the handful of
// matrix products perspective_camera.cpp does at construction time into
// plain per-pixel trigonometry, since the renderer here has no need for
// a reusable screen-to-raster matrix outside of ray generation.
type Camera struct {
	LookFrom Point3
	LookAt   Point3
	Up       Vec3

	Width, Height int
	FovX          float64 // horizontal field of view, radians
	Near, Far     float64

	cameraToWorld Transform
	tanHalfFovX   float64
	tanHalfFovY   float64
}

func NewCamera(lookFrom, lookAt, up Vec3, width, height int, fovXDegrees, near, far float64) *Camera {
	c := &Camera{
		LookFrom: lookFrom,
		LookAt:   lookAt,
		Up:       up,
		Width:    width,
		Height:   height,
		FovX:     DegreesToRadians(fovXDegrees),
		Near:     near,
		Far:      far,
	}
	c.update()
	return c
}

func (c *Camera) update() {
	c.cameraToWorld = LookAt(c.LookFrom, c.LookAt, c.Up)
	c.tanHalfFovX = math.Tan(c.FovX / 2)
	aspect := float64(c.Height) / float64(c.Width)
	c.tanHalfFovY = c.tanHalfFovX * aspect
}

// unproject maps normalized device coordinates (ndcX, ndcY in [-1, 1],
// with +Y up) to a camera-space direction on the z=1 plane, the same
// screen-space convention projective_camera.cpp's unproject uses before
// transforming into world space.
func (c *Camera) unproject(ndcX, ndcY float64) Vec3 {
	return Vec3{X: ndcX * c.tanHalfFovX, Y: ndcY * c.tanHalfFovY, Z: 1}
}

// SampleRay generates a camera ray through the pixel at (pixelX, pixelY)
// (continuous pixel coordinates, sub-pixel jitter already applied by the
// caller via the sampler).
func (c *Camera) SampleRay(pixelX, pixelY float64) Ray {
	ndcX := 2*(pixelX/float64(c.Width)) - 1
	ndcY := 1 - 2*(pixelY/float64(c.Height))

	dirCamera := c.unproject(ndcX, ndcY)
	dirWorld := c.cameraToWorld.Vector(dirCamera).Unit()

	return NewRayMinMax(c.LookFrom, dirWorld, c.Near, c.Far, 0)
}

// SampleRayDifferential is SampleRay plus the two auxiliary rays offset
// by one pixel along x and y, used by texture filtering. Grounded in
// perspective_camera.cpp's sampleRayDifferential.
func (c *Camera) SampleRayDifferential(pixelX, pixelY float64) RayDifferential {
	r := c.SampleRay(pixelX, pixelY)
	rx := c.SampleRay(pixelX+1, pixelY)
	ry := c.SampleRay(pixelX, pixelY+1)

	return RayDifferential{
		Ray:              r,
		HasDifferentials: true,
		RxOrigin:         rx.Origin,
		RxDirection:      rx.Direction,
		RyOrigin:         ry.Origin,
		RyDirection:      ry.Direction,
	}
}
