package rt

import "math"

// Mat4 is a row-major 4x4 matrix, used by Transform to carry both a
// matrix and its inverse so that normals (which transform by the
// inverse-transpose) never need an on-demand matrix inversion in the hot
// path. Ported from vislab/graphics/src/transform.cpp.
type Mat4 [4][4]float64

func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Inverse computes the inverse of a 4x4 matrix via Gauss-Jordan
// elimination with partial pivoting. Transforms built by this package are
// always composed of translate/rotate/scale, which are always invertible,
// so no singularity check is needed beyond what the pivot search already
// guards against.
func (a Mat4) Inverse() Mat4 {
	var aug [4][8]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			aug[i][j] = a[i][j]
		}
		aug[i][4+i] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		maxAbs := math.Abs(aug[col][col])
		for row := col + 1; row < 4; row++ {
			if v := math.Abs(aug[row][col]); v > maxAbs {
				pivot = row
				maxAbs = v
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pivotVal := aug[col][col]
		for j := 0; j < 8; j++ {
			aug[col][j] /= pivotVal
		}
		for row := 0; row < 4; row++ {
			if row == col {
				continue
			}
			factor := aug[row][col]
			for j := 0; j < 8; j++ {
				aug[row][j] -= factor * aug[col][j]
			}
		}
	}

	var inv Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			inv[i][j] = aug[i][4+j]
		}
	}
	return inv
}

func (a Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

// Transform wraps a matrix together with its precomputed inverse, so
// applying a transform and its inverse (e.g. world-to-object and
// object-to-world) never re-derives the other from scratch.
type Transform struct {
	M    Mat4
	MInv Mat4
}

func NewTransformIdentity() Transform {
	id := Identity4()
	return Transform{M: id, MInv: id}
}

func NewTransformFromMatrix(m Mat4) Transform {
	return Transform{M: m, MInv: m.Inverse()}
}

func Translate(delta Vec3) Transform {
	m := Identity4()
	m[0][3], m[1][3], m[2][3] = delta.X, delta.Y, delta.Z
	minv := Identity4()
	minv[0][3], minv[1][3], minv[2][3] = -delta.X, -delta.Y, -delta.Z
	return Transform{M: m, MInv: minv}
}

func ScaleXYZ(s Vec3) Transform {
	m := Identity4()
	m[0][0], m[1][1], m[2][2] = s.X, s.Y, s.Z
	minv := Identity4()
	minv[0][0], minv[1][1], minv[2][2] = 1/s.X, 1/s.Y, 1/s.Z
	return Transform{M: m, MInv: minv}
}

func UniformScale(s float64) Transform {
	return ScaleXYZ(Vec3{X: s, Y: s, Z: s})
}

// RotateX/Y/Z build a rotation transform about the respective axis, angle
// given in radians. Since rotation matrices are orthonormal, the inverse
// equals the transpose.
func RotateX(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity4()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return Transform{M: m, MInv: m.Transpose()}
}

func RotateY(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity4()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return Transform{M: m, MInv: m.Transpose()}
}

func RotateZ(angle float64) Transform {
	s, c := math.Sin(angle), math.Cos(angle)
	m := Identity4()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return Transform{M: m, MInv: m.Transpose()}
}

// LookAt builds a camera-to-world transform placing the origin at eye,
// with camera-space +Z pointing at target, +X to the viewer's right and
// +Y along the given up vector (made orthogonal to the view direction),
// which defines the roll. Matches projective_camera.cpp's look-at
// construction.
func LookAt(eye, target, up Vec3) Transform {
	dir := target.Sub(eye).Unit()
	right := Cross(dir, up.Unit()).Unit()
	newUp := Cross(right, dir)

	m := Identity4()
	m[0][0], m[1][0], m[2][0] = right.X, right.Y, right.Z
	m[0][1], m[1][1], m[2][1] = newUp.X, newUp.Y, newUp.Z
	m[0][2], m[1][2], m[2][2] = dir.X, dir.Y, dir.Z
	m[0][3], m[1][3], m[2][3] = eye.X, eye.Y, eye.Z

	return NewTransformFromMatrix(m)
}

func (t Transform) Mul(o Transform) Transform {
	return Transform{M: t.M.Mul(o.M), MInv: o.MInv.Mul(t.MInv)}
}

func (t Transform) Inverse() Transform {
	return Transform{M: t.MInv, MInv: t.M}
}

// Point transforms p as a homogeneous point (w=1), applying translation.
func (t Transform) Point(p Point3) Point3 {
	m := t.M
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 1 {
		return Point3{X: x, Y: y, Z: z}
	}
	return Point3{X: x / w, Y: y / w, Z: z / w}
}

// Vector transforms v as a homogeneous vector (w=0), ignoring translation.
func (t Transform) Vector(v Vec3) Vec3 {
	m := t.M
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Normal transforms n by the inverse-transpose of M, the standard rule
// that keeps normals perpendicular to the surface under non-uniform
// scaling.
func (t Transform) Normal(n Vec3) Vec3 {
	m := t.MInv
	return Vec3{
		X: m[0][0]*n.X + m[1][0]*n.Y + m[2][0]*n.Z,
		Y: m[0][1]*n.X + m[1][1]*n.Y + m[2][1]*n.Z,
		Z: m[0][2]*n.X + m[1][2]*n.Y + m[2][2]*n.Z,
	}
}

func (t Transform) Ray(r Ray) Ray {
	out := r
	out.Origin = t.Point(r.Origin)
	out.Direction = t.Vector(r.Direction)
	return out
}

func (t Transform) RayDifferential(rd RayDifferential) RayDifferential {
	out := rd
	out.Ray = t.Ray(rd.Ray)
	if rd.HasDifferentials {
		out.RxOrigin = t.Point(rd.RxOrigin)
		out.RyOrigin = t.Point(rd.RyOrigin)
		out.RxDirection = t.Vector(rd.RxDirection)
		out.RyDirection = t.Vector(rd.RyDirection)
	}
	return out
}

// Bounds transforms an AABB by mapping its eight corners and re-fitting,
// matching transform.cpp's worldBounds(), which is exact for affine maps
// but only a (conservative) approximation for rotated boxes.
func (t Transform) Bounds(box AABB) AABB {
	result := NewAABB()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := box.AxisInterval(0).Min
				if i == 1 {
					x = box.AxisInterval(0).Max
				}
				y := box.AxisInterval(1).Min
				if j == 1 {
					y = box.AxisInterval(1).Max
				}
				z := box.AxisInterval(2).Min
				if k == 1 {
					z = box.AxisInterval(2).Max
				}
				p := t.Point(Point3{X: x, Y: y, Z: z})
				result = NewAABBFromBoxes(result, NewAABBFromPoints(p, p))
			}
		}
	}
	return result
}
