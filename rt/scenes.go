package rt

import "math/rand"

// Scene builders grounded in pbr/common/src/scenes.cpp and the demo
// programs under pbr/{direct,path,dielectric,pointlight}/main.cpp: a unit
// Cornell box (five walls built by composing Transforms onto a single
// unit Rectangle, plus a small emissive rectangle hung below the
// ceiling), a variant with two dielectric spheres standing in the box,
// and a variant lit by random point lights instead of the area light.
//
// Every wall starts from the same local unit square ([-0.5,0.5]^2 at
// z=0, normal +Z) and reaches its final pose by composing transforms
// scale-then-rotate-then-translate (innermost to outermost), matching
// how Transform.Mul composes: t.Mul(o) applies o first, then t.

func cornellWall(objectToWorld Transform, color Spectrum) *Rectangle {
	return NewRectangle(objectToWorld, NewDiffuseBSDF(NewConstTexture(color)))
}

func cornellWalls(white, reddish, greenish Spectrum) []Shape {
	wallScale := ScaleXYZ(Vec3{X: 2, Y: 2, Z: 1})
	return []Shape{
		// Floor: already lies flat in the local x/y plane, just scaled to
		// 2x2 and dropped to z=-1.
		cornellWall(Translate(Vec3{X: 0, Y: 0, Z: -1}).Mul(wallScale), white),
		// Ceiling: flipped 180 degrees about X so its normal faces down
		// into the box, then raised to z=+1.
		cornellWall(Translate(Vec3{X: 0, Y: 0, Z: 1}).Mul(RotateX(Pi)).Mul(wallScale), white),
		// Back wall: rotated so the local +Z normal faces -X into the box,
		// then pushed out to x=1.
		cornellWall(Translate(Vec3{X: 1, Y: 0, Z: 0}).Mul(RotateY(-Pi/2)).Mul(wallScale), white),
		// Right wall (as seen from the camera looking down +X): normal
		// faces +Y into the box, wall sits at y=-1.
		cornellWall(Translate(Vec3{X: 0, Y: -1, Z: 0}).Mul(RotateX(-Pi/2)).Mul(wallScale), reddish),
		// Left wall: normal faces -Y into the box, wall sits at y=1.
		cornellWall(Translate(Vec3{X: 0, Y: 1, Z: 0}).Mul(RotateX(Pi/2)).Mul(wallScale), greenish),
	}
}

// NewCornellBoxScene builds the unit Cornell box: camera at (-3.5,0,0)
// looking towards the back wall at x=1, white floor/ceiling/back wall, a
// red-tinted right wall, a green-tinted left wall, and a small
// rectangular area light hung 0.3 below the ceiling.
func NewCornellBoxScene(width, height int) *Scene {
	camera := NewCamera(
		Point3{X: -3.5, Y: 0, Z: 0},
		Point3{X: 1, Y: 0, Z: 0},
		Vec3{X: 0, Y: 0, Z: 1},
		width, height, 60, 0.01, 100,
	)

	white := Spectrum{X: 1, Y: 1, Z: 1}
	reddish := Spectrum{X: 1, Y: 0.3, Z: 0.3}
	greenish := Spectrum{X: 0.3, Y: 1.0, Z: 0.3}

	shapes := cornellWalls(white, reddish, greenish)

	// Area light: a small rectangle at (0.5, 0.6, 0.7), 0.3 below the
	// ceiling at z=1, scaled down to 0.2 and flipped 180 degrees about X
	// so it faces down into the box, with radiance (10,10,10).
	lightTransform := Translate(Vec3{X: 0.5, Y: 0.6, Z: 0.7}).
		Mul(RotateX(Pi)).
		Mul(UniformScale(0.2))
	lightShape := NewRectangle(lightTransform, NewDiffuseBSDF(NewConstTexture(Spectrum{})))
	areaLight := NewAreaLight(lightShape, Spectrum{X: 10, Y: 10, Z: 10})
	lightShape.Light = areaLight
	shapes = append(shapes, lightShape)

	scene := NewScene(shapes, []Light{areaLight}, camera)
	scene.BuildAccelerationTree()
	return scene
}

// NewDielectricSpheresScene is the Cornell box plus two glass spheres,
// matching pbr/dielectric/main.cpp: one small sphere at (0,-0.5,0) and a
// larger one at (-0.3,0.4,-0.5).
func NewDielectricSpheresScene(width, height int) *Scene {
	scene := NewCornellBoxScene(width, height)

	glass := NewDielectricBSDF(1.5)
	scene.Shapes = append(scene.Shapes,
		NewSphere(Point3{X: 0, Y: -0.5, Z: 0}, 0.2, glass),
		NewSphere(Point3{X: -0.3, Y: 0.4, Z: -0.5}, 0.3, glass),
	)
	scene.BuildAccelerationTree()
	return scene
}

// NewPointLightScene drops the area light and instead scatters count
// random point lights through the box interior, matching
// pbr/pointlight/main.cpp.
func NewPointLightScene(width, height int, count int, rng *rand.Rand) *Scene {
	camera := NewCamera(
		Point3{X: -3.5, Y: 0, Z: 0},
		Point3{X: 1, Y: 0, Z: 0},
		Vec3{X: 0, Y: 0, Z: 1},
		width, height, 60, 0.01, 100,
	)

	white := Spectrum{X: 1, Y: 1, Z: 1}
	reddish := Spectrum{X: 1, Y: 0.3, Z: 0.3}
	greenish := Spectrum{X: 0.3, Y: 1.0, Z: 0.3}

	shapes := cornellWalls(white, reddish, greenish)

	lights := make([]Light, 0, count)
	for i := 0; i < count; i++ {
		pos := Point3{
			X: -0.8 + 1.6*rng.Float64(),
			Y: -0.8 + 1.6*rng.Float64(),
			Z: -0.8 + 1.6*rng.Float64(),
		}
		intensity := Spectrum{X: rng.Float64(), Y: rng.Float64(), Z: rng.Float64()}.Scale(0.5)
		lights = append(lights, NewPointLight(pos, intensity))
	}

	scene := NewScene(shapes, lights, camera)
	scene.BuildAccelerationTree()
	return scene
}
