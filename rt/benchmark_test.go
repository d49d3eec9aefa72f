package rt

import (
	"context"
	"fmt"
	"runtime"
	"testing"
	"time"
)

// Benchmark utilities for performance testing.

type BenchmarkConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Iterations      int
}

func DefaultBenchmarkConfig() *BenchmarkConfig {
	return &BenchmarkConfig{
		Width:           320,
		Height:          180,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		Iterations:      1,
	}
}

type BenchmarkResult struct {
	Name         string
	Duration     time.Duration
	PixelsPerSec float64
	RaysPerSec   float64
	MemoryUsed   uint64
	Allocations  uint64
}

func RunBenchmark(name string, fn func()) *BenchmarkResult {
	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	ResetRenderStats()

	start := time.Now()
	fn()
	duration := time.Since(start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	rays := GlobalRenderStats.RayCount.Load()

	return &BenchmarkResult{
		Name:        name,
		Duration:    duration,
		RaysPerSec:  float64(rays) / duration.Seconds(),
		MemoryUsed:  memAfter.TotalAlloc - memBefore.TotalAlloc,
		Allocations: memAfter.Mallocs - memBefore.Mallocs,
	}
}

func (r *BenchmarkResult) Print() {
	fmt.Printf("\n=== Benchmark: %s ===\n", r.Name)
	fmt.Printf("  Duration:       %s\n", FormatDuration(r.Duration))
	fmt.Printf("  Rays/sec:       %.2f M\n", r.RaysPerSec/1_000_000)
	fmt.Printf("  Memory used:    %s\n", formatBytes(r.MemoryUsed))
	fmt.Printf("  Allocations:    %d\n", r.Allocations)
	fmt.Println()
}

func BenchmarkRayAABBIntersection(b *testing.B) {
	ray := NewRay(Point3{X: 0, Y: 0, Z: 0}, Vec3{X: 1, Y: 1, Z: 1}, 0)
	aabb := AABB{
		X: NewInterval(-1, 1),
		Y: NewInterval(-1, 1),
		Z: NewInterval(-1, 1),
	}
	interval := NewInterval(0.001, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		aabb.Hit(ray, interval)
	}
}

func BenchmarkVec3Operations(b *testing.B) {
	v1 := Vec3{X: 1.0, Y: 2.0, Z: 3.0}
	v2 := Vec3{X: 4.0, Y: 5.0, Z: 6.0}

	b.Run("Add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v1.Add(v2)
		}
	})

	b.Run("Dot", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Dot(v1, v2)
		}
	})

	b.Run("Cross", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Cross(v1, v2)
		}
	})

	b.Run("Normalize", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v1.Unit()
		}
	})
}

func benchmarkSpheres(n int) []Shape {
	shapes := make([]Shape, n)
	diffuse := NewDiffuseBSDF(NewConstTexture(Spectrum{X: 0.5, Y: 0.5, Z: 0.5}))
	for i := 0; i < n; i++ {
		center := Point3{
			X: RandomDoubleRange(-10, 10),
			Y: RandomDoubleRange(-10, 10),
			Z: RandomDoubleRange(-10, 10),
		}
		shapes[i] = NewSphere(center, 0.5, diffuse)
	}
	return shapes
}

func BenchmarkBVHConstruction(b *testing.B) {
	shapes := benchmarkSpheres(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewBVH(shapes)
	}
}

func BenchmarkRayTracing(b *testing.B) {
	scene := NewCornellBoxScene(64, 64)
	integrator := NewDirectRadianceIntegrator(1, 1, 1)
	sampler := NewIndependentSampler(1, 1)

	ray := scene.Camera.SampleRay(float64(scene.Camera.Width)/2, float64(scene.Camera.Height)/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = integrator.sample(scene, ray, sampler)
	}
}

// QuickBenchmark runs a quick performance test with minimal settings.
func QuickBenchmark() *BenchmarkResult {
	fmt.Println("Running quick benchmark...")

	width, height := 160, 90
	scene := NewCornellBoxScene(width, height)
	integrator := NewDirectRadianceIntegrator(1, 1, 1)
	sampler := NewIndependentSampler(1, 1)

	result := RunBenchmark("QuickBenchmark", func() {
		_, _ = RenderToImage(context.Background(), scene, integrator, sampler)
	})

	result.PixelsPerSec = float64(width*height) / result.Duration.Seconds()
	return result
}

func BenchmarkBVHTraversal(b *testing.B) {
	shapes := benchmarkSpheres(1000)
	bvh := NewBVH(shapes)

	rays := make([]Ray, 100)
	for i := range rays {
		origin := Point3{X: RandomDoubleRange(-15, 15), Y: RandomDoubleRange(-15, 15), Z: RandomDoubleRange(-15, 15)}
		target := Point3{X: RandomDoubleRange(-5, 5), Y: RandomDoubleRange(-5, 5), Z: RandomDoubleRange(-5, 5)}
		dir := target.Sub(origin).Unit()
		rays[i] = NewRay(origin, dir, 0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ray := rays[i%len(rays)]
		bvh.PreliminaryHit(ray)
	}
}
