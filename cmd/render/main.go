// Command render drives the physically-based path tracer over one of a
// handful of built-in demo scenes, either as a live ebiten preview window
// or headless to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vislab/pathtracer/rt"
)

func main() {
	width := flag.Int("width", 128, "image width in pixels")
	height := flag.Int("height", 128, "image height in pixels")
	spp := flag.Int("spp", 512, "samples per pixel")
	maxDepth := flag.Int("depth", 8, "maximum path-tracing bounce depth")
	rouletteDepth := flag.Int("roulette-depth", 3, "bounce depth at which Russian roulette starts")
	lightSamples := flag.Int("light-samples", 1, "light samples per shading point (direct integrator)")
	bsdfSamples := flag.Int("bsdf-samples", 1, "BSDF samples per shading point (direct integrator)")
	sceneName := flag.String("scene", "cornell", "scene to render: cornell, dielectric, pointlight")
	integratorName := flag.String("integrator", "path", "radiance integrator: direct, path")
	seed := flag.Uint64("seed", 1, "base sampler seed, fixed for bit-for-bit reproducible renders")
	headless := flag.Bool("headless", false, "render without an ebiten preview window and exit")
	bucketSize := flag.Int("bucket-size", 32, "tile size used by the interactive bucket renderer")
	outFile := flag.String("out", "image.png", "PNG path written on completion of a -headless render")

	enableProfile := flag.Bool("profile", false, "enable CPU/memory profiling")
	cpuProfile := flag.Bool("cpu-profile", true, "enable CPU profiling (requires -profile)")
	memProfile := flag.Bool("mem-profile", true, "enable memory profiling (requires -profile)")
	traceProfile := flag.Bool("trace", false, "enable execution tracing (requires -profile)")
	blockProfile := flag.Bool("block-profile", false, "enable block profiling (requires -profile)")
	profileDir := flag.String("profile-dir", "profiles", "directory to save profile files")
	showMemStats := flag.Bool("mem-stats", false, "print memory statistics after render")

	flag.Parse()

	profileConfig := &rt.ProfileConfig{
		Enabled:      *enableProfile,
		CPUProfile:   *cpuProfile,
		MemProfile:   *memProfile,
		TraceEnabled: *traceProfile,
		BlockProfile: *blockProfile,
		OutputDir:    *profileDir,
		SampleRate:   100,
	}
	profiler := rt.NewProfiler(profileConfig)

	if *enableProfile {
		fmt.Println("profiling enabled")
		if err := profiler.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to start profiler: %v\n", err)
			os.Exit(1)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			fmt.Println("\ninterrupt received, saving profiles...")
			profiler.Stop()
			profiler.PrintTimingReport()
			if *showMemStats {
				rt.PrintMemStats()
			}
			os.Exit(0)
		}()
	}

	rt.ResetRenderStats()

	scene, err := loadScene(*sceneName, *width, *height, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v. Use -help for options.\n", err)
		os.Exit(1)
	}

	bvhTimer := rt.NewTimer("BVH construction")
	scene.BuildAccelerationTree()
	bvhTime := bvhTimer.Stop()
	rt.GlobalRenderStats.BVHConstructTime = bvhTime

	integrator, err := loadIntegrator(*integratorName, *spp, *maxDepth, *rouletteDepth, *lightSamples, *bsdfSamples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v. Use -help for options.\n", err)
		os.Exit(1)
	}

	fmt.Printf("scene=%s integrator=%s %dx%d spp=%d\n", *sceneName, *integratorName, *width, *height, *spp)

	sampler := rt.NewIndependentSampler(*seed, *spp)

	if *headless {
		img, err := rt.RenderToImage(context.Background(), scene, integrator, sampler)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			os.Exit(1)
		}
		if err := savePNG(img, *outFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("image saved to %s\n", *outFile)
	} else {
		numWorkers := runtime.NumCPU()
		renderer := rt.NewBucketRenderer(scene, integrator, sampler, *bucketSize, numWorkers)

		ebiten.SetWindowSize(scene.Camera.Width, scene.Camera.Height)
		ebiten.SetWindowTitle("pathtracer")

		if err := ebiten.RunGame(renderer); err != nil {
			panic(err)
		}
	}

	if *enableProfile {
		profiler.Stop()
		profiler.PrintTimingReport()
	}
	if *showMemStats {
		rt.PrintMemStats()
	}
}

func loadScene(name string, width, height int, seed uint64) (*rt.Scene, error) {
	switch strings.ToLower(name) {
	case "cornell", "cornell-box":
		return rt.NewCornellBoxScene(width, height), nil
	case "dielectric", "dielectric-spheres", "glass":
		return rt.NewDielectricSpheresScene(width, height), nil
	case "pointlight", "point-light", "point-lights":
		rng := rand.New(rand.NewSource(int64(seed)))
		return rt.NewPointLightScene(width, height, 10, rng), nil
	default:
		return nil, fmt.Errorf("unknown scene: %s", name)
	}
}

func loadIntegrator(name string, spp, maxDepth, rouletteDepth, lightSamples, bsdfSamples int) (*rt.MonteCarloRadianceIntegrator, error) {
	switch strings.ToLower(name) {
	case "direct":
		i := rt.NewDirectRadianceIntegrator(spp, lightSamples, bsdfSamples)
		return &i.MonteCarloRadianceIntegrator, nil
	case "path":
		i := rt.NewPathRadianceIntegrator(spp, maxDepth, rouletteDepth)
		return &i.MonteCarloRadianceIntegrator, nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

func savePNG(img *rt.Image, path string) error {
	width, height := img.GetResolution()
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return rt.EncodePNG(out, width, height, img.ToRGBA())
}
