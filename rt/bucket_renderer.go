package rt

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Bucket is a rectangular tile of the image assigned to one worker.
type Bucket struct {
	X, Y          int
	Width, Height int
}

// BucketRenderer renders a scene through a MonteCarloRadianceIntegrator in
// spiral-ordered tiles across three progressively refining passes
// (1spp preview, quarter-spp medium, full-spp final), matching the
// teacher's BucketRenderer but driving Scene/Image/Sampler instead of a
// direct Hittable/Camera.RayColor call.
type BucketRenderer struct {
	scene          *Scene
	integrator     *MonteCarloRadianceIntegrator
	baseSampler    Sampler
	image          *Image
	framebuffer    *image.RGBA
	buckets        []Bucket
	completedCount atomic.Int32
	totalBuckets   int
	bucketSize     int
	completed      bool
	renderStart    time.Time
	renderEnd      time.Time
	numWorkers     int
	renderStarted  bool
	currentPass    int
	totalPasses    int
	passComplete   atomic.Bool
	mu             sync.Mutex
}

func NewBucketRenderer(scene *Scene, integrator *MonteCarloRadianceIntegrator, sampler Sampler, bucketSize, numWorkers int) *BucketRenderer {
	width, height := scene.Camera.Width, scene.Camera.Height
	buckets := generateBuckets(width, height, bucketSize)

	return &BucketRenderer{
		scene:        scene,
		integrator:   integrator,
		baseSampler:  sampler,
		image:        NewImage(width, height),
		framebuffer:  image.NewRGBA(image.Rect(0, 0, width, height)),
		buckets:      buckets,
		totalBuckets: len(buckets),
		bucketSize:   bucketSize,
		renderStart:  time.Now(),
		numWorkers:   numWorkers,
		totalPasses:  3, // preview (1spp) + medium (spp/4) + final (full spp)
	}
}

// generateBuckets lays out a grid of tiles and sorts them by distance
// from the image center, so the live preview fills outward in a spiral
// the way interactive renderers (V-Ray, Arnold) traditionally do.
func generateBuckets(width, height, bucketSize int) []Bucket {
	var buckets []Bucket
	for y := 0; y < height; y += bucketSize {
		for x := 0; x < width; x += bucketSize {
			bw := min(bucketSize, width-x)
			bh := min(bucketSize, height-y)
			buckets = append(buckets, Bucket{X: x, Y: y, Width: bw, Height: bh})
		}
	}

	centerX, centerY := width/2, height/2
	type bucketDist struct {
		bucket Bucket
		dist   float64
	}
	bucketDistances := make([]bucketDist, len(buckets))
	for i, b := range buckets {
		dx := float64(b.X + b.Width/2 - centerX)
		dy := float64(b.Y + b.Height/2 - centerY)
		bucketDistances[i] = bucketDist{bucket: b, dist: dx*dx + dy*dy}
	}
	sort.Slice(bucketDistances, func(i, j int) bool {
		return bucketDistances[i].dist < bucketDistances[j].dist
	})

	sorted := make([]Bucket, len(buckets))
	for i, bd := range bucketDistances {
		sorted[i] = bd.bucket
	}
	return sorted
}

func (r *BucketRenderer) Update() error {
	if r.completed {
		return nil
	}

	r.mu.Lock()
	if !r.renderStarted {
		r.renderStarted = true
		r.mu.Unlock()
		go r.renderPass()
	} else {
		r.mu.Unlock()
	}

	if r.passComplete.Load() && r.currentPass < r.totalPasses {
		r.passComplete.Store(false)
		r.completedCount.Store(0)
		r.currentPass++

		if r.currentPass < r.totalPasses {
			go r.renderPass()
		} else {
			r.completed = true
			r.renderEnd = time.Now()
			r.drawStatsToFramebuffer()
			_ = r.SaveImage("image.png")
			PrintRenderStats(r.renderEnd.Sub(r.renderStart), r.scene.Camera.Width, r.scene.Camera.Height)
		}
	}

	return nil
}

func (r *BucketRenderer) passSampleCount() int {
	full := r.integrator.SamplesPerPixel
	switch r.currentPass {
	case 0:
		return 1
	case 1:
		return max(1, full/4)
	default:
		return full
	}
}

func (r *BucketRenderer) renderPass() {
	samplesForPass := r.passSampleCount()

	bucketChan := make(chan Bucket, r.numWorkers*2)
	var wg sync.WaitGroup
	for i := 0; i < r.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			workerSampler := r.baseSampler.Clone()
			for bucket := range bucketChan {
				r.renderBucket(bucket, samplesForPass, workerSampler)
				r.completedCount.Add(1)
			}
		}()
	}

	for _, bucket := range r.buckets {
		bucketChan <- bucket
	}
	close(bucketChan)
	wg.Wait()

	r.passComplete.Store(true)
}

func (r *BucketRenderer) renderBucket(bucket Bucket, samplesPerPixel int, sampler Sampler) {
	width := r.scene.Camera.Width
	localColors := make([]Spectrum, bucket.Width*bucket.Height)

	for localY := 0; localY < bucket.Height; localY++ {
		for localX := 0; localX < bucket.Width; localX++ {
			globalX := bucket.X + localX
			globalY := bucket.Y + localY

			sampler.Seed(uint64(globalY*width + globalX))
			sum := Spectrum{}
			for s := 0; s < samplesPerPixel; s++ {
				jitter := sampler.Next2D()
				ray := r.scene.Camera.SampleRay(float64(globalX)+jitter.X, float64(globalY)+jitter.Y)
				sum = sum.Add(r.integrator.Sample(r.scene, ray, sampler))
				GlobalRenderStats.SamplesComputed.Add(1)
			}
			localColors[localY*bucket.Width+localX] = sum.Scale(1 / float64(samplesPerPixel))
			GlobalRenderStats.PixelsRendered.Add(1)
		}
	}

	r.mu.Lock()
	for localY := 0; localY < bucket.Height; localY++ {
		for localX := 0; localX < bucket.Width; localX++ {
			globalX := bucket.X + localX
			globalY := bucket.Y + localY
			v := localColors[localY*bucket.Width+localX]
			r.image.SetValue(globalX, globalY, v)
			r.framebuffer.Set(globalX, globalY, spectrumToRGBA(v))
		}
	}
	r.mu.Unlock()
}

func (r *BucketRenderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	screen.WritePixels(r.framebuffer.Pix)
	r.mu.Unlock()
	r.drawRenderSettings(screen)
}

func (r *BucketRenderer) drawRenderSettings(screen *ebiten.Image) {
	width, height := r.scene.Camera.Width, r.scene.Camera.Height
	completedBuckets := int(r.completedCount.Load())
	progress := float64(completedBuckets) / float64(r.totalBuckets) * 100.0
	if r.completed {
		progress = 100.0
	}

	var elapsed time.Duration
	if r.completed {
		elapsed = r.renderEnd.Sub(r.renderStart)
	} else {
		elapsed = time.Since(r.renderStart)
	}

	barHeight := 30
	barY := height - barHeight
	bgColor := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	r.mu.Lock()
	for py := barY; py < height; py++ {
		for px := 0; px < width; px++ {
			r.framebuffer.Set(px, py, bgColor)
		}
	}
	r.mu.Unlock()

	textY := barY + 10
	spacing := 15

	passName := "RENDERING"
	switch r.currentPass {
	case 0:
		passName = "PREVIEW"
	case 1:
		passName = "REFINING"
	case 2:
		passName = "FINAL"
	}

	status := fmt.Sprintf("%s | Buckets: %d/%d", passName, completedBuckets, r.totalBuckets)
	if r.completed {
		status = "COMPLETED"
	}

	statsText := fmt.Sprintf("%dx%d | Pass:%d/%d | %.1f%% | %s | %s",
		width, height,
		min(r.currentPass+1, r.totalPasses), r.totalPasses,
		progress, FormatDuration(elapsed), status,
	)

	ebitenutil.DebugPrintAt(screen, statsText, spacing, textY)
}

func (r *BucketRenderer) drawStatsToFramebuffer() {
	width, height := r.scene.Camera.Width, r.scene.Camera.Height
	elapsed := r.renderEnd.Sub(r.renderStart)

	barHeight := 30
	barY := height - barHeight
	bgColor := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	for py := barY; py < height; py++ {
		for px := 0; px < width; px++ {
			r.framebuffer.Set(px, py, bgColor)
		}
	}

	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	face := text.NewGoXFace(basicfont.Face7x13)

	statsText := fmt.Sprintf("%dx%d | 100.0%% | %s | Workers: %d",
		width, height, FormatDuration(elapsed), r.numWorkers)

	tempImg := ebiten.NewImageFromImage(r.framebuffer)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(15, float64(barY+10))
	opts.ColorScale.ScaleWithColor(textColor)
	text.Draw(tempImg, statsText, face, opts)
	tempImg.ReadPixels(r.framebuffer.Pix)
}

func (r *BucketRenderer) Layout(w, h int) (int, int) {
	return r.scene.Camera.Width, r.scene.Camera.Height
}

func (r *BucketRenderer) SaveImage(filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating image file: %w", err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not close file '%s': %v\n", filename, err)
		}
	}(file)

	if err := png.Encode(file, r.framebuffer); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}

	fmt.Printf("\nImage saved to %s\n", filename)
	return nil
}

func (r *BucketRenderer) IsCompleted() bool { return r.completed }

func (r *BucketRenderer) GetRenderDuration() time.Duration {
	if r.completed {
		return r.renderEnd.Sub(r.renderStart)
	}
	return time.Since(r.renderStart)
}

// ensure context import is exercised by a headless bucket render helper,
// mirroring RenderToImage's role for the scanline renderer.
func RenderBucketsToImage(ctx context.Context, scene *Scene, integrator *MonteCarloRadianceIntegrator, sampler Sampler, bucketSize, numWorkers int) (*Image, error) {
	br := NewBucketRenderer(scene, integrator, sampler, bucketSize, numWorkers)
	br.currentPass = br.totalPasses - 1
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	br.renderPass()
	return br.image, nil
}
