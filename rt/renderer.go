package rt

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// FormatDuration renders a duration the way the render HUD wants it:
// sub-second durations in milliseconds, everything else to one decimal
// of seconds.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// PrintRenderStats prints a one-line summary of a completed render to
// stdout, followed by the full profiler breakdown of ray/sample counters.
func PrintRenderStats(renderTime time.Duration, width, height int) {
	fmt.Printf("\nRendered %dx%d in %s\n", width, height, FormatDuration(renderTime))
	PrintRenderStatsReport(GlobalRenderStats, renderTime)
}

// ProgressiveRenderer drives a RadianceIntegrator across an ebiten game
// loop, rendering one scanline per Update call so the live preview fills
// in top-to-bottom. Ported from the teacher's scanline ProgressiveRenderer,
// adapted to render through Scene/RadianceIntegrator/Image instead of a
// direct Hittable/Camera.RayColor call. Only a *MonteCarloRadianceIntegrator
// produces radiance here; for any other RadianceIntegrator (including the
// Direct/Path integrators, which embed it) every pixel stays black.
type ProgressiveRenderer struct {
	scene       *Scene
	integrator  RadianceIntegrator
	sampler     Sampler
	image       *Image
	framebuffer *image.RGBA
	currentRow  int
	completed   bool
	renderStart time.Time
	renderEnd   time.Time
}

func NewProgressiveRenderer(scene *Scene, integrator RadianceIntegrator, sampler Sampler) *ProgressiveRenderer {
	width, height := scene.Camera.Width, scene.Camera.Height
	return &ProgressiveRenderer{
		scene:       scene,
		integrator:  integrator,
		sampler:     sampler,
		image:       NewImage(width, height),
		framebuffer: image.NewRGBA(image.Rect(0, 0, width, height)),
		renderStart: time.Now(),
	}
}

func (r *ProgressiveRenderer) Update() error {
	_, height := r.scene.Camera.Width, r.scene.Camera.Height
	if r.currentRow < height {
		r.renderScanline(r.currentRow)
		r.currentRow++
		if r.currentRow >= height && !r.completed {
			r.completed = true
			r.renderEnd = time.Now()
			r.drawStatsToFramebuffer()
			_ = r.SaveImage("image.png")
			PrintRenderStats(r.renderEnd.Sub(r.renderStart), r.scene.Camera.Width, r.scene.Camera.Height)
		}
	}
	return nil
}

func (r *ProgressiveRenderer) Draw(screen *ebiten.Image) {
	screen.WritePixels(r.framebuffer.Pix)
	r.drawRenderSettings(screen)
}

func (r *ProgressiveRenderer) Layout(w, h int) (int, int) {
	return r.scene.Camera.Width, r.scene.Camera.Height
}

func (r *ProgressiveRenderer) renderScanline(y int) {
	width := r.scene.Camera.Width
	rowSampler := r.sampler.Clone()
	mc, ok := r.integrator.(*MonteCarloRadianceIntegrator)
	samplesPerPixel := 1
	if ok {
		samplesPerPixel = mc.SamplesPerPixel
	}

	for x := 0; x < width; x++ {
		rowSampler.Seed(uint64(y*width + x))
		sum := Spectrum{}
		for s := 0; s < samplesPerPixel; s++ {
			jitter := rowSampler.Next2D()
			ray := r.scene.Camera.SampleRay(float64(x)+jitter.X, float64(y)+jitter.Y)
			if ok {
				sum = sum.Add(mc.Sample(r.scene, ray, rowSampler))
			}
			GlobalRenderStats.SamplesComputed.Add(1)
		}
		r.image.SetValue(x, y, sum.Scale(1/float64(samplesPerPixel)))
		r.framebuffer.Set(x, y, spectrumToRGBA(r.image.GetValue(x, y)))
		GlobalRenderStats.PixelsRendered.Add(1)
	}
}

func spectrumToRGBA(s Spectrum) color.RGBA {
	return color.RGBA{
		R: uint8(255 * GammaEncode(s.X)),
		G: uint8(255 * GammaEncode(s.Y)),
		B: uint8(255 * GammaEncode(s.Z)),
		A: 255,
	}
}

func (r *ProgressiveRenderer) drawRenderSettings(screen *ebiten.Image) {
	width, height := r.scene.Camera.Width, r.scene.Camera.Height
	progress := float64(r.currentRow) / float64(height) * 100.0
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
	for py := barY; py < height; py++ {
		for px := 0; px < width; px++ {
			r.framebuffer.Set(px, py, bgColor)
		}
	}

	textY := barY + 10
	spacing := 15

	status := fmt.Sprintf("Scanline: %d/%d", r.currentRow, height)
	if r.completed {
		status = "COMPLETED"
	}

	statsText := fmt.Sprintf("%dx%d | %.1f%% | %s | %s",
		width, height, progress, FormatDuration(elapsed), status)

	ebitenutil.DebugPrintAt(screen, statsText, spacing, textY)
}

func (r *ProgressiveRenderer) drawStatsToFramebuffer() {
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

	statsText := fmt.Sprintf("%dx%d | 100.0%% | %s", width, height, FormatDuration(elapsed))

	tempImg := ebiten.NewImageFromImage(r.framebuffer)
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(15, float64(barY+10))
	opts.ColorScale.ScaleWithColor(textColor)
	text.Draw(tempImg, statsText, face, opts)
	tempImg.ReadPixels(r.framebuffer.Pix)
}

func (r *ProgressiveRenderer) SaveImage(filename string) error {
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

func (r *ProgressiveRenderer) IsCompleted() bool { return r.completed }

func (r *ProgressiveRenderer) GetRenderDuration() time.Duration {
	if r.completed {
		return r.renderEnd.Sub(r.renderStart)
	}
	return time.Since(r.renderStart)
}

// RenderToImage runs integrator to completion against scene without any
// live preview, for headless (non-ebiten) use such as batch CLI renders.
func RenderToImage(ctx context.Context, scene *Scene, integrator RadianceIntegrator, sampler Sampler) (*Image, error) {
	img := NewImage(scene.Camera.Width, scene.Camera.Height)
	start := time.Now()
	_, err := integrator.Render(ctx, scene, img, sampler)
	if err != nil {
		return nil, err
	}
	PrintRenderStats(time.Since(start), scene.Camera.Width, scene.Camera.Height)
	return img, nil
}
