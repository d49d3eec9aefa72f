package rt

import (
	"image"
	"image/png"
	"io"
	"math"
)

// Image is the integrator's render target: a 2D array of linear radiance
// values written once per pixel by (possibly concurrent) render workers.
// Since every pixel is owned by exactly one goroutine for the whole
// render, no locking is needed around SetValue - only the final
// ToRGBA pass (run after all workers join) reads across pixels.
type Image struct {
	Width, Height int
	pixels        []Spectrum
}

func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, pixels: make([]Spectrum, width*height)}
}

func (img *Image) SetValue(x, y int, v Spectrum) {
	img.pixels[y*img.Width+x] = v
}

func (img *Image) GetValue(x, y int) Spectrum {
	return img.pixels[y*img.Width+x]
}

func (img *Image) SetZero() {
	for i := range img.pixels {
		img.pixels[i] = Spectrum{}
	}
}

func (img *Image) GetResolution() (int, int) {
	return img.Width, img.Height
}

// GammaEncode applies the display tone-map x <- clamp(x^(1/2.2), 0, 1),
// matching monte_carlo_radiance_integrator.cpp's final encoding step.
func GammaEncode(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return Clamp(math.Pow(x, 1/2.2), 0, 1)
}

// ToRGBA converts the whole image to 8-bit sRGB-ish bytes via GammaEncode,
// the shape png.Encode / ebiten.Image.WritePixels expect.
func (img *Image) ToRGBA() []byte {
	out := make([]byte, 4*len(img.pixels))
	for i, p := range img.pixels {
		out[4*i+0] = byte(255 * GammaEncode(p.X))
		out[4*i+1] = byte(255 * GammaEncode(p.Y))
		out[4*i+2] = byte(255 * GammaEncode(p.Z))
		out[4*i+3] = 255
	}
	return out
}

// EncodePNG writes width x height interleaved RGBA bytes (as returned by
// Image.ToRGBA) to w as a PNG, for headless CLI renders that skip the
// ebiten preview window entirely.
func EncodePNG(w io.Writer, width, height int, rgba []byte) error {
	img := &image.RGBA{
		Pix:    rgba,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return png.Encode(w, img)
}
