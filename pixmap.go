package dither

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular RGBA8 pixel buffer in row-major order,
// row 0 at the top. A pixel with alpha 0 has never been drawn.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new, fully transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

func (p *Pixmap) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel paints one opaque pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if !p.inside(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c[0]
	p.data[i+1] = c[1]
	p.data[i+2] = c[2]
	p.data[i+3] = 255
}

// GetPixel returns the color at (x, y) and whether anything was drawn there.
func (p *Pixmap) GetPixel(x, y int) (RGB, bool) {
	if !p.inside(x, y) {
		return RGB{}, false
	}
	i := (y*p.width + x) * 4
	if p.data[i+3] == 0 {
		return RGB{}, false
	}
	return RGB{p.data[i+0], p.data[i+1], p.data[i+2]}, true
}

// FillRect paints the half-open pixel rectangle [x0,x1) × [y0,y1),
// clipped to the pixmap.
func (p *Pixmap) FillRect(x0, y0, x1, y1 int, c RGB) {
	x0, x1 = max(x0, 0), min(x1, p.width)
	y0, y1 = max(y0, 0), min(y1, p.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := (y*p.width + x) * 4
			p.data[i+0] = c[0]
			p.data[i+1] = c[1]
			p.data[i+2] = c[2]
			p.data[i+3] = 255
		}
	}
}

// Clear resets every pixel to transparent (undrawn).
func (p *Pixmap) Clear() {
	clear(p.data)
}

// ToImage converts the pixmap to an image.RGBA. Undrawn pixels are
// rendered over the given background.
func (p *Pixmap) ToImage(background RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i+3] == 0 {
			img.Pix[i+0] = background[0]
			img.Pix[i+1] = background[1]
			img.Pix[i+2] = background[2]
			img.Pix[i+3] = 255
		}
	}
	return img
}

// SavePNG saves the pixmap to a PNG file, undrawn pixels white.
func (p *Pixmap) SavePNG(path string) error {
	return savePNG(path, p.ToImage(White))
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.inside(x, y) {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
