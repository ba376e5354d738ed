package dither

import (
	"fmt"
	"image"
)

// Config describes the output texture. The canvas is sized separately.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the 255×100 texture configuration.
func DefaultConfig() Config {
	return Config{Width: 0xff, Height: 100}
}

// Validate reports whether both dimensions are positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Texture is a width × height grid of 8-bit intensities addressed by
// (x, y), stored row-major.
type Texture struct {
	width  int
	height int
	pix    []uint8
}

// NewTexture allocates a zeroed texture of the configured size.
func NewTexture(cfg Config) (*Texture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Texture{
		width:  cfg.Width,
		height: cfg.Height,
		pix:    make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Width returns the texture width.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height.
func (t *Texture) Height() int { return t.height }

// Pix returns the row-major backing slice.
func (t *Texture) Pix() []uint8 { return t.pix }

// Contains reports whether (x, y) addresses a cell.
func (t *Texture) Contains(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// At returns the value at (x, y), or 0 outside the texture.
func (t *Texture) At(x, y int) uint8 {
	if !t.Contains(x, y) {
		return 0
	}
	return t.pix[y*t.width+x]
}

// Set writes v at (x, y).
func (t *Texture) Set(x, y int, v uint8) error {
	if !t.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d texture", ErrOutOfBounds, x, y, t.width, t.height)
	}
	t.pix[y*t.width+x] = v
	return nil
}

// Fill sets every cell to v.
func (t *Texture) Fill(v uint8) {
	for i := range t.pix {
		t.pix[i] = v
	}
}

// Clone returns a deep copy.
func (t *Texture) Clone() *Texture {
	c := &Texture{width: t.width, height: t.height, pix: make([]uint8, len(t.pix))}
	copy(c.pix, t.pix)
	return c
}

// Gray returns the texture as an image.Gray, x to the right and y down.
func (t *Texture) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, t.width, t.height))
	copy(img.Pix, t.pix)
	return img
}

// SavePNG writes the texture as a grayscale PNG.
func (t *Texture) SavePNG(path string) error {
	return savePNG(path, t.Gray())
}
