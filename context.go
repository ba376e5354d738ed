package dither

import (
	"image"
	"io"
	"math"
)

// DefaultBackground is the intensity reported for points where nothing
// has been drawn: the white background of the canvas.
const DefaultBackground uint8 = 0xff

// Context is the drawing context for the gradient canvas.
// It owns a Pixmap and maps world coordinates onto it: one unit per
// pixel, origin at the bottom-left corner, Y growing upward.
// Context implements io.Closer; drawing on a closed Context is a no-op.
type Context struct {
	width      int
	height     int
	pixmap     *Pixmap
	background uint8
	closed     bool
}

var (
	_ io.Closer = (*Context)(nil)
	_ Sampler   = (*Context)(nil)
)

// NewContext creates a drawing context with the given pixel dimensions.
//
//	dc := dither.NewContext(255, 50)
//	defer dc.Close()
//	dc.DrawGradient(dither.Columns(0, 255), 100, 100, dither.GrayRamp)
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	width, height = max(width, 0), max(height, 0)

	pixmap := options.pixmap
	if pixmap == nil || pixmap.Width() != width || pixmap.Height() != height {
		pixmap = NewPixmap(width, height)
	}

	Logger().Debug("context created", "width", width, "height", height)

	return &Context{
		width:      width,
		height:     height,
		pixmap:     pixmap,
		background: options.background,
	}
}

// Width returns the width of the context in pixels.
func (dc *Context) Width() int {
	return dc.width
}

// Height returns the height of the context in pixels.
func (dc *Context) Height() int {
	return dc.height
}

// Pixmap returns the backing frame buffer.
func (dc *Context) Pixmap() *Pixmap {
	return dc.pixmap
}

// fillWorld paints the world rectangle [x0,x1) × [y0,y1).
func (dc *Context) fillWorld(x0, y0, x1, y1 int, c RGB) {
	if dc.closed {
		Logger().Warn("draw on closed context")
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	dc.pixmap.FillRect(x0, dc.height-y1, x1, dc.height-y0, c)
}

// DrawPixel fills the square [x·s, x·s+s) × [y·s, y·s+s) where s is
// pixelSize. A pixelSize below 1 is treated as 1.
func (dc *Context) DrawPixel(x, y int, c RGB, pixelSize int) {
	s := max(pixelSize, 1)
	dc.fillWorld(x*s, y*s, x*s+s, y*s+s, c)
}

// FillStrip fills a unit-wide vertical strip at column x, starting at
// top and extending height units downward. A negative height extends
// upward instead.
func (dc *Context) FillStrip(x, top, height int, c RGB) {
	dc.fillWorld(x, top-height, x+1, top, c)
}

// DrawGradient draws one strip per column in xs, colored by gen.
func (dc *Context) DrawGradient(xs []int, top, height int, gen func(x int) RGB) {
	for _, x := range xs {
		dc.FillStrip(x, top, height, gen(x))
	}
}

// Columns returns the column positions [start, end).
func Columns(start, end int) []int {
	if end <= start {
		return nil
	}
	xs := make([]int, 0, end-start)
	for x := start; x < end; x++ {
		xs = append(xs, x)
	}
	return xs
}

// Sample returns the red channel of the pixel covering world point
// (x, y). Points outside the canvas, undrawn pixels, NaN coordinates
// and closed contexts all yield the background value.
func (dc *Context) Sample(x, y float64) uint8 {
	if dc.closed {
		return dc.background
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return dc.background
	}
	if x < 0 || y < 0 || x >= float64(dc.width) || y >= float64(dc.height) {
		return dc.background
	}
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))

	c, ok := dc.pixmap.GetPixel(ix, dc.height-1-iy)
	if !ok {
		return dc.background
	}
	return GetR(c)
}

// Clear erases everything drawn so far.
func (dc *Context) Clear() {
	dc.pixmap.Clear()
}

// Image returns the canvas as an opaque image, undrawn pixels filled
// with the background intensity.
func (dc *Context) Image() *image.RGBA {
	return dc.pixmap.ToImage(Gray(dc.background))
}

// SavePNG writes the canvas to a PNG file.
func (dc *Context) SavePNG(path string) error {
	return savePNG(path, dc.Image())
}

// Close ends the context lifecycle. It is safe to call more than once.
func (dc *Context) Close() error {
	if dc.closed {
		return nil
	}
	dc.closed = true
	Logger().Debug("context closed")
	return nil
}
