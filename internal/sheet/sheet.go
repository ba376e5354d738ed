// Package sheet lays out captioned, upscaled panels on one image so the
// canvas, the shaded texture and its dithered form can be compared side
// by side.
package sheet

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/dither"
	"github.com/gogpu/dither/internal/label"
	xdraw "golang.org/x/image/draw"
)

// ErrNoPanels is returned by Compose when there is nothing to lay out.
var ErrNoPanels = errors.New("sheet: no panels")

// Panel is one captioned image on the sheet.
type Panel struct {
	Title string
	Image image.Image
}

// Options control the sheet layout.
type Options struct {
	// Scale is the integer nearest-neighbour magnification. Default 4.
	Scale int
	// Padding is the gap around and between panels in pixels. Default 8;
	// negative for none.
	Padding int
	// FontSize is the caption size in pixels. Default 12.
	FontSize float64
	// Background and Foreground colors. Defaults are dark gray and white.
	Background color.Color
	Foreground color.Color
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.Padding < 0 {
		o.Padding = 0
	} else if o.Padding == 0 {
		o.Padding = 8
	}
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.Background == nil {
		o.Background = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	}
	if o.Foreground == nil {
		o.Foreground = color.White
	}
	return o
}

// Compose stacks the panels vertically, each scaled by opts.Scale and
// preceded by its centred caption.
func Compose(panels []Panel, opts Options) (*image.RGBA, error) {
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	opts = opts.withDefaults()

	face, err := label.New(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	width, height := 0, opts.Padding
	for _, p := range panels {
		b := p.Image.Bounds()
		width = max(width, b.Dx()*opts.Scale, face.Measure(p.Title))
		height += face.Height() + b.Dy()*opts.Scale + opts.Padding
	}
	width += 2 * opts.Padding

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)

	y := opts.Padding
	for _, p := range panels {
		face.DrawCentered(dst, p.Title, width/2, y, opts.Foreground)
		y += face.Height()

		b := p.Image.Bounds()
		w, h := b.Dx()*opts.Scale, b.Dy()*opts.Scale
		x := (width - w) / 2
		r := image.Rect(x, y, x+w, y+h)
		xdraw.NearestNeighbor.Scale(dst, r, p.Image, b, xdraw.Src, nil)
		y += h + opts.Padding
	}

	dither.Logger().Debug("sheet composed", "panels", len(panels), "width", width, "height", height)
	return dst, nil
}
