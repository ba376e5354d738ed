// Package label draws short captions onto images.
//
// Glyphs are rasterised with golang.org/x/image using the embedded Go
// Regular font; widths come from HarfBuzz shaping in go-text/typesetting
// so centred captions line up with what the shaper would produce.
package label

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Face is a caption font at a fixed pixel size. A Face is not safe for
// concurrent use.
type Face struct {
	size   float64
	face   font.Face
	shaper shaping.HarfbuzzShaper
	gtFont *gtfont.Font
}

// New loads Go Regular at the given pixel size.
func New(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("label: invalid size %v", size)
	}

	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("label: parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("label: new face: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("label: parse font for shaping: %w", err)
	}

	return &Face{size: size, face: face, gtFont: gtFace.Font}, nil
}

// Close releases the rasteriser face.
func (f *Face) Close() error {
	return f.face.Close()
}

// Height returns the line height in pixels.
func (f *Face) Height() int {
	return f.face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// Measure returns the shaped advance of s in pixels.
func (f *Face) Measure(s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: Direction(s),
		Face:      gtfont.NewFace(f.gtFont),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	adv := out.Advance
	if adv < 0 {
		adv = -adv
	}
	return adv.Ceil()
}

// Draw renders s with its baseline starting at (x, baseline).
func (f *Face) Draw(dst draw.Image, s string, x, baseline int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// DrawCentered renders s centred on cx within a line whose top is at top.
func (f *Face) DrawCentered(dst draw.Image, s string, cx, top int, c color.Color) {
	f.Draw(dst, s, cx-f.Measure(s)/2, top+f.Ascent(), c)
}

// Direction returns the base direction of s: right-to-left when its
// first bidi run is RTL, left-to-right otherwise.
func Direction(s string) di.Direction {
	if s == "" {
		return di.DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(s); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
