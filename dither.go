package dither

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gogpu/dither/internal/parallel"
)

// ditherBand is the number of texture rows handed to one worker.
const ditherBand = 16

var rowPool = sync.OnceValue(func() *parallel.Pool {
	return parallel.New(0)
})

// Levels are the two output intensities of a bilevel ditherer.
type Levels struct {
	Black uint8
	White uint8
}

// DefaultLevels returns full-range levels {0, 255}.
func DefaultLevels() Levels {
	return Levels{Black: 0, White: 255}
}

// Validate reports whether Black is below White.
func (lv Levels) Validate() error {
	if lv.Black >= lv.White {
		return fmt.Errorf("%w: black=%d white=%d", ErrInvalidLevels, lv.Black, lv.White)
	}
	return nil
}

// midpoint returns Black + (White-Black)/2.
func (lv Levels) midpoint() float64 {
	return float64(lv.Black) + lv.span()/2
}

// span returns White-Black, negative for inverted levels.
func (lv Levels) span() float64 {
	return float64(lv.White) - float64(lv.Black)
}

// BayerMatrix is a square ordered-dither index matrix holding each of
// 0..Size²-1 exactly once, row-major.
type BayerMatrix struct {
	Size  int
	Index []uint8
}

// Bayer4 is the 4×4 ordered-dither matrix.
var Bayer4 = BayerMatrix{
	Size: 4,
	Index: []uint8{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	},
}

// Bayer8 is the 8×8 ordered-dither matrix.
var Bayer8 = BayerMatrix{
	Size: 8,
	Index: []uint8{
		0, 32, 8, 40, 2, 34, 10, 42,
		48, 16, 56, 24, 50, 18, 58, 26,
		12, 44, 4, 36, 14, 46, 6, 38,
		60, 28, 52, 20, 62, 30, 54, 22,
		3, 35, 11, 43, 1, 33, 9, 41,
		51, 19, 59, 27, 49, 17, 57, 25,
		15, 47, 7, 39, 13, 45, 5, 37,
		63, 31, 55, 23, 61, 29, 53, 21,
	},
}

// threshold returns the cut-off intensity for cell (x, y) between the levels.
func (m BayerMatrix) threshold(x, y int, lv Levels) float64 {
	idx := m.Index[(y%m.Size)*m.Size+x%m.Size]
	n := float64(m.Size * m.Size)
	return float64(lv.Black) + (float64(idx)+0.5)/n*lv.span()
}

// Threshold maps every cell above the midpoint of lv to White and
// everything else to Black. Levels with Black above White are not
// rejected; they produce the inverted image.
func Threshold(src *Texture, lv Levels) *Texture {
	dst := src.Clone()
	mid := lv.midpoint()
	rowPool().Rows(dst.height, ditherBand, func(y0, y1 int) {
		for i := y0 * dst.width; i < y1*dst.width; i++ {
			if float64(dst.pix[i]) > mid {
				dst.pix[i] = lv.White
			} else {
				dst.pix[i] = lv.Black
			}
		}
	})
	return dst
}

// Ordered dithers src against the tiled matrix m.
func Ordered(src *Texture, lv Levels, m BayerMatrix) *Texture {
	dst := src.Clone()
	rowPool().Rows(dst.height, ditherBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < dst.width; x++ {
				i := y*dst.width + x
				if float64(dst.pix[i]) > m.threshold(x, y, lv) {
					dst.pix[i] = lv.White
				} else {
					dst.pix[i] = lv.Black
				}
			}
		}
	})
	return dst
}

// Algorithm names a bilevel dithering mode.
type Algorithm int

const (
	// AlgorithmNone leaves the texture untouched.
	AlgorithmNone Algorithm = iota
	// AlgorithmThreshold cuts at the midpoint of the levels.
	AlgorithmThreshold
	// AlgorithmOrdered dithers against Bayer4.
	AlgorithmOrdered
	// AlgorithmOrdered8 dithers against Bayer8.
	AlgorithmOrdered8
)

var algorithmNames = map[Algorithm]string{
	AlgorithmNone:      "none",
	AlgorithmThreshold: "threshold",
	AlgorithmOrdered:   "ordered",
	AlgorithmOrdered8:  "ordered8",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == name {
			return a, nil
		}
	}
	return AlgorithmNone, fmt.Errorf("%w: %q (want none, threshold, ordered or ordered8)", ErrUnknownAlgorithm, name)
}

// Apply runs the algorithm over src and returns a new texture.
func (a Algorithm) Apply(src *Texture, lv Levels) (*Texture, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	switch a {
	case AlgorithmNone:
		return src.Clone(), nil
	case AlgorithmThreshold:
		return Threshold(src, lv), nil
	case AlgorithmOrdered:
		return Ordered(src, lv, Bayer4), nil
	case AlgorithmOrdered8:
		return Ordered(src, lv, Bayer8), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}
