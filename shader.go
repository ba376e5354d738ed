package dither

import (
	"fmt"
)

// Sampler reads an 8-bit intensity at a point.
type Sampler interface {
	Sample(x, y float64) uint8
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func(x, y float64) uint8

// Sample calls f(x, y).
func (f SamplerFunc) Sample(x, y float64) uint8 { return f(x, y) }

const (
	// BlockSize is the side of the populated block.
	BlockSize = 4

	// BlockFootprint is the horizontal stride of one block in the tiling.
	BlockFootprint = BlockSize + 4
)

// TextureNormalization is the divisor applied to block coordinates
// before sampling. It is fixed and does not follow the texture size, so
// the sampler sees fractional coordinates near the canvas origin.
var TextureNormalization = [2]float64{100, 255}

// Diffusion weights.
const (
	weightA = 7.0 / 16.0
	weightB = 3.0 / 16.0
	weightC = 5.0 / 16.0
	weightD = 1.0 / 16.0
)

// Direction selects one of the four diffusion matrices.
type Direction uint8

const (
	// DirectionDown pushes error below and to the right.
	DirectionDown Direction = iota
	// DirectionLeft pushes error to the left and the row below.
	DirectionLeft
	// DirectionUp pushes error above and to the left.
	DirectionUp
	// DirectionRight pushes error to the right and the row above.
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DiffusionMatrix is a 3×3 error-diffusion kernel centred on the
// current pixel, indexed [row][column].
type DiffusionMatrix [3][3]float64

// Sum returns the total weight of the kernel.
func (m DiffusionMatrix) Sum() float64 {
	var s float64
	for _, row := range m {
		for _, w := range row {
			s += w
		}
	}
	return s
}

// DirectionMatrices holds the pinwheel diffusion kernels, indexed by
// Direction. The block shader does not apply them yet.
var DirectionMatrices = [4]DiffusionMatrix{
	DirectionDown: {
		{0, 0, weightB},
		{0, 0, weightC},
		{0, weightA, weightD},
	},
	DirectionLeft: {
		{0, 0, 0},
		{weightA, 0, 0},
		{weightD, weightC, weightB},
	},
	DirectionUp: {
		{weightD, weightA, 0},
		{weightC, 0, 0},
		{weightB, 0, 0},
	},
	DirectionRight: {
		{weightD, weightC, weightB},
		{0, 0, weightA},
		{0, 0, 0},
	},
}

// StepTypes assigns a Direction to each of the 16 steps of a block walk.
// The block loop visits cells in raster order and does not consult it.
var StepTypes = [BlockSize * BlockSize]Direction{
	DirectionDown,
	DirectionLeft,
	DirectionUp, DirectionUp,
	DirectionRight, DirectionRight,
	DirectionDown, DirectionDown, DirectionDown,
	DirectionLeft, DirectionLeft, DirectionLeft,
	DirectionUp, DirectionUp, DirectionUp, DirectionUp,
}

// BlocksPerRow returns how many block footprints fit across cfg.Width.
func BlocksPerRow(cfg Config) (int, error) {
	n := cfg.Width / BlockFootprint
	if n <= 0 {
		return 0, fmt.Errorf("%w: width %d < %d", ErrNarrowTexture, cfg.Width, BlockFootprint)
	}
	return n, nil
}

// BlockOrigin returns the first cell written by block blockIndex.
//
//	x = 3 + (8·blockIndex) mod blocksPerRow
//	y = 1 + blockIndex / blocksPerRow
func BlockOrigin(cfg Config, blockIndex int) (x, y int, err error) {
	if blockIndex < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrNegativeBlock, blockIndex)
	}
	perRow, err := BlocksPerRow(cfg)
	if err != nil {
		return 0, 0, err
	}
	x = 3 + (BlockFootprint*blockIndex)%perRow
	y = 1 + blockIndex/perRow
	return x, y, nil
}

// Shade runs the block shader for one block: it samples the 4×4 cells
// starting at BlockOrigin, column by column, and copies each sampled
// intensity into out. Sample coordinates are the cell coordinates
// divided by TextureNormalization.
//
// Cells written before an out-of-range cell are kept; the returned
// error wraps ErrOutOfBounds.
func Shade(cfg Config, out *Texture, s Sampler, blockIndex int) error {
	x, y, err := BlockOrigin(cfg, blockIndex)
	if err != nil {
		return err
	}

	log := Logger()
	log.Debug("shade block", "block", blockIndex, "x", x, "y", y)

	for xAdd := range BlockSize {
		for yAdd := range BlockSize {
			px, py := x+xAdd, y+yAdd
			u := float64(px) / TextureNormalization[0]
			v := float64(py) / TextureNormalization[1]

			gray := s.Sample(u, v)
			log.Info("color", "block", blockIndex, "x", px, "y", py, "gray", gray)

			if err := out.Set(px, py, gray); err != nil {
				return fmt.Errorf("shade block %d: %w", blockIndex, err)
			}
		}
	}
	return nil
}

// ShadeBlocks runs Shade for blocks 0..n-1 in order, stopping at the
// first error.
func ShadeBlocks(cfg Config, out *Texture, s Sampler, n int) error {
	for i := range n {
		if err := Shade(cfg, out, s, i); err != nil {
			return err
		}
	}
	return nil
}
