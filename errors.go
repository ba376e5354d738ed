package dither

import "errors"

var (
	// ErrInvalidHex is returned by Hex2RGB for codes that are empty,
	// contain non-hex digits, or do not fit in 32 bits.
	ErrInvalidHex = errors.New("dither: invalid hex color")

	// ErrNarrowTexture is returned by the block shader when the texture
	// is narrower than one 8-pixel block footprint.
	ErrNarrowTexture = errors.New("dither: texture narrower than one block")

	// ErrNegativeBlock is returned for block indices below zero.
	ErrNegativeBlock = errors.New("dither: negative block index")

	// ErrOutOfBounds is returned when a write falls outside a texture.
	ErrOutOfBounds = errors.New("dither: coordinate out of bounds")

	// ErrInvalidConfig is returned for non-positive texture dimensions.
	ErrInvalidConfig = errors.New("dither: invalid config")

	// ErrInvalidLevels is returned when the black level is not below the white level.
	ErrInvalidLevels = errors.New("dither: black level must be below white level")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("dither: unknown algorithm")
)
