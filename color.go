package dither

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a raw three-byte color: red, green, blue.
type RGB [3]uint8

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Gray returns the achromatic color (v, v, v).
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// R returns the red channel.
func (c RGB) R() uint8 { return c[0] }

// G returns the green channel.
func (c RGB) G() uint8 { return c[1] }

// B returns the blue channel.
func (c RGB) B() uint8 { return c[2] }

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// Color converts c to an opaque color.NRGBA.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Hex2RGB parses a "#RRGGBB" style code. The first character is dropped,
// the remainder is read as a hex integer, packed big-endian into four
// bytes, and the last three bytes are returned. Shorter codes therefore
// land in the low channels ("#ff" is blue) and an eight-digit code loses
// its leading byte.
//
// The digits may be surrounded by whitespace, carry a "0x" prefix and
// use underscores between digits ("#0xff_00_00").
func Hex2RGB(code string) (RGB, error) {
	if len(code) < 2 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, code)
	}
	digits := strings.TrimSpace(code[1:])
	if !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X") {
		if strings.HasPrefix(digits, "_") {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, code)
		}
		digits = "0x" + digits
	}
	v, err := strconv.ParseUint(digits, 0, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidHex, code, err)
	}
	var packed [4]byte
	binary.BigEndian.PutUint32(packed[:], uint32(v))
	return RGB{packed[1], packed[2], packed[3]}, nil
}

// GetR returns the red channel of c. The gradient is achromatic, so the
// red channel stands in for the gray intensity.
func GetR(c RGB) uint8 {
	return c.R()
}

// GrayRamp is the identity grayscale mapping used by the gradient
// renderer: x becomes (x, x, x), clamped to a byte.
func GrayRamp(x int) RGB {
	return Gray(clampByte(x))
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
