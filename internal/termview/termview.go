// Package termview prints grayscale textures to a terminal using
// half-block glyphs and 24-bit color escapes, two texture rows per line.
package termview

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/dither"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const upperHalf = "▀"

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f, or
// DefaultWidth when it cannot be determined.
func Width(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Render writes t to w, shrinking it horizontally to at most cols
// columns with nearest sampling. Rows are scaled by the same factor.
func Render(w io.Writer, t *dither.Texture, cols int) error {
	if cols <= 0 {
		cols = DefaultWidth
	}
	tw, th := t.Width(), t.Height()
	outW := min(tw, cols)
	if outW == 0 || th == 0 {
		return nil
	}
	outH := max(th*outW/tw, 1)

	src := func(x, y int) uint8 {
		return t.At(x*tw/outW, y*th/outH)
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < outH; y += 2 {
		for x := 0; x < outW; x++ {
			top := src(x, y)
			bottom := top
			if y+1 < outH {
				bottom = src(x, y+1)
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", top, top, top, bottom, bottom, bottom, upperHalf)
		}
		if _, err := bw.WriteString("\x1b[0m\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
