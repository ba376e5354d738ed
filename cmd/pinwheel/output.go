package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/dither"
	"github.com/gogpu/dither/gpu"
)

// create opens path for writing and hands it to write, closing it
// afterwards and reporting the first error.
func create(path string, write func(f *os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeImage(path string, img image.Image) error {
	return create(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
}

func writeFrame(path string, t *dither.Texture, lv dither.Levels) error {
	return create(path, func(f *os.File) error {
		n, err := dither.WriteFrame(f, dither.PackMono(t, lv.Black))
		if err != nil {
			return err
		}
		dither.Logger().Debug("wrote frame", "path", path, "packets", n)
		return nil
	})
}

func writeSPIRV(path string, k gpu.Kernel) error {
	return create(path, func(f *os.File) error {
		return gpu.WriteSPIRV(f, k)
	})
}
