// Package gpu carries WGSL compute-kernel renditions of the block shader
// and the ordered ditherer, compiled to SPIR-V with naga, together with
// the host-side buffer layouts they expect.
//
// Usage:
//
//	for _, k := range gpu.Kernels() {
//	    words, err := gpu.Compile(k)
//	    ...
//	}
package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gogpu/dither"
	"github.com/gogpu/naga"
)

//go:embed shaders/block.wgsl
var blockShaderWGSL string

//go:embed shaders/ordered.wgsl
var orderedShaderWGSL string

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

// Kernel describes one compute shader.
type Kernel struct {
	// Name is a short identifier, also used as the output file stem.
	Name string
	// Source is the WGSL source text.
	Source string
	// EntryPoint is the compute entry point.
	EntryPoint string
	// WorkgroupSize is the @workgroup_size declared by the entry point.
	WorkgroupSize [3]uint32
}

// BlockKernel runs the block shader, one invocation per block.
var BlockKernel = Kernel{
	Name:          "block",
	Source:        blockShaderWGSL,
	EntryPoint:    "main",
	WorkgroupSize: [3]uint32{64, 1, 1},
}

// OrderedKernel runs the 4×4 ordered ditherer, one invocation per cell.
var OrderedKernel = Kernel{
	Name:          "ordered",
	Source:        orderedShaderWGSL,
	EntryPoint:    "main",
	WorkgroupSize: [3]uint32{8, 8, 1},
}

// Kernels returns every kernel in a stable order.
func Kernels() []Kernel {
	return []Kernel{BlockKernel, OrderedKernel}
}

// Lookup finds a kernel by name.
func Lookup(name string) (Kernel, bool) {
	for _, k := range Kernels() {
		if k.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}

// CompileBytes compiles k to a SPIR-V byte stream.
func CompileBytes(k Kernel) ([]byte, error) {
	spirv, err := naga.Compile(k.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s shader: %w", k.Name, err)
	}
	dither.Logger().Debug("kernel compiled", "kernel", k.Name, "bytes", len(spirv))
	return spirv, nil
}

// Compile compiles k to SPIR-V words.
func Compile(k Kernel) ([]uint32, error) {
	spirvBytes, err := CompileBytes(k)
	if err != nil {
		return nil, err
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return words, nil
}

// WriteSPIRV compiles k and writes the module to w.
func WriteSPIRV(w io.Writer, k Kernel) error {
	spirv, err := CompileBytes(k)
	if err != nil {
		return err
	}
	_, err = w.Write(spirv)
	return err
}

// Dispatch returns the workgroup counts needed to cover n invocations
// along x and m along y for kernel k.
func Dispatch(k Kernel, n, m int) (x, y uint32) {
	x = ceilDiv(uint32(max(n, 0)), k.WorkgroupSize[0])
	y = ceilDiv(uint32(max(m, 1)), k.WorkgroupSize[1])
	return x, y
}

func ceilDiv(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// BlockConfig encodes the uniform block of the block kernel.
func BlockConfig(cfg dither.Config, canvasWidth, canvasHeight, blocks int) []byte {
	fields := []uint32{
		uint32(cfg.Width), uint32(cfg.Height),
		uint32(canvasWidth), uint32(canvasHeight),
		uint32(blocks), 0, 0, 0,
	}
	return putWords(fields)
}

// OrderedParams encodes the uniform block of the ordered kernel.
func OrderedParams(cfg dither.Config, lv dither.Levels) []byte {
	return putWords([]uint32{uint32(cfg.Width), uint32(cfg.Height), uint32(lv.Black), uint32(lv.White)})
}

// BayerBuffer encodes dither.Bayer4 for the ordered kernel.
func BayerBuffer() []byte {
	words := make([]uint32, len(dither.Bayer4.Index))
	for i, v := range dither.Bayer4.Index {
		words[i] = uint32(v)
	}
	return putWords(words)
}

// CanvasBuffer flattens the canvas into one u32 intensity per pixel,
// row-major with row 0 at the top, undrawn pixels holding the
// background value the context reports.
func CanvasBuffer(dc *dither.Context) []byte {
	w, h := dc.Width(), dc.Height()
	words := make([]uint32, w*h)
	for row := 0; row < h; row++ {
		for x := 0; x < w; x++ {
			// Sample takes world coordinates with y pointing up.
			words[row*w+x] = uint32(dc.Sample(float64(x), float64(h-1-row)))
		}
	}
	return putWords(words)
}

// TextureBuffer widens a texture to one u32 per cell.
func TextureBuffer(t *dither.Texture) []byte {
	words := make([]uint32, len(t.Pix()))
	for i, v := range t.Pix() {
		words[i] = uint32(v)
	}
	return putWords(words)
}

func putWords(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}
