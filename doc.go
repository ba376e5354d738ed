// Package dither renders a grayscale gradient into a frame buffer and
// runs a small per-block shader that samples it back into an 8-bit
// output texture.
//
// # Quick Start
//
//	import "github.com/gogpu/dither"
//
//	cfg := dither.DefaultConfig()           // 255x100 output texture
//	dc := dither.NewContext(255, 50)        // dc = drawing context convention
//	defer dc.Close()
//
//	dc.DrawGradient(dither.Columns(0, cfg.Width), 100, cfg.Height, dither.GrayRamp)
//
//	tex, _ := dither.NewTexture(cfg)
//	if err := dither.ShadeBlocks(cfg, tex, dc, 2); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate System
//
// Context uses world coordinates with one unit per pixel:
//   - Origin (0,0) at bottom-left
//   - X increases right
//   - Y increases up
//
// Textures are addressed (x, y) with y increasing down, as images are.
//
// # Block Shader
//
// Shade walks a 4×4 block whose origin is derived from a linear block
// index, samples each cell through a Sampler and copies the result into
// the texture. Sample coordinates are divided by TextureNormalization,
// which is fixed at (100, 255) regardless of the texture size. The
// diffusion kernels in DirectionMatrices and the StepTypes walk order are
// carried as data for an error-diffusion pass the shader does not yet
// perform.
//
// # Bilevel Output
//
// Threshold and Ordered reduce a texture to two Levels. PackMono and
// WriteFrame produce the 1-bpp packet stream used by monochrome panels.
package dither
