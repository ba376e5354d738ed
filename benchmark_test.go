package dither

import "testing"

func BenchmarkDrawGradient(b *testing.B) {
	dc := NewContext(255, 50)
	cols := Columns(0, 255)
	for b.Loop() {
		dc.DrawGradient(cols, 100, 100, GrayRamp)
	}
}

func BenchmarkSample(b *testing.B) {
	dc := NewContext(255, 50)
	dc.DrawGradient(Columns(0, 255), 100, 100, GrayRamp)
	for b.Loop() {
		_ = dc.Sample(17.5, 12.25)
	}
}

func BenchmarkShadeBlocks(b *testing.B) {
	cfg := DefaultConfig()
	dc := NewContext(255, 50)
	dc.DrawGradient(Columns(0, cfg.Width), 100, cfg.Height, GrayRamp)
	tex, err := NewTexture(cfg)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		if err := ShadeBlocks(cfg, tex, dc, 31); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDither(b *testing.B) {
	cfg := Config{Width: 320, Height: 240}
	src, err := NewTexture(cfg)
	if err != nil {
		b.Fatal(err)
	}
	for y := range cfg.Height {
		for x := range cfg.Width {
			_ = src.Set(x, y, uint8(x))
		}
	}
	lv := DefaultLevels()

	algs := []Algorithm{AlgorithmThreshold, AlgorithmOrdered, AlgorithmOrdered8}
	for _, alg := range algs {
		b.Run(alg.String(), func(b *testing.B) {
			for b.Loop() {
				if _, err := alg.Apply(src, lv); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPackMono(b *testing.B) {
	cfg := Config{Width: 320, Height: 240}
	src, err := NewTexture(cfg)
	if err != nil {
		b.Fatal(err)
	}
	dst := Ordered(src, DefaultLevels(), Bayer4)
	for b.Loop() {
		_ = PackMono(dst, 0)
	}
}
