package dither

import (
	"errors"
	"testing"
)

func gradientTexture(t *testing.T, w, h int) *Texture {
	t.Helper()
	tex := newTestTexture(t, Config{Width: w, Height: h})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_ = tex.Set(x, y, uint8(x*255/max(w-1, 1)))
		}
	}
	return tex
}

func TestLevels_Validate(t *testing.T) {
	if err := DefaultLevels().Validate(); err != nil {
		t.Errorf("DefaultLevels().Validate() = %v", err)
	}
	for _, lv := range []Levels{{10, 10}, {200, 100}} {
		if err := lv.Validate(); !errors.Is(err, ErrInvalidLevels) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidLevels", lv, err)
		}
	}
}

func TestBayerMatrices_ArePermutations(t *testing.T) {
	for _, m := range []BayerMatrix{Bayer4, Bayer8} {
		n := m.Size * m.Size
		if len(m.Index) != n {
			t.Fatalf("Bayer%d has %d entries, want %d", m.Size, len(m.Index), n)
		}
		seen := make([]bool, n)
		for _, v := range m.Index {
			if int(v) >= n || seen[v] {
				t.Fatalf("Bayer%d: bad or duplicate index %d", m.Size, v)
			}
			seen[v] = true
		}
	}
}

func TestThreshold(t *testing.T) {
	tex := newTestTexture(t, Config{Width: 4, Height: 1})
	for x, v := range []uint8{0, 127, 128, 255} {
		_ = tex.Set(x, 0, v)
	}

	got := Threshold(tex, DefaultLevels())
	want := []uint8{0, 0, 255, 255}
	for x, w := range want {
		if got.At(x, 0) != w {
			t.Errorf("Threshold cell %d = %d, want %d", x, got.At(x, 0), w)
		}
	}
	if tex.At(3, 0) != 255 || tex.At(1, 0) != 127 {
		t.Error("Threshold modified its source")
	}
}

func TestThreshold_CustomLevels(t *testing.T) {
	tex := newTestTexture(t, Config{Width: 2, Height: 1})
	_ = tex.Set(0, 0, 60)
	_ = tex.Set(1, 0, 160)

	got := Threshold(tex, Levels{Black: 50, White: 250})
	if got.At(0, 0) != 50 || got.At(1, 0) != 250 {
		t.Errorf("Threshold = [%d %d], want [50 250]", got.At(0, 0), got.At(1, 0))
	}
}

// TestInvertedLevels checks that Black above White swaps the output
// levels instead of wrapping around.
func TestInvertedLevels(t *testing.T) {
	tex := newTestTexture(t, Config{Width: 4, Height: 1})
	for x, v := range []uint8{10, 100, 150, 250} {
		_ = tex.Set(x, 0, v)
	}
	lv := Levels{Black: 200, White: 50}

	if mid := lv.midpoint(); mid != 125 {
		t.Errorf("midpoint = %v, want 125", mid)
	}

	got := Threshold(tex, lv)
	want := []uint8{200, 200, 50, 50}
	for x, w := range want {
		if got.At(x, 0) != w {
			t.Errorf("Threshold cell %d = %d, want %d", x, got.At(x, 0), w)
		}
	}

	out := Ordered(tex, lv, Bayer4)
	if out.At(0, 0) != 200 || out.At(3, 0) != 50 {
		t.Errorf("Ordered ends = [%d %d], want [200 50]", out.At(0, 0), out.At(3, 0))
	}
	for y := range 4 {
		for x := range 4 {
			th := Bayer4.threshold(x, y, lv)
			if th <= 50 || th >= 200 {
				t.Errorf("threshold(%d,%d) = %v, want within (50, 200)", x, y, th)
			}
		}
	}
}

func TestOrdered_OnlyLevels(t *testing.T) {
	src := gradientTexture(t, 64, 16)
	lv := Levels{Black: 20, White: 230}

	for _, m := range []BayerMatrix{Bayer4, Bayer8} {
		out := Ordered(src, lv, m)
		for _, v := range out.Pix() {
			if v != lv.Black && v != lv.White {
				t.Fatalf("Bayer%d produced %d, want only %d or %d", m.Size, v, lv.Black, lv.White)
			}
		}
	}
}

func TestOrdered_Extremes(t *testing.T) {
	tex := newTestTexture(t, Config{Width: 8, Height: 8})
	if out := Ordered(tex, DefaultLevels(), Bayer4); countValue(out, 255) != 0 {
		t.Error("black input should dither to all black")
	}
	tex.Fill(255)
	if out := Ordered(tex, DefaultLevels(), Bayer4); countValue(out, 0) != 0 {
		t.Error("white input should dither to all white")
	}
}

func TestOrdered_MidGrayHalfOn(t *testing.T) {
	tex := newTestTexture(t, Config{Width: 8, Height: 8})
	tex.Fill(128)
	out := Ordered(tex, DefaultLevels(), Bayer4)
	if got := countValue(out, 255); got != 32 {
		t.Errorf("mid gray lit %d of 64 cells, want 32", got)
	}
}

func countValue(t *Texture, v uint8) int {
	n := 0
	for _, p := range t.Pix() {
		if p == v {
			n++
		}
	}
	return n
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"none", AlgorithmNone},
		{"Threshold", AlgorithmThreshold},
		{" ORDERED ", AlgorithmOrdered},
		{"ordered8", AlgorithmOrdered8},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != tt.want.String() {
			t.Errorf("String() mismatch for %v", got)
		}
	}
	if _, err := ParseAlgorithm("pinwheel"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(pinwheel) = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestAlgorithm_Apply(t *testing.T) {
	src := gradientTexture(t, 16, 4)

	out, err := AlgorithmNone.Apply(src, DefaultLevels())
	if err != nil {
		t.Fatal(err)
	}
	if out == src || out.At(15, 0) != src.At(15, 0) {
		t.Error("AlgorithmNone should return an equal copy")
	}

	if _, err := AlgorithmOrdered8.Apply(src, Levels{5, 5}); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("Apply with bad levels = %v", err)
	}
	if _, err := Algorithm(42).Apply(src, DefaultLevels()); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Apply(42) = %v", err)
	}
}
