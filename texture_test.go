package dither

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 255 || cfg.Height != 100 {
		t.Errorf("DefaultConfig() = %+v, want 255x100", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	for _, cfg := range []Config{{0, 10}, {10, 0}, {-1, 5}} {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidConfig", cfg, err)
		}
	}
	if _, err := NewTexture(Config{0, 0}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewTexture(0x0) error = %v", err)
	}
}

func TestTexture_SetAt(t *testing.T) {
	tex, err := NewTexture(Config{Width: 4, Height: 3})
	if err != nil {
		t.Fatal(err)
	}
	if err := tex.Set(3, 2, 99); err != nil {
		t.Fatalf("Set(3,2) = %v", err)
	}
	if got := tex.At(3, 2); got != 99 {
		t.Errorf("At(3,2) = %d, want 99", got)
	}
	if got := tex.Pix()[2*4+3]; got != 99 {
		t.Errorf("row-major storage = %d, want 99", got)
	}

	for _, p := range []struct{ x, y int }{{4, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		if err := tex.Set(p.x, p.y, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d) = %v, want ErrOutOfBounds", p.x, p.y, err)
		}
		if got := tex.At(p.x, p.y); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0", p.x, p.y, got)
		}
	}
}

func TestTexture_FillClone(t *testing.T) {
	tex, _ := NewTexture(Config{Width: 2, Height: 2})
	tex.Fill(7)
	c := tex.Clone()
	_ = c.Set(0, 0, 1)
	if tex.At(0, 0) != 7 {
		t.Error("Clone shares storage with the original")
	}
	if c.At(1, 1) != 7 {
		t.Error("Clone lost data")
	}
}

func TestTexture_GrayAndSave(t *testing.T) {
	tex, _ := NewTexture(Config{Width: 3, Height: 2})
	_ = tex.Set(2, 1, 200)
	img := tex.Gray()
	if got := img.GrayAt(2, 1).Y; got != 200 {
		t.Errorf("GrayAt(2,1) = %d, want 200", got)
	}
	if err := tex.SavePNG(filepath.Join(t.TempDir(), "tex.png")); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
}
