package dither

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.pixmap != nil {
		t.Error("default pixmap should be nil")
	}
	if o.background != DefaultBackground {
		t.Errorf("default background = %d, want %d", o.background, DefaultBackground)
	}
}

// TestOptions_LastWins checks that later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	a, b := NewPixmap(4, 4), NewPixmap(4, 4)
	dc := NewContext(4, 4,
		WithBackgroundValue(10),
		WithPixmap(a),
		WithBackgroundValue(20),
		WithPixmap(b),
	)
	if dc.Pixmap() != b {
		t.Error("second WithPixmap did not win")
	}
	if got := dc.Sample(1, 1); got != 20 {
		t.Errorf("Sample on empty canvas = %d, want 20", got)
	}
}

// TestWithPixmap_SharedPixels checks that drawing through the context
// lands in the caller's pixmap.
func TestWithPixmap_SharedPixels(t *testing.T) {
	pm := NewPixmap(4, 4)
	dc := NewContext(4, 4, WithPixmap(pm))
	dc.DrawPixel(0, 0, Gray(42), 1)

	// World (0,0) is the bottom-left pixel.
	c, ok := pm.GetPixel(0, 3)
	if !ok || c != Gray(42) {
		t.Errorf("pixmap (0,3) = %v, %v; want %v, true", c, ok, Gray(42))
	}
}
