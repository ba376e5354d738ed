// Package viewer shows a still image in a desktop window and blocks
// until the window is closed.
package viewer

import (
	"image"

	"github.com/gogpu/dither"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window is an ebiten.Game that draws one image.
type Window struct {
	img   image.Image
	title string
	scale int
	frame *ebiten.Image
}

var _ ebiten.Game = (*Window)(nil)

// New prepares a window for img. The window opens at scale times the
// image size; scale below 1 is treated as 1.
func New(img image.Image, title string, scale int) *Window {
	return &Window{img: img, title: title, scale: max(scale, 1)}
}

// Size returns the initial window size in device-independent pixels.
func (w *Window) Size() (int, int) {
	b := w.img.Bounds()
	return b.Dx() * w.scale, b.Dy() * w.scale
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (w *Window) Run() error {
	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowClosingHandled(true)

	dither.Logger().Debug("window open", "title", w.title, "width", width, "height", height)
	err := ebiten.RunGame(w)
	dither.Logger().Debug("window closed")
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImageFromImage(w.img)
	}
	screen.DrawImage(w.frame, nil)
}

// Layout implements ebiten.Game. The logical screen is the image size;
// ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}
