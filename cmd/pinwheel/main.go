// Command pinwheel draws a grayscale gradient, runs the block shader over
// it and writes the canvas, the shaded texture and its dithered form.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/gogpu/dither"
	"github.com/gogpu/dither/gpu"
	"github.com/gogpu/dither/internal/sheet"
	"github.com/gogpu/dither/internal/termview"
	"github.com/gogpu/dither/internal/viewer"
)

type cli struct {
	Verbose bool `help:"Enable debug logging" short:"v" env:"PINWHEEL_VERBOSE"`

	Run     runCmd     `cmd:"" default:"withargs" help:"Draw the gradient, shade blocks and write the outputs"`
	Hex     hexCmd     `cmd:"" help:"Decode #RRGGBB color codes"`
	Kernels kernelsCmd `cmd:"" help:"Compile the WGSL compute kernels to SPIR-V"`
}

type runCmd struct {
	Width        int    `help:"Output texture width" default:"255" env:"PINWHEEL_WIDTH"`
	Height       int    `help:"Output texture height" default:"100" env:"PINWHEEL_HEIGHT"`
	CanvasWidth  int    `help:"Canvas width in pixels" default:"255" env:"PINWHEEL_CANVAS_WIDTH"`
	CanvasHeight int    `help:"Canvas height in pixels" default:"50" env:"PINWHEEL_CANVAS_HEIGHT"`
	GradientTop  int    `help:"World y where gradient strips start" default:"100"`
	Passes       int    `help:"Number of blocks to shade" default:"2" env:"PINWHEEL_PASSES"`
	Algorithm    string `help:"Dithering applied to the texture (none, threshold, ordered, ordered8)" default:"ordered" env:"PINWHEEL_ALGORITHM"`
	Black        uint8  `help:"Black output level" default:"0" env:"PINWHEEL_BLACK"`
	White        uint8  `help:"White output level" default:"255" env:"PINWHEEL_WHITE"`
	Out          string `help:"Output directory" default:"." type:"path" env:"PINWHEEL_OUT"`
	Scale        int    `help:"Contact sheet magnification" default:"4"`
	Frame        string `help:"Also write the packed 1-bpp frame to this file" type:"path"`
	ASCII        bool   `name:"ascii" help:"Print the shaded texture to the terminal"`
	Show         bool   `help:"Open a window with the contact sheet and wait for it to close"`
}

func (r *runCmd) Run() error {
	log := dither.Logger()

	cfg := dither.Config{Width: r.Width, Height: r.Height}
	if err := cfg.Validate(); err != nil {
		return err
	}
	alg, err := dither.ParseAlgorithm(r.Algorithm)
	if err != nil {
		return err
	}
	lv := dither.Levels{Black: r.Black, White: r.White}
	if err := lv.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.Out, 0o755); err != nil {
		return err
	}

	dc := dither.NewContext(r.CanvasWidth, r.CanvasHeight)
	defer dc.Close()
	dc.DrawGradient(dither.Columns(0, cfg.Width), r.GradientTop, cfg.Height, dither.GrayRamp)

	tex, err := dither.NewTexture(cfg)
	if err != nil {
		return err
	}
	if err := dither.ShadeBlocks(cfg, tex, dc, r.Passes); err != nil {
		return err
	}

	dithered, err := alg.Apply(tex, lv)
	if err != nil {
		return err
	}

	outputs := []struct {
		name string
		save func(string) error
	}{
		{"canvas.png", dc.SavePNG},
		{"texture.png", tex.SavePNG},
		{"dithered.png", dithered.SavePNG},
	}
	for _, o := range outputs {
		path := filepath.Join(r.Out, o.name)
		if err := o.save(path); err != nil {
			return fmt.Errorf("save %s: %w", o.name, err)
		}
		log.Debug("wrote image", "path", path)
	}

	sheetImg, err := sheet.Compose([]sheet.Panel{
		{Title: "canvas", Image: dc.Image()},
		{Title: "texture", Image: tex.Gray()},
		{Title: alg.String(), Image: dithered.Gray()},
	}, sheet.Options{Scale: r.Scale})
	if err != nil {
		return err
	}
	if err := writeImage(filepath.Join(r.Out, "sheet.png"), sheetImg); err != nil {
		return err
	}

	if r.Frame != "" {
		if err := writeFrame(r.Frame, dithered, lv); err != nil {
			return err
		}
	}

	log.Info("shaded", "blocks", r.Passes, "algorithm", alg.String(), "out", r.Out)

	if r.ASCII {
		if err := termview.Render(os.Stdout, tex, termview.Width(os.Stdout)); err != nil {
			return err
		}
	}
	if r.Show {
		return viewer.New(sheetImg, "pinwheel", 1).Run()
	}
	return nil
}

type hexCmd struct {
	Codes []string `arg:"" help:"Color codes such as #ff0000"`
}

func (h *hexCmd) Run() error {
	for _, code := range h.Codes {
		c, err := dither.Hex2RGB(code)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%d %d %d\tr=%d\n", code, c.R(), c.G(), c.B(), dither.GetR(c))
	}
	return nil
}

type kernelsCmd struct {
	Out  string   `help:"Output directory" default:"." type:"path"`
	Only []string `help:"Compile only these kernels"`
}

func (k *kernelsCmd) Run() error {
	if err := os.MkdirAll(k.Out, 0o755); err != nil {
		return err
	}

	kernels := gpu.Kernels()
	if len(k.Only) > 0 {
		kernels = kernels[:0]
		for _, name := range k.Only {
			kern, ok := gpu.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown kernel %q", name)
			}
			kernels = append(kernels, kern)
		}
	}

	for _, kern := range kernels {
		path := filepath.Join(k.Out, kern.Name+".spv")
		if err := writeSPIRV(path, kern); err != nil {
			return err
		}
		dither.Logger().Info("wrote kernel", "kernel", kern.Name, "path", path)
	}
	return nil
}

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("pinwheel"),
		kong.Description("Gradient block shader and bilevel dithering playground."),
		kong.UsageOnError(),
	)
	setupLogging(params.Verbose)
	ctx.FatalIfErrorf(ctx.Run())
}

// setupLogging installs a text handler on terminals and a JSON handler
// otherwise, for both slog's default and dither's logger.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if termview.IsTerminal(os.Stderr) {
		h = slog.NewTextHandler(os.Stderr, opts)
	} else {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	l := slog.New(h)
	slog.SetDefault(l)
	dither.SetLogger(l)
}
