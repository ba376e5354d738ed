package dither

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Default white background, fresh pixmap
//	dc := dither.NewContext(255, 50)
//
//	// Sample into a shared pixmap with a black background
//	dc := dither.NewContext(255, 50, dither.WithPixmap(pm), dither.WithBackgroundValue(0))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	pixmap     *Pixmap
	background uint8
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		pixmap:     nil, // Will be created if nil
		background: DefaultBackground,
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions should match the Context dimensions; a mismatched
// pixmap is replaced by a fresh one.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithBackgroundValue sets the intensity Sample reports where nothing
// has been drawn. The default is DefaultBackground (white).
func WithBackgroundValue(v uint8) ContextOption {
	return func(o *contextOptions) {
		o.background = v
	}
}
