// Package raster exports recordings as PNG images using gg.Context.
//
// The recording is replayed through recording.Playback onto a gg.Context
// adapter, so transforms, clipping, dashes and anti-aliasing all come from
// gg. Text uses the Go fonts (regular and bold) shipped with
// golang.org/x/image.
//
// # Example
//
//	// Import to register the exporter
//	import _ "github.com/gogpu/plotdraw/recording/backends/raster"
//
//	// Create via registry
//	data, err := recording.Export("raster", r, recording.Size{Width: 400, Height: 300})
//
//	// Or create directly with options
//	exp := raster.New(raster.WithScale(2))
//	data, err := exp.Export(r, size)
package raster

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

func init() {
	recording.Register("raster", func() recording.Exporter {
		return New()
	})
}

// Exporter renders recordings to PNG.
// An Exporter holds only options and may be used from several goroutines.
type Exporter struct {
	scale      float64
	background plotdraw.Color
}

var _ recording.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithScale sets the device pixel scale. A 100x50 export with scale 2
// produces a 200x100 image. Non-positive or non-finite values mean 1.
func WithScale(scale float64) Option {
	return func(e *Exporter) {
		if scale > 0 && !math.IsInf(scale, 0) {
			e.scale = scale
		}
	}
}

// WithBackground sets the color the image is cleared to before drawing.
// The default is opaque white.
func WithBackground(c plotdraw.Color) Option {
	return func(e *Exporter) {
		e.background = c
	}
}

// New creates a raster exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{scale: 1, background: plotdraw.White}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scale returns the device pixel scale.
func (e *Exporter) Scale() float64 {
	return e.scale
}

// Export renders r and encodes the result as PNG.
func (e *Exporter) Export(r *recording.Recording, size recording.Size) ([]byte, error) {
	var data []byte
	err := e.render(r, size, func(dc *gg.Context) error {
		var buf bytes.Buffer
		if err := dc.EncodePNG(&buf); err != nil {
			return fmt.Errorf("raster: encode png: %w", err)
		}
		data = buf.Bytes()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Render renders r and returns the pixel buffer.
func (e *Exporter) Render(r *recording.Recording, size recording.Size) (image.Image, error) {
	var img image.Image
	err := e.render(r, size, func(dc *gg.Context) error {
		img = dc.Image()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// PixelSize returns the dimensions of the image Export produces for size.
func (e *Exporter) PixelSize(size recording.Size) (w, h int) {
	return int(size.Width * e.scale), int(size.Height * e.scale)
}

func (e *Exporter) render(r *recording.Recording, size recording.Size, finish func(*gg.Context) error) (err error) {
	if err := recording.CheckExport(r, size); err != nil {
		return err
	}
	w, h := e.PixelSize(size)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: %dx%d pixel image: %w", w, h, recording.ErrInvalidSize)
	}

	// gg panics when the pixel buffer cannot be allocated.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("raster: render %dx%d: %v", w, h, p)
		}
	}()

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(toRGBA(e.background))
	dc.Scale(e.scale, e.scale)

	c := newCanvas(dc)
	r.Playback(c, size)
	if c.err != nil {
		return fmt.Errorf("raster: %w", c.err)
	}

	plotdraw.Logger().Debug("raster: rendered",
		"width", w, "height", h, "commands", r.Len())
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("raster: flush: %w", err)
	}
	return finish(dc)
}

func toRGBA(c plotdraw.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
