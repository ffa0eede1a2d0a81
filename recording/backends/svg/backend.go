// Package svg exports recordings as SVG markup.
//
// The output format is fixed: an XML declaration, an <svg> element sized
// to the export size, a white background rectangle, one element per line
// for every flushed path, shape and text, and the closing tag. Recorded y
// coordinates are written as height - y.
//
// Consecutive path commands collect into a single <path> element. The path
// is emitted when a shape, text, paint or stroke/fill style command
// arrives, and once more at the end of the document. Transforms, clipping,
// state commands and arcs produce no markup.
//
// # Example
//
//	import _ "github.com/gogpu/plotdraw/recording/backends/svg"
//
//	data, err := recording.Export("svg", r, recording.Size{Width: 400, Height: 300})
//
//	// Or without the registry
//	doc := svg.Render(r, size)
package svg

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tdewolff/minify/v2"
	minsvg "github.com/tdewolff/minify/v2/svg"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

// MediaType is the media type of the exported document.
const MediaType = "image/svg+xml"

func init() {
	recording.Register("svg", func() recording.Exporter {
		return New()
	})
}

// Exporter writes recordings as SVG documents.
type Exporter struct {
	minify    bool
	precision int
}

var _ recording.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithMinify runs the finished document through the minify SVG minifier.
func WithMinify() Option {
	return func(e *Exporter) {
		e.minify = true
	}
}

// WithPrecision rounds coordinates and lengths to prec decimals and drops
// trailing zeros. A negative prec keeps the shortest exact form, which is
// the default.
func WithPrecision(prec int) Option {
	return func(e *Exporter) {
		e.precision = prec
	}
}

// New creates an SVG exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{precision: -1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders r and returns the document bytes.
func (e *Exporter) Export(r *recording.Recording, size recording.Size) ([]byte, error) {
	if err := recording.CheckExport(r, size); err != nil {
		return nil, err
	}
	doc := render(r, size, e.formatter())
	if !e.minify {
		return []byte(doc), nil
	}

	m := minify.New()
	m.AddFunc(MediaType, minsvg.Minify)
	out, err := m.String(MediaType, doc)
	if err != nil {
		return nil, fmt.Errorf("svg: minify: %w", err)
	}
	return []byte(out), nil
}

// Render returns the SVG document for r at the given size, with numbers in
// their shortest exact form. A nil recording renders an empty document.
func Render(r *recording.Recording, size recording.Size) string {
	return render(r, size, formatExact)
}

func render(r *recording.Recording, size recording.Size, num func(float64) string) string {
	m := newMarkup(size.Height, num)
	m.out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&m.out, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		int(size.Width), int(size.Height))
	m.out.WriteString(`<rect width="100%" height="100%" fill="white"/>` + "\n")

	if r != nil {
		for _, cmd := range r.Commands() {
			m.exec(cmd)
		}
	}
	m.flush()
	m.out.WriteString("</svg>")

	if m.skipped > 0 {
		plotdraw.Logger().Debug("svg: arcs skipped", "count", m.skipped)
	}
	return m.out.String()
}

func (e *Exporter) formatter() func(float64) string {
	if e.precision < 0 {
		return formatExact
	}
	prec := e.precision
	return func(v float64) string {
		s := strconv.FormatFloat(v, 'f', prec, 64)
		return string(minify.Decimal([]byte(s), prec))
	}
}

// formatExact writes v in its shortest decimal form, so 2.0 becomes "2".
func formatExact(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
