// Package pdf exports recordings as single-page PDF documents using
// codeberg.org/go-pdf/fpdf.
//
// The page is sized to the export size in points. Paths are transformed on
// the Go side before they reach fpdf, so PDF paths carry device
// coordinates and line widths scale with the current transform. Text uses
// the core Helvetica fonts.
//
// # Example
//
//	import _ "github.com/gogpu/plotdraw/recording/backends/pdf"
//
//	data, err := recording.Export("pdf", r, recording.Size{Width: 595, Height: 842})
//
//	// With document metadata
//	exp := pdf.New(pdf.WithTitle("Report"), pdf.WithCompression(false))
package pdf

import (
	"bytes"
	"fmt"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

func init() {
	recording.Register("pdf", func() recording.Exporter {
		return New()
	})
}

// Exporter renders recordings to PDF.
type Exporter struct {
	title       string
	creator     string
	compression bool
}

var _ recording.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(e *Exporter) {
		e.title = title
	}
}

// WithCreator sets the creator entry of the document information.
func WithCreator(creator string) Option {
	return func(e *Exporter) {
		e.creator = creator
	}
}

// WithCompression enables or disables content stream compression.
// Compression is on by default.
func WithCompression(on bool) Option {
	return func(e *Exporter) {
		e.compression = on
	}
}

// New creates a PDF exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{creator: "plotdraw", compression: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders r onto one page of size points and returns the document.
func (e *Exporter) Export(r *recording.Recording, size recording.Size) ([]byte, error) {
	if err := recording.CheckExport(r, size); err != nil {
		return nil, err
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	doc.SetCompression(e.compression)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	if e.title != "" {
		doc.SetTitle(e.title, true)
	}
	if e.creator != "" {
		doc.SetCreator(e.creator, true)
	}
	doc.AddPage()

	c := newCanvas(doc)
	r.Playback(c, size)
	c.endClips(0)

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output: %w", err)
	}

	plotdraw.Logger().Debug("pdf: rendered",
		"width", size.Width, "height", size.Height,
		"commands", r.Len(), "bytes", buf.Len())
	return buf.Bytes(), nil
}
