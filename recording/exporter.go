package recording

import (
	"errors"
	"math"
)

// Errors returned by exporters.
var (
	// ErrInvalidSize is returned when an export size is not a positive
	// finite width and height.
	ErrInvalidSize = errors.New("recording: invalid export size")

	// ErrNilRecording is returned when Export is called without a recording.
	ErrNilRecording = errors.New("recording: nil recording")
)

// Size is the logical size of an export: pixels for raster output before
// any device scale, points for documents, user units for SVG.
type Size struct {
	Width, Height float64
}

// Validate returns ErrInvalidSize unless both dimensions are positive and
// finite.
func (s Size) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) ||
		math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) {
		return ErrInvalidSize
	}
	return nil
}

// Exporter replays a Recording into an encoded output document.
//
// Export must not modify r, so a single Recording can be exported by
// several exporters, concurrently if needed. On error no partial output is
// returned.
type Exporter interface {
	Export(r *Recording, size Size) ([]byte, error)
}

// CheckExport validates the common arguments of Exporter.Export.
func CheckExport(r *Recording, size Size) error {
	if r == nil {
		return ErrNilRecording
	}
	return size.Validate()
}
