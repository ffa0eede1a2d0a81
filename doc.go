// Package plotdraw records 2D vector drawing operations once and exports
// them to several formats.
//
// # Overview
//
// Drawing happens in two phases. A [recording.Recorder] accumulates path,
// shape, text, style and transform operations as an ordered list of typed
// commands. The finished [recording.Recording] is then replayed by one or
// more exporters:
//
//   - raster: PNG through github.com/gogpu/gg
//   - pdf: single-page PDF through codeberg.org/go-pdf/fpdf
//   - svg: SVG markup written directly
//
// This package holds the value types shared by all of them: [Color],
// [TextStyle], [LineStyle] and [MarkerStyle], plus the package logger.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plotdraw"
//	    "github.com/gogpu/plotdraw/recording"
//	    _ "github.com/gogpu/plotdraw/recording/backends/svg"
//	)
//
//	rec := recording.NewRecorder()
//	rec.SetStrokeColor(plotdraw.Red)
//	rec.SetStrokeWidth(2)
//	rec.MoveTo(10, 20)
//	rec.LineTo(100, 150)
//	rec.StrokePath()
//
//	data, err := recording.Export("svg", rec.Recording(), recording.Size{Width: 200, Height: 200})
//
// # Coordinate System
//
// Recorded coordinates have their origin at the bottom-left of the page with
// y increasing upward. Every exporter flips once at the start of replay, so
// a point (x, y) lands at (x, height-y) in the output image, document or
// markup.
//
// Angles are in radians, 0 points right, and increase counter-clockwise.
package plotdraw
