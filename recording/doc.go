// Package recording records 2D drawing operations as typed commands and
// replays them onto export backends.
//
// # Architecture
//
// A Recorder appends one Command per drawing call:
//   - Path commands (MoveTo, LineTo, CurveTo, QuadCurveTo, ClosePath)
//   - Shape commands (Rectangle, Ellipse, Arc) and Text
//   - Transform stack commands (PushTransform, PopTransform)
//   - Paint state commands (SetStrokeColor, SetStrokeWidth, SetStrokeStyle,
//     SetFillColor, SetAlpha)
//   - Paint commands (StrokePath, FillPath, FillAndStrokePath)
//   - Clip and state commands (ClipRect, ResetClip, SaveState, RestoreState)
//
// Recorder.Recording takes an immutable snapshot. Snapshots are exported by
// name through the registry:
//
//	import (
//	    _ "github.com/gogpu/plotdraw/recording/backends/pdf"
//	    _ "github.com/gogpu/plotdraw/recording/backends/raster"
//	    _ "github.com/gogpu/plotdraw/recording/backends/svg"
//	)
//
//	rec := recording.NewRecorder()
//	rec.Translate(50, 50)
//	rec.SetFillColor(plotdraw.Blue)
//	rec.Circle(0, 0, 20)
//	rec.FillPath()
//	rec.PopTransform()
//
//	size := recording.Size{Width: 100, Height: 100}
//	png, err := recording.Export("raster", rec.Recording(), size)
//
// # Backends
//
// Backends that draw through a stateful 2D context (raster, pdf) implement
// Canvas and let Recording.Playback drive them: Playback owns the replay
// transform stack, the paint state and the y-axis flip. The svg backend
// walks the command list itself because SVG carries style as element
// attributes rather than as context state.
//
// # Coordinates
//
// Recorded coordinates are y-up with the origin at the bottom-left corner
// of the output. Playback concatenates FlipY(height) before the first
// command, and the svg backend writes height-y for every y, so all
// backends place a point at the same spot.
package recording
