package recording

import "github.com/gogpu/plotdraw"

// Canvas is the host drawing surface a Recording is replayed onto.
//
// Coordinates passed to a Canvas are in its current user space: the device
// space (origin top-left, y down) mapped through every matrix given to
// Concat since the matching Save. Path methods add to a single current
// path that persists across Save and Restore; the paint methods consume it.
//
// Canvas methods do not return errors. Implementations that can fail keep
// the first error and report it when the export finishes, the way
// bufio.Writer does.
type Canvas interface {
	// Save pushes the transform and clip.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()
	// Concat multiplies the current transform by m, so m applies to
	// coordinates before the existing transform.
	Concat(m Matrix)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	QuadTo(cx, cy, x, y float64)
	ClosePath()
	// Rectangle adds a closed rectangular subpath.
	Rectangle(x, y, w, h float64)
	// Ellipse adds a closed elliptical subpath.
	Ellipse(cx, cy, rx, ry float64)

	// Stroke, Fill and FillStroke paint the current path with p and clear it.
	Stroke(p Paint)
	Fill(p Paint)
	FillStroke(p Paint)

	// ClipRect intersects the clip with a rectangle in user space.
	ClipRect(x, y, w, h float64)
	// ResetClip removes all clipping.
	ResetClip()
}

// TextRenderer is implemented by canvases that can measure and draw text.
// Playback detects it with a type assertion; text commands are skipped on
// canvases without it.
type TextRenderer interface {
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string, style plotdraw.TextStyle) (w, h float64)
	// DrawText draws s with its baseline starting at (x, y) in user space.
	// The user space is upright: y grows toward the bottom of the glyphs.
	DrawText(s string, x, y float64, style plotdraw.TextStyle, alpha float64)
}

// Paint is the paint state in effect for one paint operation.
type Paint struct {
	StrokeColor plotdraw.Color
	FillColor   plotdraw.Color
	LineWidth   float64
	// Dash is the dash pattern in user-space units, nil for solid lines.
	Dash  []float64
	Alpha float64
}

// DefaultPaint is the paint state at the start of every replay:
// black stroke and fill, 1 unit wide, solid, fully opaque.
func DefaultPaint() Paint {
	return Paint{
		StrokeColor: plotdraw.Black,
		FillColor:   plotdraw.Black,
		LineWidth:   1,
		Alpha:       1,
	}
}

// Stroke returns the stroke color with the global alpha applied.
func (p Paint) Stroke() plotdraw.Color {
	return p.StrokeColor.WithAlpha(p.StrokeColor.A * p.Alpha)
}

// Fill returns the fill color with the global alpha applied.
func (p Paint) Fill() plotdraw.Color {
	return p.FillColor.WithAlpha(p.FillColor.A * p.Alpha)
}
