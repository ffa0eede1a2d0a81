package recording

import (
	"math"

	"github.com/gogpu/plotdraw"
)

// Recorder captures drawing operations as commands.
// Each drawing call appends exactly one Command; nothing is validated or
// rendered. Use Recording to obtain an immutable snapshot that can be
// exported by any registered Exporter.
//
// Example:
//
//	rec := recording.NewRecorder()
//	rec.SetStrokeColor(plotdraw.Red)
//	rec.MoveTo(10, 20)
//	rec.LineTo(100, 150)
//	rec.StrokePath()
//	r := rec.Recording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	// transforms holds the composed transform at each push depth.
	// It always has at least one entry (the identity).
	transforms []Matrix
}

// NewRecorder creates an empty Recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:   make([]Command, 0, 64),
		transforms: []Matrix{Identity()},
	}
}

// Recording returns an immutable snapshot of the commands recorded so far.
// The Recorder remains usable; later calls do not affect the snapshot.
func (r *Recorder) Recording() *Recording {
	return &Recording{commands: r.Commands()}
}

// Append appends commands as-is. The transform reported by
// CurrentTransform is updated for PushTransform and PopTransform commands.
func (r *Recorder) Append(cmds ...Command) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case PushTransform:
			r.PushTransform(c.Matrix)
		case PopTransform:
			r.PopTransform()
		default:
			r.commands = append(r.commands, cmd)
		}
	}
}

// Len returns the number of commands recorded since creation or the last
// Clear.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Clear removes all commands and resets the transform to identity.
func (r *Recorder) Clear() {
	r.commands = r.commands[:0]
	r.transforms = r.transforms[:1]
	r.transforms[0] = Identity()
}

// Bounds returns the bounding box of the recorded geometry.
// See Recording.Bounds for what is included.
func (r *Recorder) Bounds() Rect {
	return boundsOf(r.commands)
}

func (r *Recorder) add(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// --------------------------------------------------------------------------
// Transform Stack
// --------------------------------------------------------------------------

// PushTransform concatenates m onto the current transform and records m.
// Geometry recorded afterwards is mapped by m first, then by the enclosing
// transform, the same way gg.Context.Transform composes.
func (r *Recorder) PushTransform(m Matrix) {
	top := r.transforms[len(r.transforms)-1]
	r.transforms = append(r.transforms, top.Multiply(m))
	r.add(PushTransform{Matrix: m})
}

// PopTransform undoes the most recent PushTransform. The identity at the
// bottom of the stack is never popped, but the command is recorded either
// way; replay applies the same guard.
func (r *Recorder) PopTransform() {
	if len(r.transforms) > 1 {
		r.transforms = r.transforms[:len(r.transforms)-1]
	}
	r.add(PopTransform{})
}

// Translate pushes a translation.
func (r *Recorder) Translate(tx, ty float64) {
	r.PushTransform(Translate(tx, ty))
}

// Scale pushes a scale.
func (r *Recorder) Scale(sx, sy float64) {
	r.PushTransform(Scale(sx, sy))
}

// Rotate pushes a rotation (angle in radians).
func (r *Recorder) Rotate(angle float64) {
	r.PushTransform(Rotate(angle))
}

// CurrentTransform returns the composition of all pushed transforms.
func (r *Recorder) CurrentTransform() Matrix {
	return r.transforms[len(r.transforms)-1]
}

// --------------------------------------------------------------------------
// Path Construction
// --------------------------------------------------------------------------

// MoveTo starts a new subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.add(MoveTo{X: x, Y: y})
}

// LineTo adds a line segment.
func (r *Recorder) LineTo(x, y float64) {
	r.add(LineTo{X: x, Y: y})
}

// CurveTo adds a cubic Bézier segment.
func (r *Recorder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.add(CurveTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// QuadCurveTo adds a quadratic Bézier segment.
func (r *Recorder) QuadCurveTo(cx, cy, x, y float64) {
	r.add(QuadCurveTo{CX: cx, CY: cy, X: x, Y: y})
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() {
	r.add(ClosePath{})
}

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// Rectangle adds a rectangle. Negative sizes are recorded unchanged.
func (r *Recorder) Rectangle(x, y, width, height float64) {
	r.add(Rectangle{X: x, Y: y, Width: width, Height: height})
}

// Ellipse adds an ellipse.
func (r *Recorder) Ellipse(cx, cy, rx, ry float64) {
	r.add(Ellipse{CX: cx, CY: cy, RX: rx, RY: ry})
}

// Circle adds a circle, recorded as an Ellipse with equal radii.
func (r *Recorder) Circle(cx, cy, radius float64) {
	r.Ellipse(cx, cy, radius, radius)
}

// Arc adds a circular arc from startAngle to endAngle (radians).
func (r *Recorder) Arc(cx, cy, radius, startAngle, endAngle float64, clockwise bool) {
	r.add(Arc{
		CX: cx, CY: cy, Radius: radius,
		StartAngle: startAngle, EndAngle: endAngle,
		Clockwise: clockwise,
	})
}

// Text places a single line of text.
func (r *Recorder) Text(s string, x, y float64, style plotdraw.TextStyle) {
	r.add(Text{Text: s, X: x, Y: y, Style: style})
}

// --------------------------------------------------------------------------
// Paint State
// --------------------------------------------------------------------------

// SetStrokeColor sets the stroke color.
func (r *Recorder) SetStrokeColor(c plotdraw.Color) {
	r.add(SetStrokeColor{Color: c})
}

// SetStrokeWidth sets the stroke width.
func (r *Recorder) SetStrokeWidth(width float64) {
	r.add(SetStrokeWidth{Width: width})
}

// SetStrokeStyle sets the stroke dash style.
func (r *Recorder) SetStrokeStyle(style plotdraw.LineStyle) {
	r.add(SetStrokeStyle{Style: style})
}

// SetFillColor sets the fill color.
func (r *Recorder) SetFillColor(c plotdraw.Color) {
	r.add(SetFillColor{Color: c})
}

// SetAlpha sets the global alpha.
func (r *Recorder) SetAlpha(alpha float64) {
	r.add(SetAlpha{Alpha: alpha})
}

// --------------------------------------------------------------------------
// Painting, Clipping and State
// --------------------------------------------------------------------------

// StrokePath strokes the current path.
func (r *Recorder) StrokePath() {
	r.add(StrokePath{})
}

// FillPath fills the current path.
func (r *Recorder) FillPath() {
	r.add(FillPath{})
}

// FillAndStrokePath fills and then strokes the current path.
func (r *Recorder) FillAndStrokePath() {
	r.add(FillAndStrokePath{})
}

// ClipRect intersects the clip with a rectangle.
func (r *Recorder) ClipRect(x, y, width, height float64) {
	r.add(ClipRect{X: x, Y: y, Width: width, Height: height})
}

// ResetClip removes the clip.
func (r *Recorder) ResetClip() {
	r.add(ResetClip{})
}

// SaveState saves the graphics state.
func (r *Recorder) SaveState() {
	r.add(SaveState{})
}

// RestoreState restores the last saved graphics state.
func (r *Recorder) RestoreState() {
	r.add(RestoreState{})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable sequence of commands. It can be exported any
// number of times, including concurrently from several goroutines.
type Recording struct {
	commands []Command
}

// NewRecording creates a Recording from a command list. The slice is
// copied.
func NewRecording(cmds []Command) *Recording {
	out := make([]Command, len(cmds))
	copy(out, cmds)
	return &Recording{commands: out}
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Commands returns a copy of the commands in replay order.
func (r *Recording) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Bounds returns the smallest rectangle enclosing every MoveTo and LineTo
// point, every Rectangle, every Ellipse bounding box and every Text anchor.
// Curves, arcs and control points are not considered, and transforms are
// not applied. With nothing to measure the zero Rect is returned.
func (r *Recording) Bounds() Rect {
	return boundsOf(r.commands)
}

func boundsOf(cmds []Command) Rect {
	var b bboxBuilder
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveTo:
			b.add(c.X, c.Y)
		case LineTo:
			b.add(c.X, c.Y)
		case Rectangle:
			b.addRect(NewRectFromPoints(c.X, c.Y, c.X+c.Width, c.Y+c.Height))
		case Ellipse:
			rx, ry := math.Abs(c.RX), math.Abs(c.RY)
			b.addRect(NewRect(c.CX-rx, c.CY-ry, 2*rx, 2*ry))
		case Text:
			b.add(c.X, c.Y)
		}
	}
	return b.rect
}
