package recording

import "github.com/gogpu/plotdraw"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Path construction
	CmdMoveTo      CommandType = iota // Start a new subpath
	CmdLineTo                         // Straight segment
	CmdCurveTo                        // Cubic Bézier segment
	CmdQuadCurveTo                    // Quadratic Bézier segment
	CmdClosePath                      // Close the current subpath

	// Shapes
	CmdRectangle // Axis-aligned rectangle
	CmdEllipse   // Ellipse from center and radii
	CmdArc       // Circular arc

	// Text
	CmdText // Place a text run

	// Transform stack
	CmdPushTransform // Push a transform
	CmdPopTransform  // Pop the most recent transform

	// Paint state
	CmdSetStrokeColor // Set stroke color
	CmdSetStrokeWidth // Set stroke width
	CmdSetStrokeStyle // Set dash style
	CmdSetFillColor   // Set fill color
	CmdSetAlpha       // Set global alpha

	// Paint
	CmdStrokePath        // Stroke the current path
	CmdFillPath          // Fill the current path
	CmdFillAndStrokePath // Fill, then stroke the current path

	// Clipping
	CmdClipRect  // Intersect clip with a rectangle
	CmdResetClip // Remove the clip

	// Graphics state
	CmdSaveState    // Save graphics state
	CmdRestoreState // Restore graphics state
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdMoveTo:            "MoveTo",
	CmdLineTo:            "LineTo",
	CmdCurveTo:           "CurveTo",
	CmdQuadCurveTo:       "QuadCurveTo",
	CmdClosePath:         "ClosePath",
	CmdRectangle:         "Rectangle",
	CmdEllipse:           "Ellipse",
	CmdArc:               "Arc",
	CmdText:              "Text",
	CmdPushTransform:     "PushTransform",
	CmdPopTransform:      "PopTransform",
	CmdSetStrokeColor:    "SetStrokeColor",
	CmdSetStrokeWidth:    "SetStrokeWidth",
	CmdSetStrokeStyle:    "SetStrokeStyle",
	CmdSetFillColor:      "SetFillColor",
	CmdSetAlpha:          "SetAlpha",
	CmdStrokePath:        "StrokePath",
	CmdFillPath:          "FillPath",
	CmdFillAndStrokePath: "FillAndStrokePath",
	CmdClipRect:          "ClipRect",
	CmdResetClip:         "ResetClip",
	CmdSaveState:         "SaveState",
	CmdRestoreState:      "RestoreState",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
//
// The set of commands is closed: only the types in this package implement
// Command, so a type switch over them in a backend can be exhaustive.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	command()
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct {
	X, Y float64
}

// LineTo adds a straight segment to (X, Y).
type LineTo struct {
	X, Y float64
}

// CurveTo adds a cubic Bézier segment with two control points.
type CurveTo struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// QuadCurveTo adds a quadratic Bézier segment with one control point.
type QuadCurveTo struct {
	CX, CY float64
	X, Y   float64
}

// ClosePath closes the current subpath.
type ClosePath struct{}

// --------------------------------------------------------------------------
// Shape Commands
// --------------------------------------------------------------------------

// Rectangle adds an axis-aligned rectangle with (X, Y) as its minimum
// corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Ellipse adds an ellipse centered at (CX, CY).
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Arc adds a circular arc. Angles are in radians; the arc runs from
// StartAngle to EndAngle counter-clockwise unless Clockwise is set.
type Arc struct {
	CX, CY     float64
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// --------------------------------------------------------------------------
// Text Command
// --------------------------------------------------------------------------

// Text places a single line of text with its anchor at (X, Y).
type Text struct {
	Text  string
	X, Y  float64
	Style plotdraw.TextStyle
}

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// PushTransform pushes Matrix on the transform stack. The matrix is stored
// as given; backends compose it with the enclosing transform during replay.
type PushTransform struct {
	Matrix Matrix
}

// PopTransform pops the most recently pushed transform.
type PopTransform struct{}

// --------------------------------------------------------------------------
// Paint State Commands
// --------------------------------------------------------------------------

// SetStrokeColor sets the stroke color.
type SetStrokeColor struct {
	Color plotdraw.Color
}

// SetStrokeWidth sets the stroke width.
type SetStrokeWidth struct {
	Width float64
}

// SetStrokeStyle sets the stroke dash style.
type SetStrokeStyle struct {
	Style plotdraw.LineStyle
}

// SetFillColor sets the fill color.
type SetFillColor struct {
	Color plotdraw.Color
}

// SetAlpha sets the global alpha multiplied into every paint operation.
type SetAlpha struct {
	Alpha float64
}

// --------------------------------------------------------------------------
// Paint Commands
// --------------------------------------------------------------------------

// StrokePath strokes the current path and clears it.
type StrokePath struct{}

// FillPath fills the current path and clears it.
type FillPath struct{}

// FillAndStrokePath fills and then strokes the current path, then clears it.
type FillAndStrokePath struct{}

// --------------------------------------------------------------------------
// Clip and State Commands
// --------------------------------------------------------------------------

// ClipRect intersects the clip region with a rectangle.
type ClipRect struct {
	X, Y          float64
	Width, Height float64
}

// ResetClip removes any clip set since the last SaveState.
type ResetClip struct{}

// SaveState saves the graphics state (transform, clip, paint).
type SaveState struct{}

// RestoreState restores the most recently saved graphics state.
type RestoreState struct{}

// Type implementations.

func (MoveTo) Type() CommandType            { return CmdMoveTo }
func (LineTo) Type() CommandType            { return CmdLineTo }
func (CurveTo) Type() CommandType           { return CmdCurveTo }
func (QuadCurveTo) Type() CommandType       { return CmdQuadCurveTo }
func (ClosePath) Type() CommandType         { return CmdClosePath }
func (Rectangle) Type() CommandType         { return CmdRectangle }
func (Ellipse) Type() CommandType           { return CmdEllipse }
func (Arc) Type() CommandType               { return CmdArc }
func (Text) Type() CommandType              { return CmdText }
func (PushTransform) Type() CommandType     { return CmdPushTransform }
func (PopTransform) Type() CommandType      { return CmdPopTransform }
func (SetStrokeColor) Type() CommandType    { return CmdSetStrokeColor }
func (SetStrokeWidth) Type() CommandType    { return CmdSetStrokeWidth }
func (SetStrokeStyle) Type() CommandType    { return CmdSetStrokeStyle }
func (SetFillColor) Type() CommandType      { return CmdSetFillColor }
func (SetAlpha) Type() CommandType          { return CmdSetAlpha }
func (StrokePath) Type() CommandType        { return CmdStrokePath }
func (FillPath) Type() CommandType          { return CmdFillPath }
func (FillAndStrokePath) Type() CommandType { return CmdFillAndStrokePath }
func (ClipRect) Type() CommandType          { return CmdClipRect }
func (ResetClip) Type() CommandType         { return CmdResetClip }
func (SaveState) Type() CommandType         { return CmdSaveState }
func (RestoreState) Type() CommandType      { return CmdRestoreState }

func (MoveTo) command()            {}
func (LineTo) command()            {}
func (CurveTo) command()           {}
func (QuadCurveTo) command()       {}
func (ClosePath) command()         {}
func (Rectangle) command()         {}
func (Ellipse) command()           {}
func (Arc) command()               {}
func (Text) command()              {}
func (PushTransform) command()     {}
func (PopTransform) command()      {}
func (SetStrokeColor) command()    {}
func (SetStrokeWidth) command()    {}
func (SetStrokeStyle) command()    {}
func (SetFillColor) command()      {}
func (SetAlpha) command()          {}
func (StrokePath) command()        {}
func (FillPath) command()          {}
func (FillAndStrokePath) command() {}
func (ClipRect) command()          {}
func (ResetClip) command()         {}
func (SaveState) command()         {}
func (RestoreState) command()      {}
