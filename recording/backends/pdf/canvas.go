package pdf

import (
	"math"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

// kappa places the control points of a quarter-circle cubic Bézier.
const kappa = 0.5522847498307936

// canvasState is one entry of the save stack.
type canvasState struct {
	ctm   recording.Matrix
	clips int
}

// segment is one path operator with its points in device space.
type segment struct {
	op  byte // 'm', 'l', 'c' or 'h'
	pts [3][2]float64
}

// canvas adapts fpdf to recording.Canvas and recording.TextRenderer.
//
// fpdf user space has its origin at the top-left with y down, in points.
// The canvas keeps its own current transformation matrix and hands fpdf
// transformed points. fpdf writes every call to the content stream at
// once, and PDF allows no state or clip operators inside a path, so path
// segments are buffered and written by the paint call after the stroke
// and fill state.
// Clips are fpdf clip contexts; each save remembers how many were open so
// a restore can end the ones opened after it.
type canvas struct {
	doc    *fpdf.Fpdf
	ctm    recording.Matrix
	stack  []canvasState
	clips  int
	height float64

	// Path state in device space, for raising quadratics and closing.
	path           []segment
	curX, curY     float64
	startX, startY float64

	tr func(string) string
}

var (
	_ recording.Canvas       = (*canvas)(nil)
	_ recording.TextRenderer = (*canvas)(nil)
)

func newCanvas(doc *fpdf.Fpdf) *canvas {
	_, h := doc.GetPageSize()
	return &canvas{
		doc:    doc,
		ctm:    recording.Identity(),
		height: h,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *canvas) Save() {
	c.stack = append(c.stack, canvasState{ctm: c.ctm, clips: c.clips})
}

func (c *canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ctm = top.ctm
	c.endClips(top.clips)
}

// endClips ends clip contexts until at most n remain open.
func (c *canvas) endClips(n int) {
	for c.clips > n {
		c.doc.ClipEnd()
		c.clips--
	}
}

func (c *canvas) Concat(m recording.Matrix) {
	c.ctm = c.ctm.Multiply(m)
}

func (c *canvas) empty() bool { return len(c.path) == 0 }

func (c *canvas) add(op byte, pts ...float64) {
	seg := segment{op: op}
	for i := 0; i+1 < len(pts); i += 2 {
		seg.pts[i/2] = [2]float64{pts[i], pts[i+1]}
	}
	c.path = append(c.path, seg)
}

func (c *canvas) MoveTo(x, y float64) {
	x, y = c.ctm.TransformPoint(x, y)
	c.add('m', x, y)
	c.curX, c.curY = x, y
	c.startX, c.startY = x, y
}

func (c *canvas) LineTo(x, y float64) {
	if c.empty() {
		c.MoveTo(x, y)
		return
	}
	x, y = c.ctm.TransformPoint(x, y)
	c.add('l', x, y)
	c.curX, c.curY = x, y
}

func (c *canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if c.empty() {
		c.MoveTo(c1x, c1y)
	}
	c1x, c1y = c.ctm.TransformPoint(c1x, c1y)
	c2x, c2y = c.ctm.TransformPoint(c2x, c2y)
	x, y = c.ctm.TransformPoint(x, y)
	c.add('c', c1x, c1y, c2x, c2y, x, y)
	c.curX, c.curY = x, y
}

// QuadTo raises the quadratic to a cubic with the same shape.
func (c *canvas) QuadTo(cx, cy, x, y float64) {
	if c.empty() {
		c.MoveTo(cx, cy)
	}
	cx, cy = c.ctm.TransformPoint(cx, cy)
	x, y = c.ctm.TransformPoint(x, y)
	c1x := c.curX + 2.0/3.0*(cx-c.curX)
	c1y := c.curY + 2.0/3.0*(cy-c.curY)
	c2x := x + 2.0/3.0*(cx-x)
	c2y := y + 2.0/3.0*(cy-y)
	c.add('c', c1x, c1y, c2x, c2y, x, y)
	c.curX, c.curY = x, y
}

func (c *canvas) ClosePath() {
	if c.empty() {
		return
	}
	c.add('h')
	c.curX, c.curY = c.startX, c.startY
}

func (c *canvas) Rectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *canvas) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	c.MoveTo(cx+rx, cy)
	c.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.ClosePath()
}

func (c *canvas) Stroke(p recording.Paint) {
	c.paint("D", p)
}

func (c *canvas) Fill(p recording.Paint) {
	c.paint("F", p)
}

func (c *canvas) FillStroke(p recording.Paint) {
	c.paint("FD", p)
}

// paint draws the current path. fpdf has a single alpha for fill and
// stroke, so the fill alpha wins when both are painted.
func (c *canvas) paint(op string, p recording.Paint) {
	if c.empty() {
		return
	}
	alpha := p.Stroke().A
	if op != "D" {
		fill := p.Fill()
		c.doc.SetFillColor(rgb(fill))
		alpha = fill.A
	}
	if op != "F" {
		scale := c.ctm.ScaleFactor()
		c.doc.SetDrawColor(rgb(p.StrokeColor))
		c.doc.SetLineWidth(p.LineWidth * scale)
		dash := make([]float64, len(p.Dash))
		for i, d := range p.Dash {
			dash[i] = d * scale
		}
		c.doc.SetDashPattern(dash, 0)
	}
	c.doc.SetAlpha(clamp01(alpha), "Normal")
	c.writePath()
	c.doc.DrawPath(op)
}

// writePath hands the buffered path to fpdf and clears it.
func (c *canvas) writePath() {
	for _, s := range c.path {
		p := s.pts
		switch s.op {
		case 'm':
			c.doc.MoveTo(p[0][0], p[0][1])
		case 'l':
			c.doc.LineTo(p[0][0], p[0][1])
		case 'c':
			c.doc.CurveBezierCubicTo(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1])
		case 'h':
			c.doc.ClosePath()
		}
	}
	c.path = c.path[:0]
}

func (c *canvas) ClipRect(x, y, w, h float64) {
	pts := make([]fpdf.PointType, 0, 4)
	for _, p := range [...][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		px, py := c.ctm.TransformPoint(p[0], p[1])
		pts = append(pts, fpdf.PointType{X: px, Y: py})
	}
	c.doc.ClipPolygon(pts, false)
	c.clips++
}

func (c *canvas) ResetClip() {
	c.endClips(0)
}

// MeasureText measures s in Helvetica at the style's font size.
func (c *canvas) MeasureText(s string, style plotdraw.TextStyle) (w, h float64) {
	if !(style.FontSize > 0) {
		return 0, 0
	}
	c.setFont(style)
	return c.doc.GetStringWidth(c.tr(s)), style.FontSize
}

// DrawText draws s at (x, y) in the current transform. Glyphs are placed
// by an fpdf transform context carrying the current matrix, expressed in
// native PDF space.
func (c *canvas) DrawText(s string, x, y float64, style plotdraw.TextStyle, alpha float64) {
	if !(style.FontSize > 0) {
		return
	}
	flip := recording.Matrix{A: 1, E: -1, F: c.height}
	m := flip.Multiply(c.ctm).Multiply(flip)

	c.doc.TransformBegin()
	c.doc.Transform(fpdf.TransformMatrix{
		A: m.A, B: m.D,
		C: m.B, D: m.E,
		E: m.C, F: m.F,
	})
	c.setFont(style)
	c.doc.SetTextColor(rgb(style.Color))
	c.doc.SetFillColor(rgb(style.Color))
	c.doc.SetAlpha(clamp01(style.Color.A*alpha), "Normal")
	c.doc.Text(x, y, c.tr(s))
	c.doc.TransformEnd()
}

// setFont selects the Helvetica face for style. fpdf skips a SetFont that
// matches its cached font, which may no longer be in the PDF graphics state
// after a transform context ends, so the size is touched first.
func (c *canvas) setFont(style plotdraw.TextStyle) {
	weight := ""
	if style.FontWeight == plotdraw.FontWeightBold {
		weight = "B"
	}
	c.doc.SetFont("Helvetica", weight, style.FontSize+1)
	c.doc.SetFont("Helvetica", weight, style.FontSize)
}

func rgb(col plotdraw.Color) (r, g, b int) {
	return channel(col.R), channel(col.G), channel(col.B)
}

func channel(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
