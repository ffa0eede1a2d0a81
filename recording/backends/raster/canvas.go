package raster

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

// canvas adapts gg.Context to recording.Canvas and recording.TextRenderer.
// gg transforms path points as they are added, so path commands go
// straight through; paint is applied right before each paint call because
// gg keeps a single brush for fill and stroke.
type canvas struct {
	dc  *gg.Context
	err error
}

var (
	_ recording.Canvas       = (*canvas)(nil)
	_ recording.TextRenderer = (*canvas)(nil)
)

func newCanvas(dc *gg.Context) *canvas {
	return &canvas{dc: dc}
}

func (c *canvas) Save()    { c.dc.Push() }
func (c *canvas) Restore() { c.dc.Pop() }

func (c *canvas) Concat(m recording.Matrix) {
	c.dc.Transform(gg.Matrix{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	})
}

func (c *canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *canvas) ClosePath()          { c.dc.ClosePath() }

func (c *canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *canvas) QuadTo(cx, cy, x, y float64) {
	c.dc.QuadraticTo(cx, cy, x, y)
}

func (c *canvas) Rectangle(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
}

func (c *canvas) Ellipse(cx, cy, rx, ry float64) {
	c.dc.DrawEllipse(cx, cy, rx, ry)
}

func (c *canvas) Stroke(p recording.Paint) {
	c.applyStroke(p)
	c.check(c.dc.Stroke())
}

func (c *canvas) Fill(p recording.Paint) {
	c.dc.SetFillBrush(gg.Solid(toRGBA(p.Fill())))
	c.check(c.dc.Fill())
}

func (c *canvas) FillStroke(p recording.Paint) {
	c.dc.SetFillBrush(gg.Solid(toRGBA(p.Fill())))
	c.check(c.dc.FillPreserve())
	c.applyStroke(p)
	c.check(c.dc.Stroke())
}

func (c *canvas) ClipRect(x, y, w, h float64) { c.dc.ClipRect(x, y, w, h) }
func (c *canvas) ResetClip()                  { c.dc.ResetClip() }

func (c *canvas) applyStroke(p recording.Paint) {
	c.dc.SetStrokeBrush(gg.Solid(toRGBA(p.Stroke())))
	c.dc.SetLineWidth(p.LineWidth)
	if len(p.Dash) > 0 {
		c.dc.SetDash(p.Dash...)
	} else {
		c.dc.ClearDash()
	}
}

// check keeps the first rendering error.
func (c *canvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// MeasureText measures s at the style's font size in user units.
func (c *canvas) MeasureText(s string, style plotdraw.TextStyle) (w, h float64) {
	face := fontFace(style, style.FontSize)
	if face == nil {
		return 0, 0
	}
	return measure(s, face)
}

// DrawText draws s with its baseline origin at (x, y) in user space. gg
// maps glyph outlines through the current transform, so rotated and
// scaled text keeps its orientation.
func (c *canvas) DrawText(s string, x, y float64, style plotdraw.TextStyle, alpha float64) {
	face := fontFace(style, style.FontSize)
	if face == nil {
		return
	}
	col := style.Color.WithAlpha(style.Color.A * alpha)

	c.dc.SetFont(face)
	c.dc.SetFillBrush(gg.Solid(toRGBA(col)))
	c.dc.DrawString(s, x, y)
}
