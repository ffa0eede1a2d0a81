package main

import (
	"math"
	"strconv"

	"github.com/gogpu/plotdraw"
	"github.com/gogpu/plotdraw/recording"
)

// Plot area margins.
const (
	marginLeft   = 60.0
	marginRight  = 20.0
	marginBottom = 50.0
	marginTop    = 40.0
)

// demoScene records a small line chart with two series.
func demoScene(size recording.Size) *recording.Recording {
	rec := recording.NewRecorder()

	x0, y0 := marginLeft, marginBottom
	w := size.Width - marginLeft - marginRight
	h := size.Height - marginBottom - marginTop

	drawGrid(rec, x0, y0, w, h)

	rec.SaveState()
	rec.ClipRect(x0, y0, w, h)
	rec.Translate(x0, y0)
	drawSeries(rec, w, h, plotdraw.Blue, plotdraw.LineSolid, plotdraw.MarkerCircle, math.Sin)
	drawSeries(rec, w, h, plotdraw.Orange, plotdraw.LineDashed, plotdraw.MarkerSquare, math.Cos)
	rec.PopTransform()
	rec.RestoreState()

	// Highlight.
	rec.SetFillColor(plotdraw.Purple.WithAlpha(0.2))
	rec.SetStrokeColor(plotdraw.Purple)
	rec.Ellipse(x0+w*0.75, y0+h*0.5, w*0.1, h*0.15)
	rec.FillAndStrokePath()

	// Gauge arc.
	rec.SetStrokeWidth(3)
	rec.SetStrokeColor(plotdraw.Green)
	rec.Arc(size.Width-marginRight-15, size.Height-marginTop/2, 10, 0, 1.5*math.Pi, false)
	rec.StrokePath()

	title := plotdraw.DefaultTextStyle().
		WithSize(16).
		WithWeight(plotdraw.FontWeightBold).
		WithAnchor(plotdraw.AnchorMiddle)
	rec.Text("sin(x) and cos(x)", size.Width/2, size.Height-marginTop/2, title)

	label := plotdraw.DefaultTextStyle().WithAnchor(plotdraw.AnchorMiddle)
	rec.Text("x", x0+w/2, y0/3, label)

	rec.PushTransform(recording.Translate(x0/3, y0+h/2).Multiply(recording.Rotate(math.Pi / 2)))
	rec.Text("y", 0, 0, label)
	rec.PopTransform()

	return rec.Recording()
}

func drawGrid(rec *recording.Recorder, x0, y0, w, h float64) {
	rec.SetStrokeColor(plotdraw.LightGray)
	rec.SetStrokeWidth(0.5)
	rec.SetStrokeStyle(plotdraw.LineDotted)
	tick := plotdraw.DefaultTextStyle().WithSize(9).WithColor(plotdraw.DarkGray)
	for i := 0; i <= 4; i++ {
		y := y0 + h*float64(i)/4
		rec.MoveTo(x0, y)
		rec.LineTo(x0+w, y)
		rec.StrokePath()
		rec.Text(strconv.FormatFloat(float64(i)/2-1, 'f', -1, 64), x0-5, y, tick.WithAnchor(plotdraw.AnchorEnd))
	}

	rec.SetStrokeStyle(plotdraw.LineSolid)
	rec.SetStrokeColor(plotdraw.Black)
	rec.SetStrokeWidth(1)
	rec.Rectangle(x0, y0, w, h)
	rec.StrokePath()
}

func drawSeries(rec *recording.Recorder, w, h float64, c plotdraw.Color, ls plotdraw.LineStyle, mark plotdraw.MarkerStyle, f func(float64) float64) {
	const n = 24
	point := func(i int) (float64, float64) {
		t := 2 * math.Pi * float64(i) / n
		return w * float64(i) / n, h/2 + f(t)*h*0.4
	}

	rec.SetStrokeColor(c)
	rec.SetStrokeWidth(2)
	rec.SetStrokeStyle(ls)
	for i := 0; i <= n; i++ {
		x, y := point(i)
		if i == 0 {
			rec.MoveTo(x, y)
		} else {
			rec.LineTo(x, y)
		}
	}
	rec.StrokePath()

	rec.SetStrokeStyle(plotdraw.LineSolid)
	rec.SetFillColor(c)
	for i := 0; i <= n; i += 4 {
		x, y := point(i)
		drawMarker(rec, mark, x, y, 3)
	}
	rec.SetFillColor(plotdraw.Transparent)
}

func drawMarker(rec *recording.Recorder, m plotdraw.MarkerStyle, x, y, r float64) {
	switch m {
	case plotdraw.MarkerSquare:
		rec.Rectangle(x-r, y-r, 2*r, 2*r)
		rec.FillPath()
	case plotdraw.MarkerNone:
	default:
		rec.Circle(x, y, r)
		rec.FillPath()
	}
}
