package recording

import (
	"github.com/gogpu/plotdraw"
)

// FlipY returns the matrix that maps recorded coordinates (origin
// bottom-left, y up) onto a device of the given height (origin top-left,
// y down).
func FlipY(height float64) Matrix {
	return Matrix{A: 1, E: -1, F: height}
}

// player holds the state of a single replay.
type player struct {
	c     Canvas
	text  TextRenderer
	paint Paint
	saves []Paint

	// pushed counts PushTransform commands not yet matched by a
	// PopTransform.
	pushed int

	hasPoint bool
	skipped  int
}

// Playback replays the recording onto c for an output of the given size.
//
// Replay starts with a single host save and the FlipY transform, then maps
// each command to Canvas calls:
//
//   - PushTransform saves host state and concatenates the matrix.
//     SaveState saves host state only.
//   - PopTransform and RestoreState each restore exactly one level of host
//     and paint state, whichever command opened it. PopTransform without
//     an unmatched push does nothing, and neither ever restores the
//     initial save.
//   - Style commands only change the Paint handed to the next paint call.
//   - Arc is flattened to cubic Béziers, joined to the current point by a
//     line if there is one.
//   - Text is drawn through TextRenderer when c implements it.
//
// Every host save still open when the commands run out is restored, so the
// host state stack is balanced on return.
func (r *Recording) Playback(c Canvas, size Size) {
	p := &player{c: c, paint: DefaultPaint()}
	p.text, _ = c.(TextRenderer)

	c.Save()
	c.Concat(FlipY(size.Height))

	for _, cmd := range r.commands {
		p.exec(cmd)
	}

	for range p.saves {
		c.Restore()
	}
	c.Restore()

	plotdraw.Logger().Debug("recording: playback done",
		"commands", len(r.commands),
		"skipped", p.skipped,
		"unbalanced", len(p.saves))
}

func (p *player) save() {
	p.saves = append(p.saves, p.paint)
	p.c.Save()
}

// restore pops one level of host and paint state.
func (p *player) restore() {
	if len(p.saves) == 0 {
		return
	}
	p.paint = p.saves[len(p.saves)-1]
	p.saves = p.saves[:len(p.saves)-1]
	p.c.Restore()
}

//nolint:gocyclo,cyclop // one case per command type
func (p *player) exec(cmd Command) {
	c := p.c
	switch cmd := cmd.(type) {
	case MoveTo:
		c.MoveTo(cmd.X, cmd.Y)
		p.hasPoint = true
	case LineTo:
		c.LineTo(cmd.X, cmd.Y)
		p.hasPoint = true
	case CurveTo:
		c.CubicTo(cmd.C1X, cmd.C1Y, cmd.C2X, cmd.C2Y, cmd.X, cmd.Y)
		p.hasPoint = true
	case QuadCurveTo:
		c.QuadTo(cmd.CX, cmd.CY, cmd.X, cmd.Y)
		p.hasPoint = true
	case ClosePath:
		c.ClosePath()

	case Rectangle:
		c.Rectangle(cmd.X, cmd.Y, cmd.Width, cmd.Height)
		p.hasPoint = true
	case Ellipse:
		c.Ellipse(cmd.CX, cmd.CY, cmd.RX, cmd.RY)
		p.hasPoint = true
	case Arc:
		p.arc(cmd)

	case Text:
		p.drawText(cmd)

	case PushTransform:
		p.pushed++
		p.save()
		c.Concat(cmd.Matrix)
	case PopTransform:
		if p.pushed > 0 {
			p.pushed--
			p.restore()
		}

	case SetStrokeColor:
		p.paint.StrokeColor = cmd.Color
	case SetStrokeWidth:
		p.paint.LineWidth = cmd.Width
	case SetStrokeStyle:
		p.paint.Dash = cmd.Style.DashPattern()
	case SetFillColor:
		p.paint.FillColor = cmd.Color
	case SetAlpha:
		p.paint.Alpha = cmd.Alpha

	case StrokePath:
		c.Stroke(p.paint)
		p.hasPoint = false
	case FillPath:
		c.Fill(p.paint)
		p.hasPoint = false
	case FillAndStrokePath:
		c.FillStroke(p.paint)
		p.hasPoint = false

	case ClipRect:
		c.ClipRect(cmd.X, cmd.Y, cmd.Width, cmd.Height)
	case ResetClip:
		c.ResetClip()

	case SaveState:
		p.save()
	case RestoreState:
		p.restore()
	}
}

func (p *player) arc(a Arc) {
	sx, sy, segs := flattenArc(a)
	if p.hasPoint {
		p.c.LineTo(sx, sy)
	} else {
		p.c.MoveTo(sx, sy)
	}
	for _, s := range segs {
		p.c.CubicTo(s.c1x, s.c1y, s.c2x, s.c2y, s.x, s.y)
	}
	p.hasPoint = true
}

func (p *player) drawText(t Text) {
	if p.text == nil {
		p.skipped++
		return
	}

	p.c.Save()
	p.c.Concat(Translate(t.X, t.Y))
	p.c.Concat(Scale(1, -1))

	w, h := p.text.MeasureText(t.Text, t.Style)
	var dx float64
	switch t.Style.Anchor {
	case plotdraw.AnchorMiddle:
		dx = -w / 2
	case plotdraw.AnchorEnd:
		dx = -w
	}
	// Baseline a quarter line below the anchor.
	p.text.DrawText(t.Text, dx, h/4, t.Style, p.paint.Alpha)

	p.c.Restore()
}
